package domain

// SkillCategory is the labour category a minimum wage is published for.
type SkillCategory string

const (
	CategoryUnskilled   SkillCategory = "Unskilled"
	CategorySemiSkilled SkillCategory = "Semi-Skilled"
	CategorySkilled     SkillCategory = "Skilled"
)

func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryUnskilled, CategorySemiSkilled, CategorySkilled:
		return true
	}
	return false
}

func (c SkillCategory) String() string {
	return string(c)
}
