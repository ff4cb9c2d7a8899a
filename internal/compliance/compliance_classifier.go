package compliance

import (
	"strings"

	"go-hris-compliance/internal/domain"
)

// CategoryClassifier maps a designation to the skill category used for the
// minimum wage lookup.
type CategoryClassifier interface {
	Classify(designationName string) domain.SkillCategory
}

// KeywordClassifier is a naming heuristic, not a legal classification:
// "unskilled" anywhere in the designation wins, then "semi", and anything
// else (including a blank designation) is Skilled.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(designationName string) domain.SkillCategory {
	name := strings.ToLower(designationName)
	switch {
	case strings.Contains(name, "unskilled"):
		return domain.CategoryUnskilled
	case strings.Contains(name, "semi"):
		return domain.CategorySemiSkilled
	default:
		return domain.CategorySkilled
	}
}
