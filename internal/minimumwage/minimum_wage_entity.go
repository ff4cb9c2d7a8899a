package minimumwage

import (
	"time"

	"go-hris-compliance/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MinimumWageConfiguration is one published wage floor for a state and
// skill category. Rates are superseded by inserting a newer record, never
// by editing history; EffectiveTo nil means open-ended.
type MinimumWageConfiguration struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey"`
	State         string               `gorm:"type:varchar(100);not null;uniqueIndex:uq_minimum_wage_effective,priority:1"`
	Category      domain.SkillCategory `gorm:"type:varchar(20);not null;uniqueIndex:uq_minimum_wage_effective,priority:2"`
	MinimumWage   decimal.Decimal      `gorm:"type:decimal(12,2);not null"`
	EffectiveFrom time.Time            `gorm:"not null;index;uniqueIndex:uq_minimum_wage_effective,priority:3"`
	EffectiveTo   *time.Time           `gorm:"index"`
	IsActive      bool                 `gorm:"not null;index"`
	CreatedBy     string               `gorm:"type:varchar(100)"`
	UpdatedBy     string               `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (MinimumWageConfiguration) TableName() string {
	return "minimum_wage_configurations"
}

// Covers reports whether the configuration is active and its window
// contains t. Both bounds are inclusive.
func (c MinimumWageConfiguration) Covers(t time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.EffectiveFrom.After(t) {
		return false
	}
	return c.EffectiveTo == nil || !c.EffectiveTo.Before(t)
}
