package salarytemplate

import (
	"time"

	"github.com/google/uuid"
)

// SalaryTemplate describes an employee's pay structure. Components holds
// the raw JSON array of salary components exactly as it was saved; it is
// interpreted by ParseComponents.
type SalaryTemplate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(120);not null"`
	Components string    `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SalaryTemplate) TableName() string {
	return "salary_templates"
}
