package employee

import (
	"strings"
	"time"

	"go-hris-compliance/internal/salarytemplate"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusInactive   = "INACTIVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	FirstName        string                         `gorm:"type:varchar(100);not null"`
	LastName         string                         `gorm:"type:varchar(100)"`
	EmployeeCode     string                         `gorm:"type:varchar(50);uniqueIndex"`
	State            *string                        `gorm:"type:varchar(100)"`
	Status           string                         `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	DepartmentID     *uuid.UUID                     `gorm:"type:uuid"`
	Department       *Department                    `gorm:"foreignKey:DepartmentID;references:ID"`
	DesignationID    *uuid.UUID                     `gorm:"type:uuid"`
	Designation      *Designation                   `gorm:"foreignKey:DesignationID;references:ID"`
	SalaryTemplateID *uuid.UUID                     `gorm:"type:uuid"`
	SalaryTemplate   *salarytemplate.SalaryTemplate `gorm:"foreignKey:SalaryTemplateID;references:ID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(120);not null"`
}

func (Department) TableName() string {
	return "departments"
}

type Designation struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DesignationName string    `gorm:"type:varchar(120);not null"`
}

func (Designation) TableName() string {
	return "designations"
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// StateOr returns the recorded state, or fallback when none is recorded.
func (e Employee) StateOr(fallback string) string {
	if e.State == nil || strings.TrimSpace(*e.State) == "" {
		return fallback
	}
	return *e.State
}

func (e Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}

func (e Employee) DesignationName() string {
	if e.Designation == nil {
		return ""
	}
	return e.Designation.DesignationName
}
