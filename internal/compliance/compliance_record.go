package compliance

import (
	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompliant    Status = "Compliant"
	StatusNonCompliant Status = "Non-Compliant"
)

const (
	RemarkCompliant    = "Wage is above minimum wage requirement"
	RemarkNonCompliant = "Wage is below minimum wage requirement. Action required."
)

// ComplianceRecord is computed per request and never persisted.
type ComplianceRecord struct {
	EmployeeID            uuid.UUID
	EmployeeName          string
	EmployeeCode          string
	Department            string
	Designation           string
	State                 string
	Category              domain.SkillCategory
	WageMonth             string
	ApplicableMinimumWage decimal.Decimal
	ActualWagePaid        decimal.Decimal
	Difference            decimal.Decimal
	ComplianceStatus      Status
	Remarks               string
	WageConfigured        bool
}

// BuildRecord compares the gross wage against the resolved minimum. A
// difference of exactly zero is compliant.
func BuildRecord(
	emp employee.Employee,
	state string,
	category domain.SkillCategory,
	gross, minimum decimal.Decimal,
	wageMonth string,
) ComplianceRecord {
	difference := gross.Sub(minimum)

	status, remarks := StatusCompliant, RemarkCompliant
	if difference.IsNegative() {
		status, remarks = StatusNonCompliant, RemarkNonCompliant
	}

	return ComplianceRecord{
		EmployeeID:            emp.ID,
		EmployeeName:          emp.FullName(),
		EmployeeCode:          emp.EmployeeCode,
		Department:            emp.DepartmentName(),
		Designation:           emp.DesignationName(),
		State:                 state,
		Category:              category,
		WageMonth:             wageMonth,
		ApplicableMinimumWage: minimum,
		ActualWagePaid:        gross,
		Difference:            difference,
		ComplianceStatus:      status,
		Remarks:               remarks,
	}
}

type ReportSummary struct {
	Total        int
	Compliant    int
	NonCompliant int
	Unconfigured int
}

func Summarize(records []ComplianceRecord) ReportSummary {
	summary := ReportSummary{Total: len(records)}
	for _, rec := range records {
		if rec.ComplianceStatus == StatusCompliant {
			summary.Compliant++
		} else {
			summary.NonCompliant++
		}
		if !rec.WageConfigured {
			summary.Unconfigured++
		}
	}
	return summary
}
