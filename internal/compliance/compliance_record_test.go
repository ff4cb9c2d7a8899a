package compliance_test

import (
	"testing"

	"go-hris-compliance/internal/compliance"
	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildRecord(t *testing.T) {
	emp := employee.Employee{
		ID:           uuid.New(),
		FirstName:    "Asha",
		LastName:     "Patil",
		EmployeeCode: "EMP-001",
		Department:   &employee.Department{Name: "Operations"},
		Designation:  &employee.Designation{DesignationName: "Skilled Fitter"},
	}

	tests := []struct {
		name       string
		gross      int64
		minimum    int64
		difference int64
		status     compliance.Status
		remarks    string
	}{
		{"above minimum", 20000, 18000, 2000, compliance.StatusCompliant, compliance.RemarkCompliant},
		{"below minimum", 15000, 18000, -3000, compliance.StatusNonCompliant, compliance.RemarkNonCompliant},
		{"exactly minimum", 18000, 18000, 0, compliance.StatusCompliant, compliance.RemarkCompliant},
		{"nothing configured", 0, 0, 0, compliance.StatusCompliant, compliance.RemarkCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := compliance.BuildRecord(emp, "Maharashtra", domain.CategorySkilled,
				decimal.NewFromInt(tt.gross), decimal.NewFromInt(tt.minimum), "2026-05")

			assert.True(t, rec.Difference.Equal(decimal.NewFromInt(tt.difference)), "difference %s", rec.Difference)
			assert.Equal(t, tt.status, rec.ComplianceStatus)
			assert.Equal(t, tt.remarks, rec.Remarks)
			assert.True(t, rec.ActualWagePaid.Equal(decimal.NewFromInt(tt.gross)))
			assert.True(t, rec.ApplicableMinimumWage.Equal(decimal.NewFromInt(tt.minimum)))
		})
	}

	rec := compliance.BuildRecord(emp, "Maharashtra", domain.CategorySkilled, decimal.Zero, decimal.Zero, "2026-05")
	assert.Equal(t, emp.ID, rec.EmployeeID)
	assert.Equal(t, "Asha Patil", rec.EmployeeName)
	assert.Equal(t, "EMP-001", rec.EmployeeCode)
	assert.Equal(t, "Operations", rec.Department)
	assert.Equal(t, "Skilled Fitter", rec.Designation)
	assert.Equal(t, "Maharashtra", rec.State)
	assert.Equal(t, domain.CategorySkilled, rec.Category)
	assert.Equal(t, "2026-05", rec.WageMonth)
}

func TestBuildRecord_MissingRelations(t *testing.T) {
	rec := compliance.BuildRecord(employee.Employee{FirstName: "Solo"}, "Goa", domain.CategorySkilled,
		decimal.NewFromInt(1), decimal.Zero, "2026-05")

	assert.Equal(t, "Solo", rec.EmployeeName)
	assert.Empty(t, rec.Department)
	assert.Empty(t, rec.Designation)
}

func TestSummarize(t *testing.T) {
	records := []compliance.ComplianceRecord{
		{ComplianceStatus: compliance.StatusCompliant, WageConfigured: true},
		{ComplianceStatus: compliance.StatusCompliant, WageConfigured: false},
		{ComplianceStatus: compliance.StatusNonCompliant, WageConfigured: true},
	}

	summary := compliance.Summarize(records)

	assert.Equal(t, compliance.ReportSummary{Total: 3, Compliant: 2, NonCompliant: 1, Unconfigured: 1}, summary)
	assert.Equal(t, compliance.ReportSummary{}, compliance.Summarize(nil))
}
