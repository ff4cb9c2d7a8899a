package compliance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hris-compliance/internal/compliance"
	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/employee"
	employeeMock "go-hris-compliance/internal/employee/mock"
	"go-hris-compliance/internal/minimumwage"
	"go-hris-compliance/internal/salarytemplate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 6, 15, 9, 30, 0, 0, time.UTC)

type fakeWageCatalog struct {
	configs []minimumwage.MinimumWageConfiguration
	err     error
	asOf    time.Time
}

func (f *fakeWageCatalog) FindEffective(ctx context.Context, asOf time.Time) ([]minimumwage.MinimumWageConfiguration, error) {
	f.asOf = asOf
	return f.configs, f.err
}

type stubClassifier struct {
	category domain.SkillCategory
}

func (s stubClassifier) Classify(string) domain.SkillCategory {
	return s.category
}

type serviceDeps struct {
	employees *employeeMock.MockRepository
	catalog   *fakeWageCatalog
	service   compliance.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	employees := employeeMock.NewMockRepository(ctrl)
	catalog := &fakeWageCatalog{}

	return &serviceDeps{
		employees: employees,
		catalog:   catalog,
		service: compliance.NewServiceWithClock(employees, catalog, compliance.KeywordClassifier{}, "Maharashtra",
			func() time.Time { return fixedNow }),
	}
}

func strPtr(v string) *string { return &v }

func template(components string) *salarytemplate.SalaryTemplate {
	return &salarytemplate.SalaryTemplate{ID: uuid.New(), Name: "t", Components: components}
}

func newEmployee(first, code, designation string, state *string, tmpl *salarytemplate.SalaryTemplate) employee.Employee {
	return employee.Employee{
		ID:             uuid.New(),
		FirstName:      first,
		LastName:       "Test",
		EmployeeCode:   code,
		State:          state,
		Status:         employee.StatusActive,
		Department:     &employee.Department{Name: "Operations"},
		Designation:    &employee.Designation{DesignationName: designation},
		SalaryTemplate: tmpl,
	}
}

func wage(state string, category domain.SkillCategory, amount int64) minimumwage.MinimumWageConfiguration {
	return minimumwage.MinimumWageConfiguration{
		ID:            uuid.New(),
		State:         state,
		Category:      category,
		MinimumWage:   decimal.NewFromInt(amount),
		EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
}

func TestComplianceService_GetReport_EndToEnd(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	helper := newEmployee("Ravi", "EMP-001", "Unskilled Helper", nil,
		template(`[{"name":"Basic","kind":"earning","calculationType":"fixed-amount","value":12000}]`))

	deps.employees.EXPECT().FindActive(ctx, "").Return([]employee.Employee{helper}, nil)
	deps.catalog.configs = []minimumwage.MinimumWageConfiguration{
		wage("Maharashtra", domain.CategoryUnskilled, 15000),
	}

	records, err := deps.service.GetReport(ctx, compliance.ReportFilter{})

	assert.NoError(t, err)
	assert.Equal(t, fixedNow, deps.catalog.asOf)
	if assert.Len(t, records, 1) {
		rec := records[0]
		assert.Equal(t, helper.ID, rec.EmployeeID)
		assert.Equal(t, "Maharashtra", rec.State)
		assert.Equal(t, domain.CategoryUnskilled, rec.Category)
		assert.True(t, rec.ActualWagePaid.Equal(decimal.NewFromInt(12000)))
		assert.True(t, rec.ApplicableMinimumWage.Equal(decimal.NewFromInt(15000)))
		assert.True(t, rec.Difference.Equal(decimal.NewFromInt(-3000)))
		assert.Equal(t, compliance.StatusNonCompliant, rec.ComplianceStatus)
		assert.Equal(t, compliance.RemarkNonCompliant, rec.Remarks)
		assert.Equal(t, "2026-06", rec.WageMonth)
		assert.True(t, rec.WageConfigured)
	}
}

func TestComplianceService_GetReport_Filters(t *testing.T) {
	ctx := context.Background()

	richTemplate := template(`[
		{"name":"Basic","kind":"earning","calculationType":"fixed-amount","value":20000},
		{"name":"PF","kind":"deduction","calculationType":"fixed-amount","value":1800}
	]`)
	poorTemplate := template(`[{"name":"Basic","kind":"earning","calculationType":"fixed-amount","value":12000}]`)

	employees := []employee.Employee{
		newEmployee("Ravi", "EMP-001", "Unskilled Helper", nil, poorTemplate),
		newEmployee("Meera", "EMP-002", "Skilled Fitter", strPtr("Maharashtra"), richTemplate),
		newEmployee("Kiran", "EMP-003", "Semi-skilled Operator", strPtr("Karnataka"), poorTemplate),
		newEmployee("Anil", "EMP-004", "Unskilled Loader", strPtr("Karnataka"), richTemplate),
	}
	configs := []minimumwage.MinimumWageConfiguration{
		wage("Maharashtra", domain.CategoryUnskilled, 15000),
		wage("Maharashtra", domain.CategorySkilled, 18000),
		wage("Karnataka", domain.CategorySemiSkilled, 14000),
		wage("Karnataka", domain.CategoryUnskilled, 13000),
	}

	codes := func(records []compliance.ComplianceRecord) []string {
		out := make([]string, len(records))
		for i, rec := range records {
			out[i] = rec.EmployeeCode
		}
		return out
	}

	tests := []struct {
		name   string
		filter compliance.ReportFilter
		want   []string
	}{
		{name: "no filter keeps fetch order", filter: compliance.ReportFilter{}, want: []string{"EMP-001", "EMP-002", "EMP-003", "EMP-004"}},
		{name: "all sentinel", filter: compliance.ReportFilter{Status: "all", State: "all"}, want: []string{"EMP-001", "EMP-002", "EMP-003", "EMP-004"}},
		{name: "compliant only", filter: compliance.ReportFilter{Status: "Compliant"}, want: []string{"EMP-002", "EMP-004"}},
		{name: "non-compliant only", filter: compliance.ReportFilter{Status: "Non-Compliant"}, want: []string{"EMP-001", "EMP-003"}},
		{name: "status is case sensitive", filter: compliance.ReportFilter{Status: "compliant"}, want: []string{}},
		{name: "state", filter: compliance.ReportFilter{State: "Maharashtra"}, want: []string{"EMP-001", "EMP-002"}},
		{name: "state and status", filter: compliance.ReportFilter{State: "Karnataka", Status: "Compliant"}, want: []string{"EMP-004"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			deps.employees.EXPECT().FindActive(ctx, "").Return(employees, nil)
			deps.catalog.configs = configs

			records, err := deps.service.GetReport(ctx, tt.filter)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, codes(records))
		})
	}
}

func TestComplianceService_GetReport_MonthAndSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("month labels records and search is passed through", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().
			FindActive(ctx, "ravi").
			Return([]employee.Employee{newEmployee("Ravi", "EMP-001", "Helper", nil, nil)}, nil)

		records, err := deps.service.GetReport(ctx, compliance.ReportFilter{Month: "2025-12", Search: "ravi"})

		assert.NoError(t, err)
		if assert.Len(t, records, 1) {
			assert.Equal(t, "2025-12", records[0].WageMonth)
		}
	})

	t.Run("month is kept as given", func(t *testing.T) {
		for _, month := range []string{"2026-06-15", "2026-6", "2026-06-15T00:00:00Z", "June 2026"} {
			deps := setupServiceTest(t)
			deps.employees.EXPECT().
				FindActive(ctx, "").
				Return([]employee.Employee{newEmployee("Ravi", "EMP-001", "Helper", nil, nil)}, nil)

			records, err := deps.service.GetReport(ctx, compliance.ReportFilter{Month: month})

			assert.NoError(t, err, month)
			assert.Equal(t, fixedNow, deps.catalog.asOf)
			if assert.Len(t, records, 1, month) {
				assert.Equal(t, month, records[0].WageMonth)
			}
		}
	})
}

func TestComplianceService_GetReport_Unconfigured(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	emp := newEmployee("Ravi", "EMP-001", "Unskilled Helper", strPtr("Goa"),
		template(`[{"name":"Basic","kind":"earning","calculationType":"fixed-amount","value":9000}]`))
	deps.employees.EXPECT().FindActive(ctx, "").Return([]employee.Employee{emp}, nil)
	deps.catalog.configs = []minimumwage.MinimumWageConfiguration{
		wage("Maharashtra", domain.CategoryUnskilled, 15000),
	}

	records, err := deps.service.GetReport(ctx, compliance.ReportFilter{})

	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		rec := records[0]
		assert.True(t, rec.ApplicableMinimumWage.IsZero())
		assert.True(t, rec.Difference.Equal(decimal.NewFromInt(9000)))
		assert.Equal(t, compliance.StatusCompliant, rec.ComplianceStatus)
		assert.False(t, rec.WageConfigured)
	}
}

func TestComplianceService_GetReport_MissingTemplate(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	emp := newEmployee("Ravi", "EMP-001", "Unskilled Helper", nil, nil)
	deps.employees.EXPECT().FindActive(ctx, "").Return([]employee.Employee{emp}, nil)
	deps.catalog.configs = []minimumwage.MinimumWageConfiguration{
		wage("Maharashtra", domain.CategoryUnskilled, 15000),
	}

	records, err := deps.service.GetReport(ctx, compliance.ReportFilter{})

	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.True(t, records[0].ActualWagePaid.IsZero())
		assert.Equal(t, compliance.StatusNonCompliant, records[0].ComplianceStatus)
	}
}

func TestComplianceService_GetReport_InjectedClassifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := employeeMock.NewMockRepository(ctrl)
	catalog := &fakeWageCatalog{configs: []minimumwage.MinimumWageConfiguration{
		wage("Maharashtra", domain.CategorySkilled, 30000),
	}}
	svc := compliance.NewServiceWithClock(employees, catalog, stubClassifier{category: domain.CategorySkilled}, "Maharashtra",
		func() time.Time { return fixedNow })
	ctx := context.Background()

	employees.EXPECT().
		FindActive(ctx, "").
		Return([]employee.Employee{newEmployee("Ravi", "EMP-001", "Unskilled Helper", nil, nil)}, nil)

	records, err := svc.GetReport(ctx, compliance.ReportFilter{})

	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.Equal(t, domain.CategorySkilled, records[0].Category)
		assert.True(t, records[0].ApplicableMinimumWage.Equal(decimal.NewFromInt(30000)))
	}
}

func TestComplianceService_GetReport_ReadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("employee directory", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindActive(ctx, "").Return(nil, errors.New("db down"))

		records, err := deps.service.GetReport(ctx, compliance.ReportFilter{})

		assert.EqualError(t, err, "db down")
		assert.Nil(t, records)
	})

	t.Run("wage catalog", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindActive(ctx, "").Return([]employee.Employee{newEmployee("A", "1", "", nil, nil)}, nil)
		deps.catalog.err = errors.New("catalog down")

		records, err := deps.service.GetReport(ctx, compliance.ReportFilter{})

		assert.EqualError(t, err, "catalog down")
		assert.Nil(t, records)
	})
}
