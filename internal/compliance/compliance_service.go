package compliance

import (
	"context"
	"time"

	"go-hris-compliance/internal/employee"
	"go-hris-compliance/internal/minimumwage"
	"go-hris-compliance/internal/salarytemplate"
	"go-hris-compliance/internal/shared/contextutil"

	"go.uber.org/zap"
)

const wageMonthLayout = "2006-01"

// WageCatalog supplies the configurations in force at an instant.
// minimumwage.Repository satisfies it.
type WageCatalog interface {
	FindEffective(ctx context.Context, asOf time.Time) ([]minimumwage.MinimumWageConfiguration, error)
}

//go:generate mockgen -source=compliance_service.go -destination=mock/compliance_service_mock.go -package=mock
type Service interface {
	GetReport(ctx context.Context, filter ReportFilter) ([]ComplianceRecord, error)
}

type service struct {
	employees    employee.Repository
	wages        WageCatalog
	classifier   CategoryClassifier
	defaultState string
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	employees employee.Repository,
	wages WageCatalog,
	classifier CategoryClassifier,
	defaultState string,
) Service {
	return NewServiceWithClock(employees, wages, classifier, defaultState, time.Now)
}

func NewServiceWithClock(
	employees employee.Repository,
	wages WageCatalog,
	classifier CategoryClassifier,
	defaultState string,
	now func() time.Time,
) Service {
	if classifier == nil {
		classifier = KeywordClassifier{}
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		employees:    employees,
		wages:        wages,
		classifier:   classifier,
		defaultState: defaultState,
		now:          now,
		logger:       zap.L().Named("compliance.service"),
	}
}

// GetReport evaluates every active employee against the minimum wage in
// force now. Records keep the employee fetch order; status and state
// filters are applied afterwards. Month is copied onto the records as
// given, YYYY-MM or a full date alike; it never changes the as-of instant.
func (s *service) GetReport(ctx context.Context, filter ReportFilter) ([]ComplianceRecord, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	now := s.now()
	wageMonth := filter.Month
	if wageMonth == "" {
		wageMonth = now.Format(wageMonthLayout)
	}

	employees, err := s.employees.FindActive(ctx, filter.Search)
	if err != nil {
		logger.Error("failed to load active employees", zap.Error(err))
		return nil, err
	}

	configs, err := s.wages.FindEffective(ctx, now)
	if err != nil {
		logger.Error("failed to load minimum wage configurations", zap.Error(err))
		return nil, err
	}

	resolver := minimumwage.NewResolver(configs, now)

	records := make([]ComplianceRecord, 0, len(employees))
	for _, emp := range employees {
		state := emp.StateOr(s.defaultState)
		category := s.classifier.Classify(emp.DesignationName())
		gross := salarytemplate.EvaluateGrossWage(emp.SalaryTemplate)

		minimum := resolver.Resolve(state, category)
		_, configured := resolver.Lookup(state, category)

		rec := BuildRecord(emp, state, category, gross, minimum, wageMonth)
		rec.WageConfigured = configured

		if !matches(filter.Status, string(rec.ComplianceStatus)) || !matches(filter.State, rec.State) {
			continue
		}
		records = append(records, rec)
	}

	logger.Debug("compliance report computed",
		zap.Int("employees", len(employees)),
		zap.Int("configurations", len(configs)),
		zap.Int("records", len(records)),
		zap.String("wage_month", wageMonth),
	)

	return records, nil
}

func matches(want, got string) bool {
	if want == "" || want == filterAll {
		return true
	}
	return want == got
}
