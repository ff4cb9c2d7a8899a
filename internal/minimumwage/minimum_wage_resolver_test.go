package minimumwage_test

import (
	"testing"
	"time"

	"go-hris-compliance/internal/domain"
	"go-hris-compliance/internal/minimumwage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func wageConfig(state string, category domain.SkillCategory, amount int64, from time.Time, to *time.Time, active bool) minimumwage.MinimumWageConfiguration {
	return minimumwage.MinimumWageConfiguration{
		ID:            uuid.New(),
		State:         state,
		Category:      category,
		MinimumWage:   decimal.NewFromInt(amount),
		EffectiveFrom: from,
		EffectiveTo:   to,
		IsActive:      active,
	}
}

func TestResolver(t *testing.T) {
	asOf := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	configs := []minimumwage.MinimumWageConfiguration{
		wageConfig("Maharashtra", domain.CategoryUnskilled, 14000, jan, nil, true),
		wageConfig("Maharashtra", domain.CategoryUnskilled, 15000, apr, nil, true),
		wageConfig("Maharashtra", domain.CategoryUnskilled, 99999, future, nil, true),
		wageConfig("Maharashtra", domain.CategorySkilled, 20000, jan, &may, true),
		wageConfig("Maharashtra", domain.CategorySemiSkilled, 17000, jan, nil, false),
		wageConfig("Karnataka", domain.CategorySkilled, 18000, jan, &asOf, true),
	}
	r := minimumwage.NewResolver(configs, asOf)

	tests := []struct {
		name     string
		state    string
		category domain.SkillCategory
		want     int64
		found    bool
	}{
		{name: "latest effective wins", state: "Maharashtra", category: domain.CategoryUnskilled, want: 15000, found: true},
		{name: "expired window ignored", state: "Maharashtra", category: domain.CategorySkilled, want: 0, found: false},
		{name: "inactive ignored", state: "Maharashtra", category: domain.CategorySemiSkilled, want: 0, found: false},
		{name: "end date is inclusive", state: "Karnataka", category: domain.CategorySkilled, want: 18000, found: true},
		{name: "unknown state", state: "Goa", category: domain.CategorySkilled, want: 0, found: false},
		{name: "state is case sensitive", state: "maharashtra", category: domain.CategoryUnskilled, want: 0, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.state, tt.category)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)

			_, ok := r.Lookup(tt.state, tt.category)
			assert.Equal(t, tt.found, ok)
		})
	}

	assert.Equal(t, asOf, r.AsOf())
}

func TestResolver_TieKeepsFirstSeen(t *testing.T) {
	asOf := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first := wageConfig("Goa", domain.CategorySkilled, 100, from, nil, true)
	second := wageConfig("Goa", domain.CategorySkilled, 200, from, nil, true)

	r := minimumwage.NewResolver([]minimumwage.MinimumWageConfiguration{first, second}, asOf)

	cfg, ok := r.Lookup("Goa", domain.CategorySkilled)
	assert.True(t, ok)
	assert.Equal(t, first.ID, cfg.ID)
}

func TestResolver_Empty(t *testing.T) {
	r := minimumwage.NewResolver(nil, time.Now())

	assert.True(t, r.Resolve("Maharashtra", domain.CategoryUnskilled).IsZero())
}
