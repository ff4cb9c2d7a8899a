package minimumwage

import (
	"sort"
	"time"

	"go-hris-compliance/internal/domain"

	"github.com/shopspring/decimal"
)

// Resolver answers "what is the wage floor for (state, category)" against a
// snapshot of configurations taken at one instant. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	asOf    time.Time
	entries map[string]map[domain.SkillCategory]MinimumWageConfiguration
}

// NewResolver indexes the configurations that cover asOf. When several
// cover the same pair, the one with the latest EffectiveFrom wins.
func NewResolver(configs []MinimumWageConfiguration, asOf time.Time) *Resolver {
	covering := make([]MinimumWageConfiguration, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Covers(asOf) {
			covering = append(covering, cfg)
		}
	}

	sort.SliceStable(covering, func(i, j int) bool {
		return covering[i].EffectiveFrom.After(covering[j].EffectiveFrom)
	})

	entries := make(map[string]map[domain.SkillCategory]MinimumWageConfiguration)
	for _, cfg := range covering {
		byCategory, ok := entries[cfg.State]
		if !ok {
			byCategory = make(map[domain.SkillCategory]MinimumWageConfiguration)
			entries[cfg.State] = byCategory
		}
		if _, seen := byCategory[cfg.Category]; !seen {
			byCategory[cfg.Category] = cfg
		}
	}

	return &Resolver{asOf: asOf, entries: entries}
}

func (r *Resolver) AsOf() time.Time {
	return r.asOf
}

// Lookup returns the winning configuration for the pair, if any.
func (r *Resolver) Lookup(state string, category domain.SkillCategory) (MinimumWageConfiguration, bool) {
	byCategory, ok := r.entries[state]
	if !ok {
		return MinimumWageConfiguration{}, false
	}
	cfg, ok := byCategory[category]
	return cfg, ok
}

// Resolve returns the applicable minimum wage, or zero when nothing is
// configured for the pair.
func (r *Resolver) Resolve(state string, category domain.SkillCategory) decimal.Decimal {
	cfg, ok := r.Lookup(state, category)
	if !ok {
		return decimal.Zero
	}
	return cfg.MinimumWage
}
