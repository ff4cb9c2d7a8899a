package salarytemplate

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ComponentKind string

const (
	KindEarning      ComponentKind = "earning"
	KindDeduction    ComponentKind = "deduction"
	KindContribution ComponentKind = "contribution"
)

// CalculationFixedAmount is the only calculation type that carries a
// literal amount. Percentage and formula components are resolved by
// payroll, not here.
const CalculationFixedAmount = "fixed-amount"

// Component is one parsed entry of a template. Value is valid only when
// the stored value was a JSON number.
type Component struct {
	Name            string
	Kind            ComponentKind
	CalculationType string
	Value           decimal.NullDecimal
	Active          bool
}

// ContributesToGross reports whether the component is part of gross wage.
func (c Component) ContributesToGross() bool {
	return c.Kind == KindEarning &&
		c.Active &&
		c.CalculationType == CalculationFixedAmount &&
		c.Value.Valid
}

type rawComponent struct {
	Name            json.RawMessage `json:"name"`
	Kind            json.RawMessage `json:"kind"`
	CalculationType json.RawMessage `json:"calculationType"`
	Value           json.RawMessage `json:"value"`
	IsActive        json.RawMessage `json:"isActive"`
}

// ParseComponents decodes a stored component list. Templates are edited
// by hand, so anything that cannot be read is skipped: an unparseable
// document yields no components and a malformed entry is dropped.
func ParseComponents(raw string) []Component {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}

	components := make([]Component, 0, len(entries))
	for _, entry := range entries {
		c, ok := parseComponent(entry)
		if !ok {
			continue
		}
		components = append(components, c)
	}
	return components
}

func parseComponent(entry json.RawMessage) (Component, bool) {
	var rc rawComponent
	if err := json.Unmarshal(entry, &rc); err != nil {
		return Component{}, false
	}

	kind, ok := decodeString(rc.Kind)
	if !ok || kind == "" {
		return Component{}, false
	}

	name, _ := decodeString(rc.Name)
	calculationType, _ := decodeString(rc.CalculationType)

	return Component{
		Name:            name,
		Kind:            ComponentKind(kind),
		CalculationType: calculationType,
		Value:           decodeNumber(rc.Value),
		Active:          !bytes.Equal(bytes.TrimSpace(rc.IsActive), []byte("false")),
	}, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeNumber accepts JSON number literals only; quoted numbers, null
// and booleans are placeholders.
func decodeNumber(raw json.RawMessage) decimal.NullDecimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
