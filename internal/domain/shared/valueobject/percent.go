package valueobject

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a value object representing a percentage on the 0-100 scale.
// It is immutable - all operations return new Percent instances.
type Percent struct {
	value decimal.Decimal
}

// NewPercent creates a new Percent from a decimal on the 0-100 scale
func NewPercent(value decimal.Decimal) Percent {
	return Percent{value: value}
}

// NewPercentFromFloat creates a Percent from a float64 on the 0-100 scale
func NewPercentFromFloat(value float64) Percent {
	return Percent{value: decimal.NewFromFloat(value)}
}

// NewPercentFromString creates a Percent from a string on the 0-100 scale
func NewPercentFromString(value string) (Percent, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percent string: %w", err)
	}
	return Percent{value: d}, nil
}

// ZeroPercent returns a zero-value Percent
func ZeroPercent() Percent {
	return Percent{value: decimal.Zero}
}

// Value100 returns the value on the 0-100 scale
func (p Percent) Value100() decimal.Decimal {
	return p.value
}

// Fraction returns the value on the 0-1 scale (e.g. 12% -> 0.12)
func (p Percent) Fraction() decimal.Decimal {
	return p.value.Div(decimal.NewFromInt(100))
}

// IsZero returns true if the percent is zero
func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// IsNegative returns true if the percent is negative
func (p Percent) IsNegative() bool {
	return p.value.IsNegative()
}

// Add returns a new Percent with the sum of both values
func (p Percent) Add(other Percent) Percent {
	return Percent{value: p.value.Add(other.value)}
}

// ApplyTo returns the portion of the given amount that this percent represents
func (p Percent) ApplyTo(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.value).Div(decimal.NewFromInt(100))
}

// Equals returns true if both Percent values are equal
func (p Percent) Equals(other Percent) bool {
	return p.value.Equal(other.value)
}

// String returns a string representation of the Percent
func (p Percent) String() string {
	return p.value.String() + "%"
}

// MarshalJSON implements json.Marshaler
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Percent) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("invalid percent: %w", err)
	}
	p.value = d
	return nil
}

// Value implements driver.Valuer for database persistence
func (p Percent) Value() (driver.Value, error) {
	return p.value.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (p *Percent) Scan(value interface{}) error {
	if value == nil {
		p.value = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("cannot scan percent value: %w", err)
	}
	p.value = d
	return nil
}
