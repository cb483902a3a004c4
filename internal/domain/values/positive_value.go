package values

// PositiveValue holds a number that is either unset or strictly positive.
type PositiveValue struct {
	value float64
	set   bool
}

// NewPositiveValue creates a PositiveValue with validation
func NewPositiveValue(v float64) (PositiveValue, error) {
	var p PositiveValue
	if err := p.Set(v); err != nil {
		return PositiveValue{}, err
	}
	return p, nil
}

// Set replaces the value. Non-positive values are rejected.
func (p *PositiveValue) Set(v float64) error {
	if msg, violated := Positive[float64]().Violation(v); violated {
		return NewValidationError("value", v, msg)
	}
	p.value = v
	p.set = true
	return nil
}

// Value returns the value and whether it has been set
func (p PositiveValue) Value() (float64, bool) {
	return p.value, p.set
}

// IsSet returns true once a value has been assigned
func (p PositiveValue) IsSet() bool {
	return p.set
}

// Equals checks if two values are equal
func (p PositiveValue) Equals(other PositiveValue) bool {
	return p.set == other.set && p.value == other.value
}
