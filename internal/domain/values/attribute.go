package values

// DeriveFunc computes a derived value from a raw value. It must be pure.
type DeriveFunc[T, D any] func(T) D

// Attribute holds a raw value that always satisfies its rule, together with
// a lazily computed value derived from it.
// The derived value is computed on first read and dropped on every
// successful Set.
type Attribute[T, D any] struct {
	name    string
	raw     T
	derived D
	cached  bool
	rule    Rule[T]
	derive  DeriveFunc[T, D]
}

// NewAttribute creates an Attribute with validation of the initial value.
func NewAttribute[T, D any](name string, initial T, rule Rule[T], derive DeriveFunc[T, D]) (*Attribute[T, D], error) {
	if msg, violated := rule.Violation(initial); violated {
		return nil, NewValidationError(name, initial, msg)
	}
	return &Attribute[T, D]{
		name:   name,
		raw:    initial,
		rule:   rule,
		derive: derive,
	}, nil
}

// MustNewAttribute creates an Attribute or panics
func MustNewAttribute[T, D any](name string, initial T, rule Rule[T], derive DeriveFunc[T, D]) *Attribute[T, D] {
	a, err := NewAttribute(name, initial, rule, derive)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the field name used in validation errors
func (a *Attribute[T, D]) Name() string {
	return a.name
}

// Raw returns the current raw value
func (a *Attribute[T, D]) Raw() T {
	return a.raw
}

// Set replaces the raw value. A rejected value leaves the attribute unchanged.
func (a *Attribute[T, D]) Set(v T) error {
	if msg, violated := a.rule.Violation(v); violated {
		return NewValidationError(a.name, v, msg)
	}
	a.raw = v
	a.invalidate()
	return nil
}

// Derived returns the derived value, computing it if no cached value exists.
func (a *Attribute[T, D]) Derived() D {
	if !a.cached {
		a.derived = a.derive(a.raw)
		a.cached = true
	}
	return a.derived
}

// Cached reports whether a derived value is currently held
func (a *Attribute[T, D]) Cached() bool {
	return a.cached
}

func (a *Attribute[T, D]) invalidate() {
	var zero D
	a.derived = zero
	a.cached = false
}
