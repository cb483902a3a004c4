package entities

import (
	"math"

	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// Circle is defined by its radius. The area is derived lazily and cached
// until the radius changes.
type Circle struct {
	radius *values.Attribute[float64, float64]
}

// NewCircle creates a circle with a positive radius.
func NewCircle(radius float64) (*Circle, error) {
	attr, err := values.NewAttribute("radius", radius, values.Positive[float64](), circleArea)
	if err != nil {
		return nil, err
	}
	return &Circle{radius: attr}, nil
}

func circleArea(r float64) float64 {
	return math.Pi * r * r
}

// Radius returns the radius.
func (c *Circle) Radius() float64 {
	return c.radius.Raw()
}

// SetRadius replaces the radius.
func (c *Circle) SetRadius(r float64) error {
	return c.radius.Set(r)
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() float64 {
	return 2 * c.radius.Raw()
}

// SetDiameter sets the radius to half of d.
func (c *Circle) SetDiameter(d float64) error {
	if msg, violated := values.Positive[float64]().Violation(d); violated {
		return values.NewValidationError("diameter", d, msg)
	}
	return c.radius.Set(d / 2)
}

// Area returns pi * r^2.
func (c *Circle) Area() float64 {
	return c.radius.Derived()
}
