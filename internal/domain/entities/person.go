// Package entities contains the domain types built on validated attributes.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"strings"
	"time"

	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// Compensation is the raw input to a person's total salary.
type Compensation struct {
	Base         int64   // Base salary, non-negative
	BonusPercent float64 // Bonus as a percentage of base, 0..100
}

// Total returns base plus the bonus share of base.
func (c Compensation) Total() float64 {
	base := float64(c.Base)
	return base + base*(c.BonusPercent/100)
}

var compensationRule = values.AllOf(
	values.NewRule("base salary must be non-negative", func(c Compensation) bool {
		return c.Base >= 0
	}),
	values.NewRule("bonus must be between 0 and 100", func(c Compensation) bool {
		return c.BonusPercent >= 0 && c.BonusPercent <= 100
	}),
)

// Person is a named individual with an optional birth year and a salary.
//
// Invariants Enforced:
// - Full name assignments carry at least a first and a last name
// - Birth year lies between year 1 and the current year
// - Base salary is non-negative and bonus lies in [0, 100]
type Person struct {
	firstName string
	lastName  string
	birthYear *values.Attribute[int, int]
	pay       *values.Attribute[Compensation, float64]
	clock     func() time.Time
}

// PersonOption configures a Person.
type PersonOption func(*Person)

// WithClock sets the time source used for the current year.
func WithClock(clock func() time.Time) PersonOption {
	return func(p *Person) {
		p.clock = clock
	}
}

// NewPerson creates a person. Names are stored as given.
func NewPerson(firstName, lastName string, opts ...PersonOption) *Person {
	p := &Person{
		firstName: firstName,
		lastName:  lastName,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pay = values.MustNewAttribute("salary", Compensation{}, compensationRule, Compensation.Total)
	return p
}

// CurrentYear returns the year according to the person's clock.
func (p *Person) CurrentYear() int {
	return p.clock().Year()
}

// FirstName returns the first name.
func (p *Person) FirstName() string {
	return p.firstName
}

// LastName returns the last name.
func (p *Person) LastName() string {
	return p.lastName
}

// FullName returns first and last name separated by a space.
func (p *Person) FullName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// SetFullName splits name on whitespace. The first word becomes the first
// name and the remaining words the last name.
func (p *Person) SetFullName(name string) error {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return values.NewValidationError("full_name", name, "must include both first and last name")
	}
	p.firstName = parts[0]
	p.lastName = strings.Join(parts[1:], " ")
	return nil
}

// SetBirthYear sets the year of birth.
func (p *Person) SetBirthYear(year int) error {
	if p.birthYear != nil {
		return p.birthYear.Set(year)
	}
	attr, err := values.NewAttribute("birth_year", year, p.birthYearRule(), p.ageAt)
	if err != nil {
		return err
	}
	p.birthYear = attr
	return nil
}

// BirthYear returns the year of birth, if one was set.
func (p *Person) BirthYear() (int, bool) {
	if p.birthYear == nil {
		return 0, false
	}
	return p.birthYear.Raw(), true
}

// Age returns the age in years, if a birth year was set.
// It is computed once per birth year assignment.
func (p *Person) Age() (int, bool) {
	if p.birthYear == nil {
		return 0, false
	}
	return p.birthYear.Derived(), true
}

func (p *Person) birthYearRule() values.Rule[int] {
	return values.NewRule("must be between 1 and the current year", func(year int) bool {
		return year >= 1 && year <= p.CurrentYear()
	})
}

func (p *Person) ageAt(birthYear int) int {
	return p.CurrentYear() - birthYear
}

// SetSalary sets base salary and bonus percentage together.
// Either both are stored or neither.
func (p *Person) SetSalary(base int64, bonusPercent float64) error {
	return p.pay.Set(Compensation{Base: base, BonusPercent: bonusPercent})
}

// SetBonus sets the bonus percentage, keeping the base salary.
func (p *Person) SetBonus(bonusPercent float64) error {
	return p.pay.Set(Compensation{Base: p.pay.Raw().Base, BonusPercent: bonusPercent})
}

// BaseSalary returns the base salary.
func (p *Person) BaseSalary() int64 {
	return p.pay.Raw().Base
}

// Bonus returns the bonus percentage.
func (p *Person) Bonus() float64 {
	return p.pay.Raw().BonusPercent
}

// Salary returns the total salary including the bonus.
func (p *Person) Salary() float64 {
	return p.pay.Derived()
}
