package values

import "fmt"

// Number is the set of numeric types the built-in rules accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a predicate a raw value must satisfy, with the message reported
// when it does not.
type Rule[T any] struct {
	Check   func(T) bool
	Message string

	explain func(T) string
}

// NewRule creates a Rule from a predicate and its failure message
func NewRule[T any](message string, check func(T) bool) Rule[T] {
	return Rule[T]{Check: check, Message: message}
}

// Allows reports whether v satisfies the rule. A rule without a predicate
// accepts everything.
func (r Rule[T]) Allows(v T) bool {
	if r.Check == nil {
		return true
	}
	return r.Check(v)
}

// Violation returns the failure message for v, or false when v is allowed.
func (r Rule[T]) Violation(v T) (string, bool) {
	if r.Allows(v) {
		return "", false
	}
	if r.explain != nil {
		return r.explain(v), true
	}
	return r.Message, true
}

// AnyValue accepts every value.
func AnyValue[T any]() Rule[T] {
	return Rule[T]{Message: "always valid"}
}

// Positive requires v > 0.
func Positive[N Number]() Rule[N] {
	return NewRule("must be positive", func(v N) bool { return v > 0 })
}

// NonNegative requires v >= 0.
func NonNegative[N Number]() Rule[N] {
	return NewRule("must be non-negative", func(v N) bool { return v >= 0 })
}

// Between requires lo <= v <= hi.
func Between[N Number](lo, hi N) Rule[N] {
	return NewRule(
		fmt.Sprintf("must be between %v and %v", lo, hi),
		func(v N) bool { return lo <= v && v <= hi },
	)
}

// AllOf combines rules. The message of the first rule that rejects a value
// is reported.
func AllOf[T any](rules ...Rule[T]) Rule[T] {
	return Rule[T]{
		Message: "must satisfy all rules",
		Check: func(v T) bool {
			for _, r := range rules {
				if !r.Allows(v) {
					return false
				}
			}
			return true
		},
		explain: func(v T) string {
			for _, r := range rules {
				if msg, violated := r.Violation(v); violated {
					return msg
				}
			}
			return ""
		},
	}
}
