package entities

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// DefaultStaticValue is a type-level constant shared by every
// DynamicObject. It is not stored per object and cannot be overridden by Set.
const DefaultStaticValue = 0

var attributeNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DynamicObject holds attributes assigned by name at runtime.
// Lookups of names that were never set fail with a NotFoundError.
type DynamicObject struct {
	attrs map[string]any
}

// NewDynamicObject creates an empty object.
func NewDynamicObject() *DynamicObject {
	return &DynamicObject{attrs: make(map[string]any)}
}

// StaticValue returns the value shared by all objects.
func (o *DynamicObject) StaticValue() int {
	return DefaultStaticValue
}

// Set assigns v to name, replacing any previous value.
func (o *DynamicObject) Set(name string, v any) error {
	if !attributeNamePattern.MatchString(name) {
		return values.NewValidationError("name", name, "must be an identifier")
	}
	o.attrs[name] = v
	return nil
}

// Get returns the value stored under name.
func (o *DynamicObject) Get(name string) (any, error) {
	v, ok := o.attrs[name]
	if !ok {
		return nil, &values.NotFoundError{Key: name}
	}
	return v, nil
}

// Has reports whether name is set.
func (o *DynamicObject) Has(name string) bool {
	_, ok := o.attrs[name]
	return ok
}

// Delete removes name. It reports whether name was present.
func (o *DynamicObject) Delete(name string) bool {
	_, ok := o.attrs[name]
	delete(o.attrs, name)
	return ok
}

// Keys returns the attribute names in sorted order.
func (o *DynamicObject) Keys() []string {
	keys := make([]string, 0, len(o.attrs))
	for k := range o.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of attributes.
func (o *DynamicObject) Len() int {
	return len(o.attrs)
}

// Lookup returns the value under name as a T.
func Lookup[T any](o *DynamicObject, name string) (T, error) {
	var zero T
	raw, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, &values.TypeMismatchError{
			Key:  name,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", raw),
		}
	}
	return v, nil
}
