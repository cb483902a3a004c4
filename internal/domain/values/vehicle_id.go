// Package values contains domain value objects that wrap primitive types
// with validation, and the generic validated attribute they build on.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// VehicleID uniquely identifies a registered vehicle.
type VehicleID struct {
	value uuid.UUID
}

// NewVehicleID creates a new random vehicle ID
func NewVehicleID() VehicleID {
	return VehicleID{value: uuid.New()}
}

// ParseVehicleID parses a string into a VehicleID
func ParseVehicleID(s string) (VehicleID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return VehicleID{}, fmt.Errorf("invalid vehicle ID: %w", err)
	}
	return VehicleID{value: id}, nil
}

// String returns the string representation
func (v VehicleID) String() string {
	return v.value.String()
}

// IsZero returns true if this is the zero value
func (v VehicleID) IsZero() bool {
	return v.value == uuid.Nil
}

// Equals checks if two VehicleIDs are equal
func (v VehicleID) Equals(other VehicleID) bool {
	return v.value == other.value
}

// MarshalJSON implements json.Marshaler
func (v VehicleID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.value.String() + `"`), nil
}
