package values

import (
	"fmt"
	"strings"
)

// VehicleType is the body class of a vehicle.
// Enforces one of car, truck or motorcycle.
type VehicleType struct {
	value VehicleKind
}

// VehicleKind is the internal representation
type VehicleKind int

const (
	VehicleKindUnknown    VehicleKind = 0
	VehicleKindCar        VehicleKind = 1
	VehicleKindTruck      VehicleKind = 2
	VehicleKindMotorcycle VehicleKind = 3
)

// Predefined vehicle types
var (
	TypeCar        = VehicleType{VehicleKindCar}
	TypeTruck      = VehicleType{VehicleKindTruck}
	TypeMotorcycle = VehicleType{VehicleKindMotorcycle}
)

// NewVehicleType creates a VehicleType from string, ignoring case and
// surrounding whitespace.
func NewVehicleType(s string) (VehicleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return TypeCar, nil
	case "truck":
		return TypeTruck, nil
	case "motorcycle":
		return TypeMotorcycle, nil
	default:
		return VehicleType{}, NewValidationError("vehicle_type", s, "must be 'car', 'truck', or 'motorcycle'")
	}
}

// MustNewVehicleType creates a VehicleType or panics
func MustNewVehicleType(s string) VehicleType {
	vt, err := NewVehicleType(s)
	if err != nil {
		panic(err)
	}
	return vt
}

// String returns the string representation
func (v VehicleType) String() string {
	switch v.value {
	case VehicleKindCar:
		return "car"
	case VehicleKindTruck:
		return "truck"
	case VehicleKindMotorcycle:
		return "motorcycle"
	default:
		return ""
	}
}

// Kind returns the underlying kind
func (v VehicleType) Kind() VehicleKind {
	return v.value
}

// IsZero returns true if this is the zero value
func (v VehicleType) IsZero() bool {
	return v.value == VehicleKindUnknown
}

// Equals checks if two vehicle types are equal
func (v VehicleType) Equals(other VehicleType) bool {
	return v.value == other.value
}

// MarshalJSON implements json.Marshaler
func (v VehicleType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *VehicleType) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) < 2 {
		return fmt.Errorf("invalid vehicle type JSON")
	}
	str = str[1 : len(str)-1]

	vt, err := NewVehicleType(str)
	if err != nil {
		return err
	}
	*v = vt
	return nil
}
