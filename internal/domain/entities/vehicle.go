package entities

import (
	"strings"
	"sync/atomic"

	"github.com/reglet-dev/attrkit/internal/domain/values"
)

// vehicleCount is the number of vehicles created in this process.
var vehicleCount atomic.Int64

// VehicleCount returns the number of vehicles created since start or the
// last ResetVehicleCount.
func VehicleCount() int64 {
	return vehicleCount.Load()
}

// ResetVehicleCount sets the vehicle count back to zero.
func ResetVehicleCount() {
	vehicleCount.Store(0)
}

// Powertrain selects how a vehicle is classified.
type Powertrain string

const (
	PowertrainCombustion Powertrain = "combustion"
	PowertrainElectric   Powertrain = "electric"
)

// Classifier describes a vehicle type.
type Classifier interface {
	Classify(vt values.VehicleType) string
}

// CombustionClassifier describes conventional vehicles.
type CombustionClassifier struct{}

// Classify implements Classifier.
func (CombustionClassifier) Classify(vt values.VehicleType) string {
	return "This is a " + vt.String()
}

// ElectricClassifier describes electric vehicles.
type ElectricClassifier struct{}

// Classify implements Classifier.
func (ElectricClassifier) Classify(vt values.VehicleType) string {
	return "This is an electric " + vt.String()
}

// ClassifierFor returns the classifier for a powertrain.
// Unknown powertrains classify as combustion.
func ClassifierFor(p Powertrain) Classifier {
	switch p {
	case PowertrainElectric:
		return ElectricClassifier{}
	default:
		return CombustionClassifier{}
	}
}

// ClassifyVehicle parses typeName and describes it for the powertrain.
func ClassifyVehicle(p Powertrain, typeName string) (string, error) {
	vt, err := values.NewVehicleType(typeName)
	if err != nil {
		return "", err
	}
	return ClassifierFor(p).Classify(vt), nil
}

// Vehicle is a registered vehicle.
type Vehicle struct {
	id           values.VehicleID
	manufacturer string
	model        string
	year         int
	powertrain   Powertrain
}

// NewVehicle creates a vehicle and increments the vehicle count.
// The count is untouched when validation fails.
func NewVehicle(manufacturer, model string, year int, powertrain Powertrain) (*Vehicle, error) {
	if strings.TrimSpace(manufacturer) == "" {
		return nil, values.NewValidationError("manufacturer", manufacturer, "cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		return nil, values.NewValidationError("model", model, "cannot be empty")
	}
	if msg, violated := values.Positive[int]().Violation(year); violated {
		return nil, values.NewValidationError("year", year, msg)
	}
	if powertrain == "" {
		powertrain = PowertrainCombustion
	}

	v := &Vehicle{
		id:           values.NewVehicleID(),
		manufacturer: manufacturer,
		model:        model,
		year:         year,
		powertrain:   powertrain,
	}
	vehicleCount.Add(1)
	return v, nil
}

// ID returns the vehicle ID.
func (v *Vehicle) ID() values.VehicleID { return v.id }

// Manufacturer returns the manufacturer.
func (v *Vehicle) Manufacturer() string { return v.manufacturer }

// Model returns the model name.
func (v *Vehicle) Model() string { return v.model }

// Year returns the manufacturing year.
func (v *Vehicle) Year() int { return v.year }

// Powertrain returns the powertrain.
func (v *Vehicle) Powertrain() Powertrain { return v.powertrain }

// Classify describes typeName using this vehicle's powertrain.
func (v *Vehicle) Classify(typeName string) (string, error) {
	return ClassifyVehicle(v.powertrain, typeName)
}
