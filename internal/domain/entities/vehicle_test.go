package entities

import (
	"errors"
	"testing"

	"github.com/reglet-dev/attrkit/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewVehicle_CountsInstances(t *testing.T) {
	ResetVehicleCount()
	t.Cleanup(ResetVehicleCount)

	_, err := NewVehicle("Toyota", "Corolla", 2020, PowertrainCombustion)
	require.NoError(t, err)
	_, err = NewVehicle("Tesla", "Model 3", 2022, PowertrainElectric)
	require.NoError(t, err)

	assert.Equal(t, int64(2), VehicleCount())

	ResetVehicleCount()
	assert.Equal(t, int64(0), VehicleCount())
}

func Test_NewVehicle_Validation(t *testing.T) {
	ResetVehicleCount()
	t.Cleanup(ResetVehicleCount)

	tests := []struct {
		name         string
		manufacturer string
		model        string
		year         int
		field        string
	}{
		{"empty manufacturer", "", "Corolla", 2020, "manufacturer"},
		{"blank model", "Toyota", "  ", 2020, "model"},
		{"zero year", "Toyota", "Corolla", 0, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVehicle(tt.manufacturer, tt.model, tt.year, PowertrainCombustion)
			assert.Nil(t, v)

			var vErr *values.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	assert.Equal(t, int64(0), VehicleCount())
}

func Test_Vehicle_Accessors(t *testing.T) {
	t.Cleanup(ResetVehicleCount)

	v, err := NewVehicle("Ford", "F-150", 2019, "")
	require.NoError(t, err)

	assert.False(t, v.ID().IsZero())
	assert.Equal(t, "Ford", v.Manufacturer())
	assert.Equal(t, "F-150", v.Model())
	assert.Equal(t, 2019, v.Year())
	assert.Equal(t, PowertrainCombustion, v.Powertrain())
}

func Test_ClassifyVehicle(t *testing.T) {
	tests := []struct {
		name       string
		powertrain Powertrain
		input      string
		want       string
		wantErr    bool
	}{
		{"car", PowertrainCombustion, "car", "This is a car", false},
		{"truck mixed case", PowertrainCombustion, "TrUcK", "This is a truck", false},
		{"motorcycle", PowertrainCombustion, "motorcycle", "This is a motorcycle", false},
		{"electric car", PowertrainElectric, "car", "This is an electric car", false},
		{"electric truck", PowertrainElectric, "TRUCK", "This is an electric truck", false},
		{"electric motorcycle", PowertrainElectric, "motorcycle", "This is an electric motorcycle", false},
		{"invalid", PowertrainCombustion, "bus", "", true},
		{"electric invalid", PowertrainElectric, "tram", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyVehicle(tt.powertrain, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be 'car', 'truck', or 'motorcycle'")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_Vehicle_ClassifyUsesPowertrain(t *testing.T) {
	t.Cleanup(ResetVehicleCount)

	ev, err := NewVehicle("Tesla", "Model S", 2021, PowertrainElectric)
	require.NoError(t, err)

	got, err := ev.Classify("car")
	require.NoError(t, err)
	assert.Equal(t, "This is an electric car", got)

	assert.IsType(t, ElectricClassifier{}, ClassifierFor(PowertrainElectric))
	assert.IsType(t, CombustionClassifier{}, ClassifierFor(PowertrainCombustion))
}
