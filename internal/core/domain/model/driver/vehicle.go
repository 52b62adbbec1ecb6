package driver

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

// Vehicle represents the type of vehicle a driver uses for deliveries.
// It is a closed enumeration matching the values stored in the drivers table.
type Vehicle int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown Vehicle = iota

	// VehicleSedan is the most common delivery vehicle.
	VehicleSedan

	// VehicleSUV is a sport utility vehicle.
	VehicleSUV

	// VehicleHatchback is a compact car with a rear hatch.
	VehicleHatchback

	// VehicleTruck is a pickup truck.
	VehicleTruck

	// VehicleVan is a cargo or minivan.
	VehicleVan
)

func getVehicleStrings() map[Vehicle]string {
	return map[Vehicle]string{
		VehicleUnknown:   "unknown",
		VehicleSedan:     "sedan",
		VehicleSUV:       "suv",
		VehicleHatchback: "hatchback",
		VehicleTruck:     "truck",
		VehicleVan:       "van",
	}
}

func getValidVehicleStrings() map[Vehicle]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[Vehicle]string{
		VehicleSedan:     "sedan",
		VehicleSUV:       "suv",
		VehicleHatchback: "hatchback",
		VehicleTruck:     "truck",
		VehicleVan:       "van",
	}
}

// VehicleFromString parses a persisted vehicle name into a Vehicle value.
//
// Returns:
//   - the matching Vehicle for a valid name ("sedan", "van", ...)
//   - (VehicleUnknown, error) for unrecognized names
func VehicleFromString(s string) (Vehicle, error) {
	for vehicle, name := range getValidVehicleStrings() {
		if name == s {
			return vehicle, nil
		}
	}

	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks if the Vehicle value is one of the defined types.
func (v Vehicle) Validate() error {
	if _, ok := getValidVehicleStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v),
		)
	}
	return nil
}

// String returns the lowercase wire name of the vehicle type.
// Safe to call on any value; invalid values yield "unknown".
func (v Vehicle) String() string {
	if str, ok := getVehicleStrings()[v]; ok {
		return str
	}
	return "unknown"
}
