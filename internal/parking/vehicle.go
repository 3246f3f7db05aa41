package parking

import "fmt"

type VehicleType int

const (
	Bike VehicleType = iota
	Car
	Truck
)

func (t VehicleType) String() string {
	switch t {
	case Bike:
		return "Bike"
	case Car:
		return "Car"
	case Truck:
		return "Truck"
	default:
		return "Unknown"
	}
}

func ParseVehicleType(s string) (VehicleType, error) {
	switch s {
	case "Bike":
		return Bike, nil
	case "Car":
		return Car, nil
	case "Truck":
		return Truck, nil
	default:
		return 0, fmt.Errorf("unknown vehicle type: %q", s)
	}
}

type Vehicle struct {
	LicensePlate string
	Type         VehicleType
}

func NewVehicle(licensePlate string, vehicleType VehicleType) Vehicle {
	return Vehicle{
		LicensePlate: licensePlate,
		Type:         vehicleType,
	}
}

// RequiredSpots returns how many adjacent spots the vehicle occupies.
func (v Vehicle) RequiredSpots() int {
	if v.Type == Truck {
		return 2
	}
	return 1
}
