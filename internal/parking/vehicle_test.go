package parking

import "testing"

func TestNewVehicle(t *testing.T) {
	vehicle := NewVehicle("KA01HH1234", Car)

	if vehicle.LicensePlate != "KA01HH1234" {
		t.Errorf("Expected license plate KA01HH1234, got %s", vehicle.LicensePlate)
	}

	if vehicle.Type != Car {
		t.Errorf("Expected type Car, got %s", vehicle.Type)
	}
}

func TestVehicleRequiredSpots(t *testing.T) {
	cases := []struct {
		vehicleType VehicleType
		expected    int
	}{
		{Bike, 1},
		{Car, 1},
		{Truck, 2},
	}

	for _, c := range cases {
		v := NewVehicle("PLATE", c.vehicleType)
		if got := v.RequiredSpots(); got != c.expected {
			t.Errorf("Expected %s to require %d spots, got %d", c.vehicleType, c.expected, got)
		}
	}
}

func TestParseVehicleType(t *testing.T) {
	for _, name := range []string{"Bike", "Car", "Truck"} {
		vehicleType, err := ParseVehicleType(name)
		if err != nil {
			t.Errorf("Unexpected error for %s: %s", name, err.Error())
		}
		if vehicleType.String() != name {
			t.Errorf("Expected %s to round-trip, got %s", name, vehicleType)
		}
	}

	if _, err := ParseVehicleType("Spaceship"); err == nil {
		t.Error("Expected error for unknown vehicle type")
	}

	if _, err := ParseVehicleType("car"); err == nil {
		t.Error("Expected error for lowercase vehicle type")
	}
}
