package parking

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestInstrumentedParkingLotIntegration(t *testing.T) {
	telemetry, err := NewTelemetryProvider()
	if err != nil {
		t.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() {
		// Export failures are expected when no collector is running.
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Logf("telemetry shutdown: %v", err)
		}
	}()

	ipl, err := NewInstrumentedParkingLot(2, 3, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented parking lot: %v", err)
	}

	ctx := context.Background()

	loc, err := ipl.Park(ctx, NewVehicle("KA01HH1234", Car))
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if loc.Floor != 0 || !reflect.DeepEqual(loc.Spots, []int{0}) {
		t.Errorf("Expected floor 0 spots [0], got floor %d spots %v", loc.Floor, loc.Spots)
	}

	loc, err = ipl.Park(ctx, NewVehicle("KA01TT0001", Truck))
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if loc.Floor != 0 || !reflect.DeepEqual(loc.Spots, []int{1, 2}) {
		t.Errorf("Expected floor 0 spots [1 2], got floor %d spots %v", loc.Floor, loc.Spots)
	}

	found, err := ipl.Locate(ctx, "KA01TT0001")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if !reflect.DeepEqual(found, loc) {
		t.Errorf("Expected locate %v to match park result %v", found, loc)
	}

	if ipl.IsFull(ctx) {
		t.Error("Expected floor 1 to still be free")
	}

	available := ipl.AvailablePerFloor(ctx)
	if !reflect.DeepEqual(available, []int{0, 3}) {
		t.Errorf("Expected [0 3], got %v", available)
	}

	floor, err := ipl.Release(ctx, "KA01HH1234")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if floor != 0 {
		t.Errorf("Expected release from floor 0, got %d", floor)
	}

	if _, err = ipl.Release(ctx, "KA01HH1234"); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Expected ErrVehicleNotFound on second release, got %v", err)
	}
}
