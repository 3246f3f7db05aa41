package parking

import (
	"reflect"
	"testing"
)

func TestNewFloor(t *testing.T) {
	floor := NewFloor(1, 4)

	if floor.Number != 1 {
		t.Errorf("Expected floor number 1, got %d", floor.Number)
	}

	if len(floor.spots) != 4 {
		t.Errorf("Expected 4 spots, got %d", len(floor.spots))
	}

	for i, spot := range floor.spots {
		if spot.Number != i {
			t.Errorf("Expected spot number %d, got %d", i, spot.Number)
		}
		if spot.Floor != 1 {
			t.Errorf("Expected spot floor 1, got %d", spot.Floor)
		}
	}
}

func TestFloorFindAvailableSpotsSingle(t *testing.T) {
	floor := NewFloor(0, 3)

	spots := floor.FindAvailableSpots(1)
	if !reflect.DeepEqual(spots, []int{0}) {
		t.Errorf("Expected [0], got %v", spots)
	}

	floor.Park("A", []int{0})

	spots = floor.FindAvailableSpots(1)
	if !reflect.DeepEqual(spots, []int{1}) {
		t.Errorf("Expected lowest free index [1], got %v", spots)
	}

	floor.Park("B", []int{1})
	floor.Park("C", []int{2})

	if spots = floor.FindAvailableSpots(1); spots != nil {
		t.Errorf("Expected nil on full floor, got %v", spots)
	}
}

func TestFloorFindAvailableSpotsPair(t *testing.T) {
	floor := NewFloor(0, 4)

	spots := floor.FindAvailableSpots(2)
	if !reflect.DeepEqual(spots, []int{0, 1}) {
		t.Errorf("Expected [0 1], got %v", spots)
	}

	// Occupying spot 1 breaks pairs (0,1) and (1,2); first free pair is (2,3).
	floor.Park("A", []int{1})

	spots = floor.FindAvailableSpots(2)
	if !reflect.DeepEqual(spots, []int{2, 3}) {
		t.Errorf("Expected [2 3], got %v", spots)
	}

	// Free spots 0 and 3 are not adjacent; no wraparound pairing.
	floor.Park("B", []int{2})

	if spots = floor.FindAvailableSpots(2); spots != nil {
		t.Errorf("Expected nil without an adjacent pair, got %v", spots)
	}
}

func TestFloorFindAvailableSpotsEmptyFloor(t *testing.T) {
	floor := NewFloor(0, 0)

	if spots := floor.FindAvailableSpots(1); spots != nil {
		t.Errorf("Expected nil on zero-spot floor, got %v", spots)
	}

	if spots := floor.FindAvailableSpots(2); spots != nil {
		t.Errorf("Expected nil on zero-spot floor, got %v", spots)
	}
}

func TestFloorParkValidatesBeforeAssigning(t *testing.T) {
	floor := NewFloor(0, 3)
	floor.Park("A", []int{1})

	// Spot 0 is free but spot 1 is taken; nothing may be assigned.
	if floor.Park("B", []int{0, 1}) {
		t.Error("Expected park to fail when any spot is occupied")
	}

	if floor.spots[0].IsOccupied {
		t.Error("Expected failed park to leave spot 0 untouched")
	}

	if floor.Park("C", []int{2, 3}) {
		t.Error("Expected park to fail on out-of-range spot")
	}

	if floor.spots[2].IsOccupied {
		t.Error("Expected failed park to leave spot 2 untouched")
	}
}

func TestFloorRelease(t *testing.T) {
	floor := NewFloor(0, 4)
	floor.Park("TRUCK1", []int{0, 1})
	floor.Park("CAR1", []int{2})

	if floor.Release("UNKNOWN") {
		t.Error("Expected release of unknown plate to fail")
	}

	if !floor.Release("TRUCK1") {
		t.Error("Expected release of parked truck to succeed")
	}

	if floor.spots[0].IsOccupied || floor.spots[1].IsOccupied {
		t.Error("Expected both truck spots to be freed")
	}

	if !floor.spots[2].IsOccupied {
		t.Error("Expected other vehicle to stay parked")
	}
}

func TestFloorAvailableCount(t *testing.T) {
	floor := NewFloor(0, 5)

	if count := floor.AvailableCount(); count != 5 {
		t.Errorf("Expected 5 available spots, got %d", count)
	}

	floor.Park("A", []int{0, 1})
	floor.Park("B", []int{4})

	if count := floor.AvailableCount(); count != 2 {
		t.Errorf("Expected 2 available spots, got %d", count)
	}
}
