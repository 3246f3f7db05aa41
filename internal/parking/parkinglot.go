package parking

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrAlreadyParked     = errors.New("vehicle is already parked")
	ErrLotFull           = errors.New("no suitable spot available")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInconsistentState = errors.New("inconsistent parking lot state")
)

// Location is where a parked vehicle sits: a floor and the spot numbers
// it occupies, in ascending order.
type Location struct {
	Floor int
	Spots []int
}

// ParkingLot owns all floors and the plate-to-location registry. Every
// operation runs under one mutex held for its full duration, so no caller
// ever observes a partial effect of another.
type ParkingLot struct {
	mu        sync.Mutex
	floors    []*Floor
	locations map[string]Location
}

func NewParkingLot(numFloors, spotsPerFloor int) *ParkingLot {
	floors := make([]*Floor, numFloors)
	for i := 0; i < numFloors; i++ {
		floors[i] = NewFloor(i, spotsPerFloor)
	}

	return &ParkingLot{
		floors:    floors,
		locations: make(map[string]Location),
	}
}

func (pl *ParkingLot) NumFloors() int {
	return len(pl.floors)
}

// Park finds first-fit spots for the vehicle, scanning floors in
// ascending order, and records its location. A floor whose candidate
// spots fail to commit is treated as exhausted for this call; the scan
// moves on to the next floor rather than retrying.
func (pl *ParkingLot) Park(vehicle Vehicle) (Location, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if _, ok := pl.locations[vehicle.LicensePlate]; ok {
		return Location{}, ErrAlreadyParked
	}

	required := vehicle.RequiredSpots()
	for _, floor := range pl.floors {
		spots := floor.FindAvailableSpots(required)
		if spots == nil {
			continue
		}
		if !floor.Park(vehicle.LicensePlate, spots) {
			continue
		}

		loc := Location{Floor: floor.Number, Spots: spots}
		pl.locations[vehicle.LicensePlate] = loc
		return copyLocation(loc), nil
	}

	return Location{}, ErrLotFull
}

// Release frees all spots held by the plate and returns the floor the
// vehicle was parked on.
func (pl *ParkingLot) Release(licensePlate string) (int, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	loc, ok := pl.locations[licensePlate]
	if !ok {
		return 0, ErrVehicleNotFound
	}

	// The registry and the floor must agree; a miss here means a broken
	// invariant, and the registry entry is kept so it stays visible.
	if !pl.floors[loc.Floor].Release(licensePlate) {
		return 0, fmt.Errorf("%w: %s recorded on floor %d but not parked there",
			ErrInconsistentState, licensePlate, loc.Floor)
	}

	delete(pl.locations, licensePlate)
	return loc.Floor, nil
}

// AvailablePerFloor returns a snapshot of free-spot counts, one per
// floor, in floor order.
func (pl *ParkingLot) AvailablePerFloor() []int {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	available := make([]int, len(pl.floors))
	for i, floor := range pl.floors {
		available[i] = floor.AvailableCount()
	}
	return available
}

func (pl *ParkingLot) IsFull() bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	for _, floor := range pl.floors {
		if floor.AvailableCount() > 0 {
			return false
		}
	}
	return true
}

// Locate returns where the vehicle with the given plate is parked.
func (pl *ParkingLot) Locate(licensePlate string) (Location, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	loc, ok := pl.locations[licensePlate]
	if !ok {
		return Location{}, ErrVehicleNotFound
	}
	return copyLocation(loc), nil
}

// copyLocation keeps callers from aliasing the registry's spot slice.
func copyLocation(loc Location) Location {
	spots := make([]int, len(loc.Spots))
	copy(spots, loc.Spots)
	return Location{Floor: loc.Floor, Spots: spots}
}
