package parking

type Floor struct {
	Number int
	spots  []*Spot
}

func NewFloor(number, numSpots int) *Floor {
	spots := make([]*Spot, numSpots)
	for i := 0; i < numSpots; i++ {
		spots[i] = NewSpot(number, i)
	}

	return &Floor{
		Number: number,
		spots:  spots,
	}
}

// FindAvailableSpots returns the first-fit spot numbers for a vehicle
// needing the given number of spots, or nil if the floor cannot take it.
// A two-spot vehicle needs two adjacent spots; there is no wraparound.
// This is a read-only scan and does not reserve anything.
func (f *Floor) FindAvailableSpots(required int) []int {
	switch required {
	case 1:
		for _, spot := range f.spots {
			if !spot.IsOccupied {
				return []int{spot.Number}
			}
		}
	case 2:
		for i := 0; i+1 < len(f.spots); i++ {
			if !f.spots[i].IsOccupied && !f.spots[i+1].IsOccupied {
				return []int{f.spots[i].Number, f.spots[i+1].Number}
			}
		}
	}
	return nil
}

// Park assigns the plate to all listed spots. Every spot number is
// validated before any assignment happens, so a failed commit leaves the
// floor untouched.
func (f *Floor) Park(licensePlate string, spotNumbers []int) bool {
	for _, n := range spotNumbers {
		if n < 0 || n >= len(f.spots) || f.spots[n].IsOccupied {
			return false
		}
	}
	for _, n := range spotNumbers {
		f.spots[n].Assign(licensePlate)
	}
	return true
}

// Release frees every spot held by the plate and reports whether any
// spot was freed. Multi-spot vehicles give up all their spots.
func (f *Floor) Release(licensePlate string) bool {
	released := false
	for _, spot := range f.spots {
		if spot.IsOccupied && spot.LicensePlate == licensePlate {
			spot.Release()
			released = true
		}
	}
	return released
}

func (f *Floor) AvailableCount() int {
	count := 0
	for _, spot := range f.spots {
		if !spot.IsOccupied {
			count++
		}
	}
	return count
}
