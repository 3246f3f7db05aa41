package parking

type Spot struct {
	Floor        int
	Number       int
	IsOccupied   bool
	LicensePlate string
}

func NewSpot(floor, number int) *Spot {
	return &Spot{
		Floor:  floor,
		Number: number,
	}
}

// Assign marks the spot occupied by the given plate. It fails without
// mutating anything if the spot is already taken.
func (s *Spot) Assign(licensePlate string) bool {
	if s.IsOccupied {
		return false
	}
	s.LicensePlate = licensePlate
	s.IsOccupied = true
	return true
}

// Release frees the spot. It fails if the spot is already empty.
func (s *Spot) Release() bool {
	if !s.IsOccupied {
		return false
	}
	s.LicensePlate = ""
	s.IsOccupied = false
	return true
}
