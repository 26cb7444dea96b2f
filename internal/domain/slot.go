package domain

import "github.com/m04kA/SMC-HospitalityService/pkg/types"

// SlotAvailability is one enumerated reservation slot of a restaurant day
type SlotAvailability struct {
	Time      types.TimeString
	Reserved  int // active reservations starting in this slot
	Limit     int // maxReservationsParCreneau
	Available bool
}

// Remaining returns how many more reservations the slot accepts
func (s *SlotAvailability) Remaining() int {
	if s.Reserved >= s.Limit {
		return 0
	}
	return s.Limit - s.Reserved
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *SlotAvailability) OccupancyRate() float64 {
	if s.Limit == 0 {
		return 0
	}
	return float64(s.Limit-s.Remaining()) / float64(s.Limit) * 100
}
