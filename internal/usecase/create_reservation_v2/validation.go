package create_reservation_v2

import "github.com/m04kA/SMC-HospitalityService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID.IsZero() {
		return domain.NewValidationError("restaurantId", "restaurantId is required")
	}
	if req.PartySize < domain.MinPartySize {
		return domain.NewValidationError("personnes", "party size must be at least 1")
	}
	if req.Date.IsZero() {
		return domain.NewValidationError("date", "date is required in YYYY-MM-DD format")
	}
	if err := req.Time.Validate(); err != nil {
		return domain.NewValidationError("heure", "time must be in HH:MM format")
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return domain.NewValidationError("notes", "notes must not exceed 1000 characters")
	}
	return nil
}
