package create_privatisation_v2

import (
	"fmt"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

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
	if req.Type == "" {
		return domain.NewValidationError("type", "privatisation type is required")
	}
	if req.DurationHours < 0 {
		return domain.NewValidationError("dureeHeures", "duration must not be negative")
	}
	return nil
}

func privatisationNotes(req *Request) string {
	return fmt.Sprintf("Privatisation: %s - %s, Menu: %s", req.Type, req.Space, req.Menu)
}

func privatisationSpecialRequests(partySize int) string {
	return fmt.Sprintf("Privatisation event for %d guests.", partySize)
}
