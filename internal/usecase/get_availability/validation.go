package get_availability

import "github.com/m04kA/SMC-HospitalityService/internal/domain"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID.IsZero() {
		return domain.NewValidationError("restaurantId", "restaurantId is required")
	}
	if req.Date.IsZero() {
		return domain.NewValidationError("date", "date is required in YYYY-MM-DD format")
	}
	if req.PartySize < domain.MinPartySize {
		return domain.NewValidationError("partySize", "party size must be at least 1")
	}
	return nil
}
