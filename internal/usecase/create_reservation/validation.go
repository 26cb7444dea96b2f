package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает тип бизнеса
func validateRequest(req *Request) (domain.BusinessType, error) {
	if req.BusinessID.IsZero() {
		return "", domain.NewValidationError("businessId", "businessId is required")
	}

	businessType, err := domain.ParseBusinessType(req.BusinessType)
	if err != nil {
		return "", err
	}

	if req.PartySize < domain.MinPartySize {
		return "", domain.NewValidationError("partySize", "party size must be at least 1")
	}

	// Для отеля дата может прийти только как checkIn
	if req.Date.IsZero() && (businessType != domain.BusinessTypeHotel || req.CheckIn == nil) {
		return "", domain.NewValidationError("date", "date is required in YYYY-MM-DD format")
	}

	if businessType != domain.BusinessTypeHotel && req.Time.IsZero() {
		return "", domain.NewValidationError("time", "time is required in HH:MM format")
	}
	if !req.Time.IsZero() {
		if err := req.Time.Validate(); err != nil {
			return "", domain.NewValidationError("time", "time must be in HH:MM format")
		}
	}

	if req.CheckIn != nil && req.CheckOut != nil && req.CheckOut.Before(*req.CheckIn) {
		return "", domain.NewValidationError("checkOut", "checkOut must not be before checkIn")
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return "", domain.NewValidationError("notes", "notes must not exceed 1000 characters")
	}
	if len(req.SpecialRequests) > domain.MaxNotesLength {
		return "", domain.NewValidationError("specialRequests", "special requests must not exceed 1000 characters")
	}

	return businessType, nil
}

// checkOpeningPeriods проверяет, что пребывание целиком попадает в один из периодов работы.
// Отель без периодов принимает любые даты.
func checkOpeningPeriods(periods []domain.OpeningPeriod, checkIn, checkOut time.Time) error {
	if len(periods) == 0 {
		return nil
	}
	for _, p := range periods {
		if p.Contains(checkIn, checkOut) {
			return nil
		}
	}
	return domain.NewValidationError("checkIn", MsgHotelClosed)
}

// nights количество ночей между заездом и выездом, минимум одна
func nights(checkIn, checkOut time.Time) int {
	n := int(truncateDay(checkOut).Sub(truncateDay(checkIn)).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
