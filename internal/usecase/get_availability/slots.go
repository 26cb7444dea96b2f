package get_availability

import (
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// generateTimeSlots перечисляет слоты всех окон: от ouverture с шагом frequency, пока slot < fermeture.
// Окна с некорректными границами пропускаются. Для сегодняшней даты прошедшие слоты отбрасываются.
func generateTimeSlots(windows []domain.TimeWindow, frequency int, date, now time.Time) []types.TimeString {
	if frequency <= 0 {
		frequency = domain.DefaultSlotFrequencyMinutes
	}

	if isDateInPast(date, now) {
		return []types.TimeString{}
	}

	seen := make(map[types.TimeString]struct{})
	slots := make([]types.TimeString, 0)

	for _, w := range windows {
		open, errOpen := w.Open.Minutes()
		closeAt, errClose := w.Close.Minutes()
		if errOpen != nil || errClose != nil {
			continue
		}

		for m := open; m < closeAt; m += frequency {
			slot, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				break
			}
			// Пересекающиеся окна не дают дублей
			if _, ok := seen[slot]; ok {
				continue
			}
			seen[slot] = struct{}{}
			slots = append(slots, slot)
		}
	}

	if !isSameDay(date, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(currentTime) {
			upcoming = append(upcoming, slot)
		}
	}
	return upcoming
}

// calculateAvailability размечает слоты: доступен, если занято меньше лимита и группа не больше maxPartySize
func calculateAvailability(
	slots []types.TimeString,
	counts map[types.TimeString]int,
	settings domain.RestaurantSettings,
	partySize int,
) []domain.SlotAvailability {
	limit := settings.MaxReservationsPerSlot
	if limit <= 0 {
		limit = domain.DefaultMaxReservationsPerSlot
	}
	maxParty := settings.MaxPartySize
	if maxParty <= 0 {
		maxParty = domain.DefaultMaxPartySize
	}

	result := make([]domain.SlotAvailability, len(slots))
	for i, slot := range slots {
		reserved := counts[slot]
		result[i] = domain.SlotAvailability{
			Time:      slot,
			Reserved:  reserved,
			Limit:     limit,
			Available: reserved < limit && partySize <= maxParty,
		}
	}
	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
