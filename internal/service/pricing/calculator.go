package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

const centsPlaces = 2

// Calculator считает итоговую сумму бронирования
type Calculator struct {
	privatisationRate decimal.Decimal
}

// NewCalculator создает калькулятор с тарифом приватизации за гостя (100, если передан 0)
func NewCalculator(privatisationRatePerGuest float64) *Calculator {
	if privatisationRatePerGuest <= 0 {
		privatisationRatePerGuest = domain.DefaultPrivatisationRatePerGuest
	}
	return &Calculator{privatisationRate: decimal.NewFromFloat(privatisationRatePerGuest)}
}

// StandardTotal partySize * pricePerGuest
func (c *Calculator) StandardTotal(partySize int, pricePerGuest float64) float64 {
	return multiply(partySize, decimal.NewFromFloat(pricePerGuest))
}

// PrivatisationTotal partySize * фиксированный тариф.
// Тариф опции приватизации не учитывается.
func (c *Calculator) PrivatisationTotal(partySize int) float64 {
	return multiply(partySize, c.privatisationRate)
}

// StayTotal nights * pricePerNight (минимум одна ночь)
func (c *Calculator) StayTotal(nights int, pricePerNight float64) float64 {
	if nights < 1 {
		nights = 1
	}
	return multiply(nights, decimal.NewFromFloat(pricePerNight))
}

func multiply(n int, unit decimal.Decimal) float64 {
	if n <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(n)).Mul(unit).Round(centsPlaces).InexactFloat64()
}
