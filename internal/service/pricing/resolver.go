package pricing

import (
	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Resolver выбирает цену за гостя по временным окнам ресторана
type Resolver struct {
	defaultPrice float64
	logger       Logger
}

// NewResolver создает резолвер с ценой по умолчанию (75, если передан 0)
func NewResolver(defaultPrice float64, logger Logger) *Resolver {
	if defaultPrice <= 0 {
		defaultPrice = domain.DefaultPricePerGuest
	}
	return &Resolver{defaultPrice: defaultPrice, logger: logger}
}

// DefaultPrice возвращает цену по умолчанию
func (r *Resolver) DefaultPrice() float64 {
	return r.defaultPrice
}

// PricePerGuest возвращает цену первого окна, где open <= at < close.
// Окна просматриваются по порядку, первое совпадение выигрывает даже при пересечении окон.
// Нет совпадения, цена окна <= 0 или ошибка разбора времени - цена по умолчанию.
// Ошибки только логируются.
func (r *Resolver) PricePerGuest(windows []domain.TimeWindow, at types.TimeString) float64 {
	if err := at.Validate(); err != nil {
		r.logger.Warn("PricePerGuest: invalid reservation time %q, using default price: %v", at, err)
		return r.defaultPrice
	}

	for i, w := range windows {
		if w.Open.IsZero() || w.Close.IsZero() {
			continue
		}

		ok, err := w.Contains(at)
		if err != nil {
			r.logger.Warn("PricePerGuest: invalid window #%d (%s-%s), using default price: %v", i, w.Open, w.Close, err)
			return r.defaultPrice
		}
		if !ok {
			continue
		}

		if w.PricePerGuest <= 0 {
			return r.defaultPrice
		}
		return w.PricePerGuest
	}

	return r.defaultPrice
}
