package hooks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

const defaultHookTimeout = 5 * time.Second

// Runner выполняет хуки после создания бронирования.
// Ошибка хука логируется и учитывается в метриках, но не возвращается:
// бронирование к этому моменту уже сохранено.
type Runner struct {
	hooks   []Hook
	metrics MetricsRecorder
	logger  Logger
	timeout time.Duration
}

// NewRunner создает исполнителя хуков
func NewRunner(logger Logger, metrics MetricsRecorder, hooks ...Hook) *Runner {
	return &Runner{
		hooks:   hooks,
		metrics: metrics,
		logger:  logger,
		timeout: defaultHookTimeout,
	}
}

// Run запускает хуки последовательно
func (r *Runner) Run(ctx context.Context, res *domain.Reservation) {
	if r == nil || res == nil {
		return
	}

	if r.metrics != nil {
		r.metrics.IncReservation(string(res.BusinessType), string(res.Kind))
	}

	for _, h := range r.hooks {
		hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
		err := h.Run(hookCtx, res)
		cancel()

		if err != nil {
			r.logger.Error("Run: hook %s failed for reservation=%s: %v", h.Name(), res.ID.Hex(), err)
			if r.metrics != nil {
				r.metrics.IncHookFailure(h.Name())
			}
		}
	}
}
