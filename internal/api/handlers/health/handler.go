package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HospitalityService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Check проверка одной зависимости
type Check func(ctx context.Context) error

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	checks map[string]Check
	logger Logger
}

func NewHandler(checks map[string]Check, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := http.StatusOK
	result := map[string]string{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("GET /health - %s is unavailable: %v", name, err)
			result[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		result[name] = "ok"
	}

	handlers.RespondJSON(w, status, result)
}
