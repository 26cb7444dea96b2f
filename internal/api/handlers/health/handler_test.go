package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
)

func TestHandle(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "all healthy",
			checks:     map[string]Check{"mongo": ok, "postgres": ok},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"mongo": "ok", "postgres": "ok"},
		},
		{
			name:       "postgres down",
			checks:     map[string]Check{"mongo": ok, "postgres": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"mongo": "ok", "postgres": "unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(tt.checks, logger.Nop{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
