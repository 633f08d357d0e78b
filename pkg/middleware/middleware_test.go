package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/authenticating"
	"github.com/vfg2006/slack-hot-channels/pkg/apiErrors"
	"github.com/vfg2006/slack-hot-channels/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAdminAuth(t *testing.T) {
	enabled := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "s3cret"}})
	disabled := authenticating.NewService(&config.Config{})

	validToken, err := enabled.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		auth           authenticating.Authenticator
		header         string
		expectedStatus int
		expectedCode   string
	}{
		{name: "token válido", auth: enabled, header: "Bearer " + validToken, expectedStatus: http.StatusNoContent},
		{name: "sem header", auth: enabled, expectedStatus: http.StatusUnauthorized, expectedCode: apiErrors.ErrInvalidToken},
		{name: "sem prefixo bearer", auth: enabled, header: validToken, expectedStatus: http.StatusUnauthorized, expectedCode: apiErrors.ErrInvalidToken},
		{name: "token inválido", auth: enabled, header: "Bearer abc.def.ghi", expectedStatus: http.StatusUnauthorized, expectedCode: apiErrors.ErrInvalidToken},
		{name: "segredo não configurado", auth: disabled, header: "Bearer " + validToken, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrAuthDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var claims *domain.AdminClaims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, _ = r.Context().Value(ContextKeyClaims).(*domain.AdminClaims)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/ranking", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AdminAuth(tt.auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
				assert.Nil(t, claims)
				return
			}
			require.NotNil(t, claims)
			assert.Equal(t, "ops", claims.Subject)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	})

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get(RequestIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/run", nil)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))

	rec := httptest.NewRecorder()
	okHandler().ServeHTTP(newLoggingResponseWriter(rec), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
