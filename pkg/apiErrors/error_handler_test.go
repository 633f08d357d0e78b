package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "token inválido", code: ErrInvalidToken, expectedStatus: http.StatusUnauthorized},
		{name: "autenticação desabilitada", code: ErrAuthDisabled, expectedStatus: http.StatusForbidden},
		{name: "ranking não encontrado", code: ErrRankingNotFound, expectedStatus: http.StatusNotFound},
		{name: "execução em andamento", code: ErrRunInProgress, expectedStatus: http.StatusConflict},
		{name: "código desconhecido", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Nil(t, body.Details)
		})
	}
}
