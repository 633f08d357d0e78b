package slackdomain

import (
	"fmt"
	"time"
)

// BaseResponse é o envelope comum das respostas da Web API do Slack
type BaseResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func (b BaseResponse) Base() BaseResponse {
	return b
}

// APIError representa uma falha da API do Slack, seja por status HTTP ou por "ok": false
type APIError struct {
	Method     string
	StatusCode int
	Code       string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("slack %s falhou (status %d): %s, tentar novamente após %s", e.Method, e.StatusCode, e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("slack %s falhou (status %d): %s", e.Method, e.StatusCode, e.Code)
}

// IsRateLimited verifica se o erro é de limite de requisições
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429 || e.Code == "ratelimited"
}

// IsAuthError verifica se o erro é de token inválido ou revogado
func (e *APIError) IsAuthError() bool {
	switch e.Code {
	case "not_authed", "invalid_auth", "token_revoked", "token_expired", "account_inactive":
		return true
	}
	return false
}
