package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/slack-hot-channels/internal/api/handler/router"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/authenticating"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/apiErrors"
)

type fakeCronService struct {
	accept    bool
	triggered int
}

func (f *fakeCronService) TriggerManualSync(context.Context) bool {
	f.triggered++
	return f.accept
}

func (f *fakeCronService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled": true,
		"sync_cron":    "0 4 * * *",
	}
}

func newTestRouter(t *testing.T, cron CronService, rankingService ranking.RankingService) (router.Router, string) {
	t.Helper()

	authenticator := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "s3cret"}})
	token, err := authenticator.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Ranking(rankingService, authenticator)...),
		router.WithRoutes(CronJobs(cron, authenticator)...),
	)

	return rt, token
}

func doRequest(rt http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	rt, _ := newTestRouter(t, &fakeCronService{}, ranking.NewLeaderboardService())

	rec := doRequest(rt, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		accept         bool
		withToken      bool
		expectedStatus int
		expectedCalls  int
	}{
		{name: "execução iniciada", accept: true, withToken: true, expectedStatus: http.StatusAccepted, expectedCalls: 1},
		{name: "execução em andamento", accept: false, withToken: true, expectedStatus: http.StatusConflict, expectedCalls: 1},
		{name: "sem token", accept: true, withToken: false, expectedStatus: http.StatusUnauthorized, expectedCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cron := &fakeCronService{accept: tt.accept}
			rt, token := newTestRouter(t, cron, ranking.NewLeaderboardService())
			if !tt.withToken {
				token = ""
			}

			rec := doRequest(rt, http.MethodPost, "/v1/cron/run", token)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCalls, cron.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt, token := newTestRouter(t, &fakeCronService{}, ranking.NewLeaderboardService())

	rec := doRequest(rt, http.MethodGet, "/v1/cron/status", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0 4 * * *", body["sync_cron"])
	assert.Equal(t, true, body["sync_enabled"])
}

func TestGetLatestRanking(t *testing.T) {
	t.Run("sem ranking calculado", func(t *testing.T) {
		rt, token := newTestRouter(t, &fakeCronService{}, ranking.NewLeaderboardService())

		rec := doRequest(rt, http.MethodGet, "/v1/ranking", token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrRankingNotFound)
	})

	t.Run("retorna o último ranking", func(t *testing.T) {
		rankingService := ranking.NewLeaderboardService()
		rankingService.SaveLatestRanking(&domain.Leaderboard{
			RunID:         "abc123",
			Date:          "2024-03-09",
			SumOfMessages: 4,
			Published:     true,
		})
		rt, token := newTestRouter(t, &fakeCronService{}, rankingService)

		rec := doRequest(rt, http.MethodGet, "/v1/ranking", token)

		require.Equal(t, http.StatusOK, rec.Code)
		var body domain.Leaderboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "abc123", body.RunID)
		assert.Equal(t, "2024-03-09", body.Date)
		assert.True(t, body.Published)
	})
}
