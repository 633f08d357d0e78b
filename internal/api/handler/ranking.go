package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/apiErrors"
	"github.com/vfg2006/slack-hot-channels/pkg/log"
)

// GetLatestRanking retorna o último ranking calculado pelo processo
func GetLatestRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leaderboard, err := service.GetLatestRanking()
		if err != nil {
			if errors.Is(err, ranking.ErrRankingNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrRankingNotFound, "Nenhum ranking calculado ainda", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar ranking", nil)
			return
		}

		writeJSON(w, http.StatusOK, leaderboard)
	}
}
