package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/slack-hot-channels/pkg/apiErrors"
	"github.com/vfg2006/slack-hot-channels/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CronService é o agendador do ranking exposto pela API
type CronService interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunCronJob dispara manualmente uma execução do ranking em segundo plano
func RunCronJob(service CronService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		if !service.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Execução do ranking já está em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Execução do ranking iniciada com sucesso",
		})
	}
}

// GetCronStatus retorna o status do agendador
func GetCronStatus(service CronService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
