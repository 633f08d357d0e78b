package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/slack-hot-channels/internal/api"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/authenticating"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Agenda o ranking com cron e expõe a API de administração",
	Long: `Agenda o ranking com cron (UTC+9) e expõe a API de administração.
Sem CRON_SCHEDULE, a execução diária ocorre na hora date_switching_hour das configurações.
Um CRON_SCHEDULE explícito não acompanha mudanças em date_switching_hour.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.MustRegister(registry)

		rankingService := ranking.NewLeaderboardService()
		authenticator := authenticating.NewService(cfg)
		hotChannelsService := newHotChannelsService(cfg, rankingService)

		if err := hotChannelsService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de canais")
			return err
		}
		logrus.Info("Agendador do ranking de canais iniciado com sucesso")

		server := api.New(cfg, rankingService, authenticator, hotChannelsService, registry)

		return server.Run(ctx)
	},
}
