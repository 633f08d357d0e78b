// Package scheduler contém a orquestração das execuções do ranking e o agendamento em modo servidor
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/metrics"
	"github.com/vfg2006/slack-hot-channels/pkg/utils"
)

const (
	dayToday     = "today"
	dayYesterday = "yesterday"
)

// ErrRunInProgress indica que já existe uma execução em andamento
var ErrRunInProgress = errors.New("execução do ranking já está em andamento")

type HotChannelsConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RunOptions controla uma execução. Now vazio usa o horário atual.
type RunOptions struct {
	DryRun bool
	Now    time.Time
}

type HotChannelsService struct {
	scheduler      *gocron.Scheduler
	slackService   slack.SlackIntegrator
	rankingService ranking.RankingService
	settings       config.Settings
	config         HotChannelsConfig
	now            func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastError           string
}

func NewHotChannelsService(
	slackService slack.SlackIntegrator,
	rankingService ranking.RankingService,
	cfg *config.Config,
) *HotChannelsService {
	hotChannelsConfig := HotChannelsConfig{
		CronSchedule: cfg.Schedule.CronSchedule, // Default: todos os dias na hora de virada (UTC+9)
		SyncEnabled:  cfg.Schedule.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": hotChannelsConfig.CronSchedule,
	}).Debug("Configuração do agendador do ranking de canais carregada")

	return &HotChannelsService{
		scheduler:      gocron.NewScheduler(domain.RankingLocation),
		slackService:   slackService,
		rankingService: rankingService,
		settings:       cfg.Settings,
		config:         hotChannelsConfig,
		now:            time.Now,
	}
}

func (s *HotChannelsService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de canais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de canais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunExclusive(ctx, RunOptions{}); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada do ranking de canais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de canais: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de canais")
		s.scheduler.Stop()
	}()

	return nil
}

// RunExclusive executa o ranking apenas se nenhuma outra execução estiver em andamento
func (s *HotChannelsService) RunExclusive(ctx context.Context, opts RunOptions) (*domain.Leaderboard, error) {
	if !s.claimRun() {
		logrus.Warn("Execução do ranking de canais já está em andamento")
		return nil, ErrRunInProgress
	}

	return s.runClaimed(ctx, opts)
}

// claimRun marca a execução como iniciada, retornando false se já houver outra em andamento
func (s *HotChannelsService) claimRun() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// runClaimed executa uma execução já reservada por claimRun e libera a reserva ao final
func (s *HotChannelsService) runClaimed(ctx context.Context, opts RunOptions) (*domain.Leaderboard, error) {
	leaderboard, err := s.Run(ctx, opts)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if leaderboard != nil {
		s.lastRunID = leaderboard.RunID
	}
	s.syncMutex.Unlock()

	return leaderboard, err
}

// Run executa o pipeline completo: canais, histórico de hoje e ontem, ranking, diff e publicação.
// Nada é publicado se alguma busca falhar.
func (s *HotChannelsService) Run(ctx context.Context, opts RunOptions) (*domain.Leaderboard, error) {
	start := time.Now()

	leaderboard, err := s.run(ctx, opts)

	metrics.RunDuration.Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		metrics.RunsTotal.WithLabelValues("error").Inc()
	case opts.DryRun:
		metrics.RunsTotal.WithLabelValues("dry_run").Inc()
	default:
		metrics.RunsTotal.WithLabelValues("success").Inc()
	}

	return leaderboard, err
}

func (s *HotChannelsService) run(ctx context.Context, opts RunOptions) (*domain.Leaderboard, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da execução")
	}

	now := opts.Now
	if now.IsZero() {
		now = s.now()
	}

	period := domain.NewReportPeriod(now, s.settings.DateSwitchingHour)
	log := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"date":   period.Date,
	})

	log.WithFields(logrus.Fields{
		"today_oldest":     period.Today.Oldest.Format(time.RFC3339),
		"today_latest":     period.Today.Latest.Format(time.RFC3339),
		"yesterday_oldest": period.Yesterday.Oldest.Format(time.RFC3339),
		"dry_run":          opts.DryRun,
	}).Info("Iniciando ranking de canais")

	channels, err := s.slackService.ListChannels(ctx, s.settings.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar canais")
	}
	metrics.Channels.Set(float64(len(channels)))
	log.WithField("channels", len(channels)).Info("Canais carregados")

	todayData, err := s.slackService.CollectHistory(ctx, channels, period.Today, dayToday)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de hoje")
	}

	yesterdayData, err := s.slackService.CollectHistory(ctx, channels, period.Yesterday, dayYesterday)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar histórico de ontem")
	}

	sumOfMessages := ranking.SumOfMessages(todayData)
	metrics.Messages.WithLabelValues(dayToday).Set(float64(sumOfMessages))
	metrics.Messages.WithLabelValues(dayYesterday).Set(float64(ranking.SumOfMessages(yesterdayData)))

	rankingDiffs := ranking.Diff(ranking.Rank(todayData), ranking.Rank(yesterdayData))
	post := ranking.BuildPostData(period.Date, sumOfMessages, rankingDiffs, s.settings.TrendGlyphs())

	leaderboard := &domain.Leaderboard{
		RunID:         runID,
		Date:          period.Date,
		SumOfMessages: sumOfMessages,
		Rankings:      rankingDiffs,
		Post:          post,
		GeneratedAt:   s.now(),
	}

	log.WithFields(logrus.Fields{
		"sum_of_messages": sumOfMessages,
		"fields":          len(post.AttachmentFields),
	}).Info("Ranking calculado")

	if opts.DryRun {
		log.Info("Dry run: publicação ignorada")
		s.rankingService.SaveLatestRanking(leaderboard)
		return leaderboard, nil
	}

	if err := s.slackService.PostRanking(ctx, post, s.settings); err != nil {
		return nil, errors.Wrap(err, "erro ao publicar ranking")
	}
	leaderboard.Published = true
	s.rankingService.SaveLatestRanking(leaderboard)

	log.Info("Ranking de canais concluído")

	return leaderboard, nil
}

// TriggerManualSync inicia manualmente uma execução do ranking em segundo plano.
// A execução é reservada antes de retornar, então chamadas concorrentes só aceitam uma.
func (s *HotChannelsService) TriggerManualSync(ctx context.Context) bool {
	if !s.claimRun() {
		logrus.Info("Ranking de canais já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando execução manual do ranking de canais")
	go func() {
		if _, err := s.runClaimed(context.WithoutCancel(ctx), RunOptions{}); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do ranking de canais")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *HotChannelsService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
