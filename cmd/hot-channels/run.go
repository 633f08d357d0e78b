package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack"
	"github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/slackclient"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/internal/scheduler"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/ranking"
	"github.com/vfg2006/slack-hot-channels/pkg/utils"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa o ranking uma vez e publica no Slack",
	RunE:  runRanking,
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "calcula o ranking e imprime a mensagem sem publicar")
}

func runRanking(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := newHotChannelsService(cfg, ranking.NewLeaderboardService())

	leaderboard, err := service.Run(ctx, scheduler.RunOptions{DryRun: dryRun})
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(leaderboard.Post))
	}

	return nil
}

func newHotChannelsService(cfg *config.Config, rankingService ranking.RankingService) *scheduler.HotChannelsService {
	slackClient := slackclient.NewClient(cfg)
	slackIntegrator := slack.New(cfg, slackClient)

	return scheduler.NewHotChannelsService(slackIntegrator, rankingService, cfg)
}
