package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/pkg/log"
)

var settingsPath string

var rootCmd = &cobra.Command{
	Use:           "hot-channels",
	Short:         "Ranking diário dos canais mais ativos do Slack",
	Long:          "Conta as mensagens dos canais públicos no último dia, compara com o dia anterior e publica o ranking em um canal do Slack.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRanking,
}

func init() {
	configureLogger()

	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", config.DefaultSettingsFileName, "arquivo JSON de configurações do ranking")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "calcula o ranking e imprime a mensagem sem publicar")

	rootCmd.AddCommand(runCmd, serveCmd, tokenCmd)
}

// configureLogger configura o formato dos logs antes da leitura das configurações
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadConfig carrega as configurações e aplica o nível de log configurado
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig(settingsPath)
	if err != nil {
		return nil, err
	}

	setupLogLevel(cfg.App.LogLevel)
	return cfg, nil
}

// loadEnvConfig carrega apenas as variáveis de ambiente, para comandos que não falam com o Slack
func loadEnvConfig() (*config.Config, error) {
	cfg, err := config.NewEnvConfig()
	if err != nil {
		return nil, err
	}

	setupLogLevel(cfg.App.LogLevel)
	return cfg, nil
}

func setupLogLevel(level string) {
	if err := log.Setup(level); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		_ = log.Setup(logrus.InfoLevel.String())
	}
	logrus.Debugf("Nível de log configurado para: %s", logrus.GetLevel())
}
