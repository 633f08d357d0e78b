package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrTokenRequired indica que a variável TOKEN não foi definida
var ErrTokenRequired = errors.New("environment variable TOKEN is not set")

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Slack    Slack    `mapstructure:",squash"`
	Schedule Schedule `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Settings Settings `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Slack struct {
	APIURL   string        `mapstructure:"slack_api_url"`
	Token    string        `mapstructure:"token"`     // Usado nas leituras (conversations.*)
	BotToken string        `mapstructure:"bot_token"` // Usado na publicação, padrão igual ao TOKEN
	Timeout  time.Duration `mapstructure:"slack_timeout"`
}

type Schedule struct {
	CronSchedule string `mapstructure:"cron_schedule"`
	Enabled      bool   `mapstructure:"cron_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"admin_secret"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")

	v.SetDefault("SLACK_API_URL", "https://slack.com/api")
	v.SetDefault("TOKEN", "")
	v.SetDefault("BOT_TOKEN", "")
	v.SetDefault("SLACK_TIMEOUT", "30s")

	v.SetDefault("CRON_SCHEDULE", "") // Vazio segue date_switching_hour, ver DefaultCronSchedule
	v.SetDefault("CRON_ENABLED", true)

	v.SetDefault("ADMIN_SECRET", "")

	v.SetDefault("LOG_LEVEL", "info")
}

// NewConfig carrega as variáveis de ambiente e o arquivo de configurações do ranking
func NewConfig(settingsPath string) (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	cfg, err := loadEnv()
	if err != nil {
		return nil, err
	}

	if cfg.Slack.Token == "" {
		return nil, ErrTokenRequired
	}

	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	cfg.Settings = *settings

	if cfg.Schedule.CronSchedule == "" {
		cfg.Schedule.CronSchedule = DefaultCronSchedule(settings.DateSwitchingHour)
	}

	return cfg, nil
}

// NewEnvConfig carrega apenas as variáveis de ambiente, sem exigir TOKEN nem o arquivo de configurações.
// Settings fica vazio.
func NewEnvConfig() (*Config, error) {
	loadEnvFile()
	return loadEnv()
}

// DefaultCronSchedule agenda a execução diária na hora de virada do dia (UTC+9)
func DefaultCronSchedule(switchingHour int) string {
	return fmt.Sprintf("0 %d * * *", switchingHour)
}

func loadEnv() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Slack.Token = strings.TrimSpace(config.Slack.Token)
	config.Slack.BotToken = strings.TrimSpace(config.Slack.BotToken)
	config.Schedule.CronSchedule = strings.TrimSpace(config.Schedule.CronSchedule)

	if config.Slack.BotToken == "" {
		config.Slack.BotToken = config.Slack.Token
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err != nil {
			continue
		}

		if err := godotenv.Load(location); err != nil {
			logrus.WithError(err).WithField("path", location).Warn("Não foi possível carregar o arquivo .env")
			continue
		}

		logrus.WithField("path", location).Debug("Arquivo .env carregado com sucesso")
		return
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
