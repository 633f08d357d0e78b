package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
)

const DefaultSettingsFileName = "settings.json"

// Erros de validação das configurações
var (
	ErrPostChannelRequired  = errors.New("post channel is not defined in settings")
	ErrConflictingFilters   = errors.New("both include_channels and exclude_channels are defined in settings")
	ErrInvalidSwitchingHour = errors.New("date_switching_hour must be between 0 and 23")
	ErrInvalidRankingCount  = errors.New("ranking_count must not be negative")
)

type Settings struct {
	PostChannel       string   `mapstructure:"post_channel"`
	RankingCount      int      `mapstructure:"ranking_count"`
	UserName          string   `mapstructure:"user_name"`
	IconEmoji         string   `mapstructure:"icon_emoji"`
	Color             string   `mapstructure:"color"`
	DateSwitchingHour int      `mapstructure:"date_switching_hour"`
	SidewayTrendEmoji string   `mapstructure:"ranking_sidewaytrend_emoji"`
	UpTrendEmoji      string   `mapstructure:"ranking_uptrend_emoji"`
	DownTrendEmoji    string   `mapstructure:"ranking_downtrend_emoji"`
	IncludeChannels   []string `mapstructure:"include_channels"`
	ExcludeChannels   []string `mapstructure:"exclude_channels"`
	RequestDelayMS    int      `mapstructure:"request_delay_ms"`
	AuthorName        string   `mapstructure:"author_name"`
	AuthorLink        string   `mapstructure:"author_link"`

	Filter domain.ChannelFilter `mapstructure:"-"`
}

func setSettingsDefaults(v *viper.Viper) {
	v.SetDefault("ranking_count", 20)
	v.SetDefault("user_name", "hot-channels")
	v.SetDefault("icon_emoji", ":tada:")
	v.SetDefault("color", "#95B88F")
	v.SetDefault("date_switching_hour", 4)
	v.SetDefault("ranking_sidewaytrend_emoji", ":arrow_right:")
	v.SetDefault("ranking_uptrend_emoji", ":arrow_up:")
	v.SetDefault("ranking_downtrend_emoji", ":arrow_down:")
	v.SetDefault("request_delay_ms", 1500) // Intervalo entre requisições de histórico, abaixo do rate limit do Slack
	v.SetDefault("author_name", "Hot Channels Bot")
	v.SetDefault("author_link", "")
}

// LoadSettings lê o arquivo JSON de configurações, aplica os valores padrão e valida
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsFileName
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setSettingsDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de configurações %s: %w", path, err)
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("erro ao interpretar o arquivo de configurações %s: %w", path, err)
	}

	if strings.TrimSpace(settings.PostChannel) == "" {
		return nil, ErrPostChannelRequired
	}

	// A presença das chaves define o filtro, mesmo quando a lista está vazia
	hasInclude := v.IsSet("include_channels")
	hasExclude := v.IsSet("exclude_channels")
	if hasInclude && hasExclude {
		return nil, ErrConflictingFilters
	}

	if settings.DateSwitchingHour < 0 || settings.DateSwitchingHour > 23 {
		return nil, ErrInvalidSwitchingHour
	}

	if settings.RankingCount < 0 {
		return nil, ErrInvalidRankingCount
	}

	filter, err := buildChannelFilter(hasInclude, settings.IncludeChannels, hasExclude, settings.ExcludeChannels)
	if err != nil {
		return nil, err
	}
	settings.Filter = filter

	return settings, nil
}

// TrendGlyphs retorna os emojis de tendência configurados
func (s Settings) TrendGlyphs() domain.TrendGlyphs {
	return domain.TrendGlyphs{
		Sideways: s.SidewayTrendEmoji,
		Up:       s.UpTrendEmoji,
		Down:     s.DownTrendEmoji,
	}
}

// RequestDelay retorna o intervalo mínimo entre requisições de histórico
func (s Settings) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelayMS) * time.Millisecond
}

func buildChannelFilter(hasInclude bool, include []string, hasExclude bool, exclude []string) (domain.ChannelFilter, error) {
	var kind domain.FilterKind
	var expressions []string

	switch {
	case hasInclude && len(include) > 0:
		kind = domain.FilterInclude
		expressions = include
	case hasExclude && len(exclude) > 0:
		kind = domain.FilterExclude
		expressions = exclude
	default:
		return domain.ChannelFilter{Kind: domain.FilterNone}, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(expressions))
	for _, expression := range expressions {
		pattern, err := regexp.Compile(expression)
		if err != nil {
			return domain.ChannelFilter{}, fmt.Errorf("expressão inválida em %s_channels %q: %w", kind, expression, err)
		}
		patterns = append(patterns, pattern)
	}

	return domain.ChannelFilter{Kind: kind, Patterns: patterns}, nil
}
