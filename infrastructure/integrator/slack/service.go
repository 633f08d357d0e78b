package slack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	slackdomain "github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/domain"
	"github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/slackclient"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/internal/domain"
	"golang.org/x/time/rate"
)

type SlackIntegrator interface {
	ListChannels(ctx context.Context, filter domain.ChannelFilter) ([]domain.Channel, error)
	CollectHistory(ctx context.Context, channels []domain.Channel, window domain.Window, day string) ([]domain.AggregatedData, error)
	PostRanking(ctx context.Context, post domain.PostData, settings config.Settings) error
}

type Integrator struct {
	Client  slackclient.Client
	limiter *rate.Limiter
}

func New(cfg *config.Config, client slackclient.Client) *Integrator {
	return &Integrator{
		Client:  client,
		limiter: newLimiter(cfg.Settings.RequestDelay()),
	}
}

// newLimiter espaça as chamadas de conversations.history pelo intervalo configurado
func newLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// ListChannels percorre todas as páginas de conversations.list e aplica o filtro de nomes
func (s *Integrator) ListChannels(ctx context.Context, filter domain.ChannelFilter) ([]domain.Channel, error) {
	channels := make([]domain.Channel, 0)
	cursor := ""

	for {
		resp, err := s.Client.ListConversations(ctx, cursor)
		if err != nil {
			logFailure(logrus.WithError(err), err, "channels: falha ao listar canais do Slack")
			return nil, err
		}

		for _, channel := range resp.Channels {
			channels = append(channels, domain.Channel{ID: channel.ID, Name: channel.Name})
		}

		cursor = resp.ResponseMetadata.NextCursor
		if cursor == "" {
			break
		}
	}

	filtered := filter.Apply(channels)

	logrus.WithFields(logrus.Fields{
		"total":    len(channels),
		"filtered": len(filtered),
		"filter":   filter.Kind.String(),
	}).Info("channels: canais carregados")

	return filtered, nil
}

// CollectHistory busca o histórico de cada canal na janela informada, um canal por vez.
// Qualquer falha interrompe a coleta e nenhum resultado parcial é retornado.
func (s *Integrator) CollectHistory(ctx context.Context, channels []domain.Channel, window domain.Window, day string) ([]domain.AggregatedData, error) {
	data := make([]domain.AggregatedData, 0, len(channels))

	for i, channel := range channels {
		logrus.WithFields(logrus.Fields{
			"day":     day,
			"channel": channel.Name,
		}).Infof("history: fetch %s [%d/%d]", day, i+1, len(channels))

		messages, err := s.channelHistory(ctx, channel, window)
		if err != nil {
			logFailure(logrus.WithFields(logrus.Fields{
				"day":        day,
				"channel_id": channel.ID,
				"error":      err.Error(),
			}), err, "history: falha ao buscar histórico do canal")
			return nil, fmt.Errorf("histórico do canal %s (%s): %w", channel.Name, channel.ID, err)
		}

		data = append(data, domain.AggregatedData{
			ID:       channel.ID,
			Name:     channel.Name,
			Messages: messages,
		})
	}

	return data, nil
}

func (s *Integrator) channelHistory(ctx context.Context, channel domain.Channel, window domain.Window) ([]domain.Message, error) {
	messages := make([]domain.Message, 0)
	params := slackclient.HistoryParams{
		ChannelID: channel.ID,
		Oldest:    window.OldestUnix(),
		Latest:    window.LatestUnix(),
	}

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := s.Client.GetHistory(ctx, params)
		if err != nil {
			return nil, err
		}

		page := make([]domain.Message, 0, len(resp.Messages))
		for _, message := range resp.Messages {
			page = append(page, domain.Message{BotID: message.BotID, Subtype: message.Subtype})
		}
		messages = append(messages, domain.FilterValidMessages(page)...)

		if !resp.HasMore || resp.ResponseMetadata.NextCursor == "" {
			break
		}
		params.Cursor = resp.ResponseMetadata.NextCursor
	}

	return messages, nil
}

// PostRanking publica o ranking no canal configurado, limitado a ranking_count linhas
func (s *Integrator) PostRanking(ctx context.Context, post domain.PostData, settings config.Settings) error {
	fields := post.AttachmentFields
	if len(fields) > settings.RankingCount {
		fields = fields[:settings.RankingCount]
	}

	attachmentFields := make([]slackdomain.AttachmentField, 0, len(fields))
	for _, field := range fields {
		attachmentFields = append(attachmentFields, slackdomain.AttachmentField{
			Title: field.Title,
			Value: field.Value,
			Short: field.Short,
		})
	}

	request := slackdomain.PostMessageRequest{
		Channel:   settings.PostChannel,
		Username:  settings.UserName,
		IconEmoji: settings.IconEmoji,
		Attachments: []slackdomain.Attachment{
			{
				Color:      settings.Color,
				AuthorName: settings.AuthorName,
				AuthorLink: settings.AuthorLink,
				Title:      post.AttachmentTitle,
				Text:       post.AttachmentText,
				Fields:     attachmentFields,
			},
		},
	}

	resp, err := s.Client.PostMessage(ctx, request)
	if err != nil {
		logFailure(logrus.WithFields(logrus.Fields{
			"channel": settings.PostChannel,
			"error":   err.Error(),
		}), err, "post: falha ao publicar ranking")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"channel": resp.Channel,
		"ts":      resp.TS,
		"lines":   len(attachmentFields),
	}).Info("post: ranking publicado")

	return nil
}

// Motivos de falha destacados nos logs
const (
	failureRateLimited = "rate_limited"
	failureAuth        = "auth"
)

// failureReason classifica erros da API do Slack que pedem ação do operador
func failureReason(err error) string {
	var apiErr *slackdomain.APIError
	if !errors.As(err, &apiErr) {
		return ""
	}

	switch {
	case apiErr.IsRateLimited():
		return failureRateLimited
	case apiErr.IsAuthError():
		return failureAuth
	}
	return ""
}

func logFailure(entry *logrus.Entry, err error, message string) {
	switch failureReason(err) {
	case failureRateLimited:
		entry.WithField("reason", failureRateLimited).Error(message + ": limite de requisições do Slack atingido, aumente request_delay_ms")
	case failureAuth:
		entry.WithField("reason", failureAuth).Error(message + ": token inválido ou sem permissão, verifique TOKEN e BOT_TOKEN")
	default:
		entry.Error(message)
	}
}
