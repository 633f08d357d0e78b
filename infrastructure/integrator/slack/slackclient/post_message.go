package slackclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	slackdomain "github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/domain"
)

const methodChatPostMessage = "chat.postMessage"

// PostMessage publica a mensagem usando o token do bot
func (c *SlackClient) PostMessage(ctx context.Context, request slackdomain.PostMessageRequest) (*slackdomain.PostMessageResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(methodChatPostMessage), bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Slack.BotToken)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	var response slackdomain.PostMessageResponse
	if err := c.do(req, methodChatPostMessage, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
