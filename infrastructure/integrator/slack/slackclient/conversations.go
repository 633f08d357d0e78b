package slackclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	slackdomain "github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/domain"
)

const (
	methodConversationsList    = "conversations.list"
	methodConversationsHistory = "conversations.history"
)

// ListConversations retorna uma página de canais públicos não arquivados
func (c *SlackClient) ListConversations(ctx context.Context, cursor string) (*slackdomain.ConversationsResponse, error) {
	params := url.Values{}
	params.Add("limit", pageLimit)
	params.Add("exclude_archived", "true")
	if cursor != "" {
		params.Add("cursor", cursor)
	}

	req, err := c.newReadRequest(ctx, methodConversationsList, params)
	if err != nil {
		return nil, err
	}

	var response slackdomain.ConversationsResponse
	if err := c.do(req, methodConversationsList, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetHistory retorna uma página do histórico de um canal dentro da janela informada
func (c *SlackClient) GetHistory(ctx context.Context, p HistoryParams) (*slackdomain.HistoryResponse, error) {
	params := url.Values{}
	params.Add("channel", p.ChannelID)
	params.Add("limit", pageLimit)
	if p.Oldest != "" {
		params.Add("oldest", p.Oldest)
	}
	if p.Latest != "" {
		params.Add("latest", p.Latest)
	}
	if p.Cursor != "" {
		params.Add("cursor", p.Cursor)
	}

	req, err := c.newReadRequest(ctx, methodConversationsHistory, params)
	if err != nil {
		return nil, err
	}

	var response slackdomain.HistoryResponse
	if err := c.do(req, methodConversationsHistory, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *SlackClient) newReadRequest(ctx context.Context, method string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(method)+"?"+params.Encode(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Slack.Token)

	return req, nil
}
