package slackclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	slackdomain "github.com/vfg2006/slack-hot-channels/infrastructure/integrator/slack/domain"
	"github.com/vfg2006/slack-hot-channels/internal/config"
	"github.com/vfg2006/slack-hot-channels/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageLimit = "1000"

type HistoryParams struct {
	ChannelID string
	Oldest    string
	Latest    string
	Cursor    string
}

type Client interface {
	ListConversations(ctx context.Context, cursor string) (*slackdomain.ConversationsResponse, error)
	GetHistory(ctx context.Context, params HistoryParams) (*slackdomain.HistoryResponse, error)
	PostMessage(ctx context.Context, request slackdomain.PostMessageRequest) (*slackdomain.PostMessageResponse, error)
}

// envelope é implementado por todas as respostas que embutem BaseResponse
type envelope interface {
	Base() slackdomain.BaseResponse
}

type SlackClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Slack.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SlackClient{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
	}
}

// do executa a requisição, registra a duração e decodifica a resposta em out.
// Respostas com status diferente de 200 ou com "ok": false viram *APIError.
func (c *SlackClient) do(req *http.Request, method string, out envelope) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SlackRequestDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		logrus.WithError(err).WithField("method", method).Error("Erro ao fazer a requisição")
		return fmt.Errorf("erro ao chamar %s: %w", method, err)
	}
	defer resp.Body.Close()

	metrics.SlackRequestDuration.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta de %s: %w", method, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &slackdomain.APIError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Code:       http.StatusText(resp.StatusCode),
		}
		if retryAfter, convErr := strconv.Atoi(resp.Header.Get("Retry-After")); convErr == nil {
			apiErr.RetryAfter = time.Duration(retryAfter) * time.Second
		}

		var base slackdomain.BaseResponse
		if json.Unmarshal(body, &base) == nil && base.Error != "" {
			apiErr.Code = base.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithError(err).WithField("method", method).Error("Erro ao decodificar JSON")
		return fmt.Errorf("erro ao decodificar resposta de %s: %w", method, err)
	}

	base := out.Base()
	if !base.OK {
		return &slackdomain.APIError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Code:       base.Error,
		}
	}

	if base.Warning != "" {
		logrus.WithFields(logrus.Fields{
			"method":  method,
			"warning": base.Warning,
		}).Warn("Slack retornou um aviso")
	}

	return nil
}

func (c *SlackClient) endpoint(method string) string {
	return c.cfg.Slack.APIURL + "/" + method
}
