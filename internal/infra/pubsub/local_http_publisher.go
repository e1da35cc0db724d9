package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lmi/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPDispatcher implements CredentialDispatcher by sending HTTP POST
// requests to a local endpoint, simulating Pub/Sub push behavior for development.
type localHTTPDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage mimics the format Google Pub/Sub uses when pushing to
// HTTP endpoints, so the same worker code handles both transports.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPDispatcher creates a new local HTTP credential dispatcher for development.
func NewLocalHTTPDispatcher(endpoint string, logger *slog.Logger) service.CredentialDispatcher {
	return &localHTTPDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Dispatch sends the credential notice as a simulated push message.
func (p *localHTTPDispatcher) Dispatch(ctx context.Context, notice *service.CredentialNotice) error {
	noticeData, err := json.Marshal(notice)
	if err != nil {
		return errors.WithStack(err)
	}

	adminID := strconv.FormatUint(uint64(notice.AdminID), 10)

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/credential-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(noticeData)
	pushMsg.Message.MessageID = adminID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	attributes := map[string]string{
		"admin_id": adminID,
		"email":    notice.Email,
	}
	if notice.RequestID != "" {
		attributes["request_id"] = notice.RequestID
	}
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing credential notice",
		slog.String("endpoint", p.endpoint),
		slog.Uint64("admin_id", uint64(notice.AdminID)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if notice.RequestID != "" {
		req.Header.Set("X-Request-Id", notice.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Credential notice published",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client).
func (p *localHTTPDispatcher) Close() error {
	return nil
}
