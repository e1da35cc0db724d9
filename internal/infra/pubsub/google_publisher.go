// Package pubsub implements the CredentialDispatcher interface over message
// transports: Google Cloud Pub/Sub for production and a local HTTP push
// simulator for development.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"lmi/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubDispatcher implements CredentialDispatcher using Google Cloud Pub/Sub.
// A downstream worker subscribes to the topic and delivers the actual mail.
type googlePubSubDispatcher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubDispatcher creates a new Google Pub/Sub credential dispatcher.
func NewGooglePubSubDispatcher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.CredentialDispatcher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub credential dispatcher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubDispatcher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Dispatch publishes the credential notice to the configured topic.
func (p *googlePubSubDispatcher) Dispatch(ctx context.Context, notice *service.CredentialNotice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return errors.WithStack(err)
	}

	// Attributes allow subscribers to filter and trace without decoding the body.
	attributes := map[string]string{
		"admin_id": strconv.FormatUint(uint64(notice.AdminID), 10),
		"email":    notice.Email,
	}
	if notice.RequestID != "" {
		attributes["request_id"] = notice.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	p.logger.Info("[GooglePubSub] Publishing credential notice",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Credential notice published",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources.
func (p *googlePubSubDispatcher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
