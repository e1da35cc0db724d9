package notification

import (
	"context"
	"log/slog"

	"lmi/config"
	"lmi/internal/domain/constants"
	"lmi/internal/domain/service"
	"lmi/internal/infra/pubsub"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher is a no-op implementation when credential dispatch is disabled.
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) Dispatch(ctx context.Context, notice *service.CredentialNotice) error {
	d.logger.Debug("[NoopDispatch] Credential dispatch disabled, skipping",
		slog.Uint64("admin_id", uint64(notice.AdminID)),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for CredentialDispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialDispatcher creates a CredentialDispatcher based on configuration.
func NewCredentialDispatcher(params DispatcherParams) (service.CredentialDispatcher, error) {
	cfg := params.Config.Credential
	logger := params.Logger

	// If no provider is configured, return a no-op dispatcher.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Credential dispatch not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.CredentialDispatcher
	var err error

	switch cfg.Provider {
	case constants.DispatchProviderSMTP:
		logger.Info("Using SMTP credential dispatcher")

		dispatcher, err = NewSMTPMailer(cfg.SMTP, logger)
		if err != nil {
			return nil, err
		}

	case constants.DispatchProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP credential dispatcher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = pubsub.NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	case constants.DispatchProviderPubSub:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		logger.Info("Using Google Pub/Sub credential dispatcher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = pubsub.NewGooglePubSubDispatcher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown credential dispatch provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the dispatcher on shutdown.
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing CredentialDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the credential dispatch FX module.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCredentialDispatcher),
)
