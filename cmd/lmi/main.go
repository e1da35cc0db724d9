package main

import (
	"context"
	"log/slog"
	"os"

	"lmi/config"
	"lmi/internal/delivery"
	"lmi/internal/delivery/http"
	httpmiddleware "lmi/internal/delivery/http/middleware"
	"lmi/internal/delivery/http/router/handler"
	"lmi/internal/delivery/middleware"
	"lmi/internal/domain/service"
	"lmi/internal/infra/credential"
	logs "lmi/internal/infra/log"
	"lmi/internal/infra/notification"
	"lmi/internal/infra/persistence/postgres"
	"lmi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSaaSAdminRepository,
			postgres.NewHolidayRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialGenerator,
			newCredentialHasher,
			notification.NewCredentialDispatcher,
		),
	)
}

// newCredentialGenerator creates the password generator from configuration.
func newCredentialGenerator(cfg *config.Config) service.CredentialGenerator {
	if cfg.Credential == nil {
		return credential.NewRandomGenerator(0)
	}

	return credential.NewRandomGenerator(cfg.Credential.PasswordLength)
}

// newCredentialHasher creates the credential hasher from configuration.
func newCredentialHasher(cfg *config.Config) service.CredentialHasher {
	if cfg.Credential == nil {
		return credential.NewBcryptHasher(0)
	}

	return credential.NewBcryptHasher(cfg.Credential.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSaaSAdminService,
			impl.NewHolidayService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSaaSAdminHandler,
			handler.NewHolidayHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
