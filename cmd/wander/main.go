package main

import (
	"context"
	"log/slog"
	"os"

	"wander/config"
	"wander/internal/delivery"
	"wander/internal/delivery/api"
	"wander/internal/delivery/api/router/handler"
	"wander/internal/domain/service"
	"wander/internal/infra/generation"
	"wander/internal/infra/geocoding"
	"wander/internal/infra/location"
	logs "wander/internal/infra/log"
	"wander/internal/infra/persistence/sqlite"
	"wander/internal/infra/pubsub"
	"wander/internal/usecase"
	"wander/internal/usecase/impl"

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
		injectHandler(),
		fx.Invoke(
			registerDiscoveryHooks,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		location.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewActivityRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			generation.New,
			geocoding.New,
			pubsub.NewEventPublisher,
			newLocationSource,
		),
	)
}

// newLocationSource exposes the push source to the location feed
func newLocationSource(source *location.PushSource) service.LocationSource {
	return source
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeocodeCache,
			impl.NewLocationFeed,
			impl.NewGenerationSession,
			impl.NewSourceCoordinator,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiscoveryHandler,
			handler.NewStreamHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// registerDiscoveryHooks primes favorite marks before serving and closes the
// message stream on shutdown.
func registerDiscoveryHooks(lc fx.Lifecycle, discovery usecase.DiscoveryUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := discovery.LoadFavoriteIDs(ctx); err != nil {
				logger.Warn("Failed to load favorite ids", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return discovery.Close()
		},
	})
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
