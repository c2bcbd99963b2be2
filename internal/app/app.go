package app

import (
	"context"
	"os"
	"time"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	cartapp "boxoffice/internal/application/cart"
	"boxoffice/internal/application/checkout"
	seatingapp "boxoffice/internal/application/seating"
	"boxoffice/internal/config"
	"boxoffice/internal/infrastructure/clients"
	"boxoffice/internal/interfaces/events"
	httpiface "boxoffice/internal/interfaces/http"
	"boxoffice/internal/repository"
)

// profileStore is everything the flow needs from durable profile storage.
type profileStore interface {
	checkout.ProfileStore
	httpiface.ProfileReader
	events.OrderHistoryStore
	events.LastLoginStore
}

type App struct {
	logger     zerolog.Logger
	router     *message.Router
	srv        *httpiface.Server
	controller *checkout.Controller
	seats      *seatingapp.Service
}

func NewApp(cfg config.Config, watermillLogger watermill.LoggerAdapter) (*App, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	var (
		publisher     message.Publisher
		newSubscriber events.SubscriberConstructor
		profile       profileStore
	)

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		publisher, err = redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: redisClient,
		}, watermillLogger)
		if err != nil {
			return nil, err
		}

		newSubscriber = func(handlerName string) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        redisClient,
				ConsumerGroup: "svc-boxoffice." + handlerName,
			}, watermillLogger)
		}

		profile = repository.NewRedisProfileStore(redisClient)
	} else {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
		publisher = pubSub
		newSubscriber = func(string) (message.Subscriber, error) {
			return pubSub, nil
		}
		profile = repository.NewMemoryProfileStore()
	}

	eventBus, err := events.NewEventBus(publisher, watermillLogger)
	if err != nil {
		return nil, err
	}

	processor, err := events.NewEventProcessor(router, newSubscriber, watermillLogger)
	if err != nil {
		return nil, err
	}
	err = processor.AddHandlers(
		events.OrderHistoryHandler(profile),
		events.LastLoginHandler(profile),
	)
	if err != nil {
		return nil, err
	}

	gateway := clients.NewGateway(cfg.GatewayAddr)
	seats := seatingapp.NewService(gateway)
	cart := cartapp.NewStore(eventBus)
	controller := checkout.NewController(cart, gateway, gateway, profile, seats, eventBus)

	e := commonHTTP.NewEcho()
	srv := httpiface.NewServer(
		e,
		cfg.BindAddr,
		seats,
		cart,
		controller,
		profile,
		router.IsRunning,
	)

	return &App{
		logger:     zerolog.New(os.Stdout),
		router:     router,
		srv:        srv,
		controller: controller,
		seats:      seats,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.controller.RestoreSession(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("could not restore session")
	}

	// warm the event and seat map caches; handlers fetch lazily on miss
	if event, err := a.seats.LoadEvent(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("could not load event")
	} else if _, err := a.seats.LoadSeats(ctx, event.EventID); err != nil {
		a.logger.Warn().Err(err).Msg("could not load seat map")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")
		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		err := a.srv.Stop(context.Background())
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}
		return err
	})

	return g.Wait()
}
