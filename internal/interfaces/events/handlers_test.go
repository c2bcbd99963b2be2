package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainevents "boxoffice/internal/domain/events"
	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
	"boxoffice/internal/interfaces/events"
	"boxoffice/internal/repository"
)

func TestEventHandlers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)
	profile := repository.NewMemoryProfileStore()

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	require.NoError(t, err)
	router.AddMiddleware(events.CorrelationIDMiddleware)

	processor, err := events.NewEventProcessor(router, func(string) (message.Subscriber, error) {
		return pubSub, nil
	}, logger)
	require.NoError(t, err)
	require.NoError(t, processor.AddHandlers(
		events.OrderHistoryHandler(profile),
		events.LastLoginHandler(profile),
	))

	go func() {
		_ = router.Run(ctx)
	}()
	select {
	case <-router.Running():
	case <-ctx.Done():
		t.Fatal("router did not start")
	}

	bus, err := events.NewEventBus(pubSub, logger)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, orders.OrderPlaced{
		Header:        domainevents.NewHeader(),
		OrderID:       "ord-1",
		CustomerEmail: "jane@example.com",
		TicketCount:   2,
	}))
	require.NoError(t, bus.Publish(ctx, users.UserLoggedIn{
		Header: domainevents.NewHeader(),
		Email:  "jane@example.com",
	}))

	assert.Eventually(t, func() bool {
		history, err := profile.OrderHistory(ctx)
		return err == nil && len(history) == 1 && history[0] == "ord-1"
	}, 5*time.Second, 50*time.Millisecond, "order history handler did not run")

	assert.Eventually(t, func() bool {
		at, err := profile.LastLogin(ctx)
		return err == nil && at != nil
	}, 5*time.Second, 50*time.Millisecond, "last login handler did not run")
}
