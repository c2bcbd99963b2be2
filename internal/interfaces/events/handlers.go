package events

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
)

type OrderHistoryStore interface {
	AppendOrderHistory(ctx context.Context, orderID string) error
}

type LastLoginStore interface {
	SetLastLogin(ctx context.Context, at time.Time) error
}

// OrderHistoryHandler records every placed order in the profile's history.
func OrderHistoryHandler(store OrderHistoryStore) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"order_history_handler",
		func(ctx context.Context, payload *orders.OrderPlaced) error {
			log.FromContext(ctx).
				WithField("order_id", payload.OrderID).
				Info("Recording order in history")

			return store.AppendOrderHistory(ctx, payload.OrderID)
		},
	)
}

// LastLoginHandler remembers when the shopper last signed in.
func LastLoginHandler(store LastLoginStore) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"last_login_handler",
		func(ctx context.Context, payload *users.UserLoggedIn) error {
			at, err := time.Parse(time.RFC3339, payload.Header.PublishedAt)
			if err != nil {
				at = time.Now().UTC()
			}
			return store.SetLastLogin(ctx, at)
		},
	)
}
