package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
	"boxoffice/internal/repository"
)

type profileStore interface {
	SaveUser(ctx context.Context, user users.User) error
	LoadUser(ctx context.Context) (*users.User, error)
	DeleteUser(ctx context.Context) error
	SaveOrder(ctx context.Context, order orders.Order) error
	TakeOrder(ctx context.Context) (*orders.Order, error)
	AppendOrderHistory(ctx context.Context, orderID string) error
	OrderHistory(ctx context.Context) ([]string, error)
	SetLastLogin(ctx context.Context, at time.Time) error
	LastLogin(ctx context.Context) (*time.Time, error)
}

func testProfileStore(t *testing.T, store profileStore) {
	ctx := context.Background()

	t.Run("user round trip", func(t *testing.T) {
		loaded, err := store.LoadUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, loaded)

		user := users.User{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
		require.NoError(t, store.SaveUser(ctx, user))

		loaded, err = store.LoadUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, user, *loaded)

		require.NoError(t, store.DeleteUser(ctx))
		loaded, err = store.LoadUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("order is read exactly once", func(t *testing.T) {
		order := orders.Order{
			OrderID:     "ord-1",
			TotalAmount: 35000,
			Tickets:     []orders.Ticket{{TicketTypeID: "vip", SeatID: "S1"}},
		}
		require.NoError(t, store.SaveOrder(ctx, order))

		taken, err := store.TakeOrder(ctx)
		require.NoError(t, err)
		require.NotNil(t, taken)
		assert.Equal(t, order, *taken)

		taken, err = store.TakeOrder(ctx)
		require.NoError(t, err)
		assert.Nil(t, taken)
	})

	t.Run("order history", func(t *testing.T) {
		require.NoError(t, store.AppendOrderHistory(ctx, "ord-1"))
		require.NoError(t, store.AppendOrderHistory(ctx, "ord-2"))

		history, err := store.OrderHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ord-1", "ord-2"}, history)
	})

	t.Run("last login", func(t *testing.T) {
		at, err := store.LastLogin(ctx)
		require.NoError(t, err)
		assert.Nil(t, at)

		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		require.NoError(t, store.SetLastLogin(ctx, now))

		at, err = store.LastLogin(ctx)
		require.NoError(t, err)
		require.NotNil(t, at)
		assert.Equal(t, now, *at)
	})
}

func TestMemoryProfileStore(t *testing.T) {
	testProfileStore(t, repository.NewMemoryProfileStore())
}

func TestRedisProfileStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   7,
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	// isolate this run from leftovers of previous ones
	require.NoError(t, client.FlushDB(context.Background()).Err())
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	testProfileStore(t, repository.NewRedisProfileStore(client))
}
