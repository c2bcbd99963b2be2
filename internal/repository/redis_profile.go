package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
)

type RedisProfileStore struct {
	client *redis.Client
}

func NewRedisProfileStore(client *redis.Client) *RedisProfileStore {
	return &RedisProfileStore{client: client}
}

func (s *RedisProfileStore) SaveUser(ctx context.Context, user users.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey, payload, 0).Err()
}

func (s *RedisProfileStore) LoadUser(ctx context.Context) (*users.User, error) {
	payload, err := s.client.Get(ctx, userKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user users.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}
	return &user, nil
}

func (s *RedisProfileStore) DeleteUser(ctx context.Context) error {
	return s.client.Del(ctx, userKey).Err()
}

func (s *RedisProfileStore) SaveOrder(ctx context.Context, order orders.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, orderKey, payload, 0).Err()
}

// TakeOrder returns the stored order and consumes it, so the confirmation
// screen reads it exactly once.
func (s *RedisProfileStore) TakeOrder(ctx context.Context) (*orders.Order, error) {
	payload, err := s.client.GetDel(ctx, orderKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	var order orders.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to decode stored order: %w", err)
	}
	return &order, nil
}

func (s *RedisProfileStore) AppendOrderHistory(ctx context.Context, orderID string) error {
	return s.client.RPush(ctx, orderHistoryKey, orderID).Err()
}

func (s *RedisProfileStore) OrderHistory(ctx context.Context) ([]string, error) {
	return s.client.LRange(ctx, orderHistoryKey, 0, -1).Result()
}

func (s *RedisProfileStore) SetLastLogin(ctx context.Context, at time.Time) error {
	return s.client.Set(ctx, lastLoginKey, at.UTC().Format(time.RFC3339), 0).Err()
}

func (s *RedisProfileStore) LastLogin(ctx context.Context) (*time.Time, error) {
	raw, err := s.client.Get(ctx, lastLoginKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last login: %w", err)
	}

	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored last login: %w", err)
	}
	return &at, nil
}
