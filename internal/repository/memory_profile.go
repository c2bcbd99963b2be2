package repository

import (
	"context"
	"sync"
	"time"

	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
)

// MemoryProfileStore keeps profile data in process memory. Used in tests and
// when no redis address is configured.
type MemoryProfileStore struct {
	mu        sync.Mutex
	user      *users.User
	order     *orders.Order
	history   []string
	lastLogin *time.Time
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{}
}

func (s *MemoryProfileStore) SaveUser(ctx context.Context, user users.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	return nil
}

func (s *MemoryProfileStore) LoadUser(ctx context.Context) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryProfileStore) DeleteUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return nil
}

func (s *MemoryProfileStore) SaveOrder(ctx context.Context, order orders.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = &order
	return nil
}

func (s *MemoryProfileStore) TakeOrder(ctx context.Context) (*orders.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return nil, nil
	}
	order := *s.order
	s.order = nil
	return &order, nil
}

func (s *MemoryProfileStore) AppendOrderHistory(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, orderID)
	return nil
}

func (s *MemoryProfileStore) OrderHistory(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]string, len(s.history))
	copy(history, s.history)
	return history, nil
}

func (s *MemoryProfileStore) SetLastLogin(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := at.UTC()
	s.lastLogin = &t
	return nil
}

func (s *MemoryProfileStore) LastLogin(ctx context.Context) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastLogin == nil {
		return nil, nil
	}
	t := *s.lastLogin
	return &t, nil
}
