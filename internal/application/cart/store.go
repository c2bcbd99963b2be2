// Package cart holds the shopper's seat selections for one event in one
// purchase session. All mutation goes through the store so the one-entry-per
// seat invariant holds at the boundary.
package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	domain "boxoffice/internal/domain/cart"
	"boxoffice/internal/domain/events"
	"boxoffice/internal/domain/seating"
)

var ErrSeatUnavailable = errors.New("seat is not available for purchase")

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type Store struct {
	mu    sync.Mutex
	items []domain.Item
	bus   EventBus
}

func NewStore(bus EventBus) *Store {
	return &Store{bus: bus}
}

// Add appends the item unless its seat is already in the cart. A duplicate
// add is a no-op and reports false. Placeholder seats are never addable.
func (s *Store) Add(ctx context.Context, item domain.Item) (bool, error) {
	if seating.IsPlaceholderID(item.SeatID) {
		return false, ErrSeatUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.SeatID == item.SeatID {
			return false, nil
		}
	}
	s.items = append(s.items, item)

	s.publish(ctx, domain.SeatAddedToCart{
		Header: events.NewHeader(),
		SeatID: item.SeatID,
		Row:    item.Row,
		Place:  item.Place,
	})

	return true, nil
}

// Remove drops the entry with the matching seat id, reporting whether one
// was present.
func (s *Store) Remove(ctx context.Context, seatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.SeatID == seatID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.publish(ctx, domain.SeatRemovedFromCart{
				Header: events.NewHeader(),
				SeatID: seatID,
			})
			return true
		}
	}
	return false
}

func (s *Store) Contains(seatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.SeatID == seatID {
			return true
		}
	}
	return false
}

// Items returns a copy of the current selections in insertion order.
func (s *Store) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Total sums the current selections. A seat without a price counts as zero,
// matching how the seat map sells seats the gateway serves without a ticket
// type.
func (s *Store) Total() seating.Money {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total seating.Money
	for _, it := range s.items {
		if it.Price != nil {
			total += *it.Price
		}
	}
	return total
}

// Clear empties the cart. Called once, after a successful order submission.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

func (s *Store) publish(ctx context.Context, event any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		log.FromContext(ctx).WithField("error", err).Warn("Failed to publish cart event")
	}
}
