// Package seating loads the event and its seat map from the gateway and
// keeps the latest normalized snapshot for the rest of the flow.
package seating

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	cartdomain "boxoffice/internal/domain/cart"
	domain "boxoffice/internal/domain/seating"
)

var (
	ErrSeatNotFound    = errors.New("seat not found in the current seat map")
	ErrSeatUnavailable = errors.New("seat is not available for purchase")
	ErrNoSeatData      = errors.New("seat map has not been loaded")
	ErrStaleResponse   = errors.New("seat data response is stale")
)

type Gateway interface {
	GetEvent(ctx context.Context) (domain.EventData, error)
	GetSeats(ctx context.Context, eventID string) (domain.SeatData, error)
}

type Service struct {
	gateway Gateway

	mu         sync.Mutex
	event      *domain.EventData
	snapshot   *domain.SeatData
	generation uint64
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// LoadEvent fetches and caches the event details.
func (s *Service) LoadEvent(ctx context.Context) (domain.EventData, error) {
	event, err := s.gateway.GetEvent(ctx)
	if err != nil {
		return domain.EventData{}, fmt.Errorf("failed to load event: %w", err)
	}

	s.mu.Lock()
	s.event = &event
	s.mu.Unlock()

	return event, nil
}

func (s *Service) Event() (domain.EventData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.event == nil {
		return domain.EventData{}, false
	}
	return *s.event, true
}

func (s *Service) EventID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.event == nil {
		return ""
	}
	return s.event.EventID
}

// LoadSeats fetches the seat listing for the event and stores the normalized
// snapshot. Each call invalidates the previous one: when two loads race, a
// response issued for a superseded request is discarded instead of
// overwriting the newer snapshot.
func (s *Service) LoadSeats(ctx context.Context, eventID string) (domain.SeatData, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	raw, err := s.gateway.GetSeats(ctx, eventID)
	if err != nil {
		return domain.SeatData{}, fmt.Errorf("failed to load seats: %w", err)
	}

	normalized := domain.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		log.FromContext(ctx).
			WithField("event_id", eventID).
			Info("Discarding stale seat data response")
		return domain.SeatData{}, ErrStaleResponse
	}
	s.snapshot = &normalized

	return normalized, nil
}

func (s *Service) Snapshot() (domain.SeatData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return domain.SeatData{}, false
	}
	return *s.snapshot, true
}

// BuildCartItem denormalizes a seat from the current snapshot into a cart
// item. This is the only constructor of cart items, so unavailable seats are
// rejected before they can reach the cart.
func (s *Service) BuildCartItem(seatID string) (cartdomain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return cartdomain.Item{}, ErrNoSeatData
	}

	for _, row := range s.snapshot.SeatRows {
		for _, seat := range row.Seats {
			if seat.SeatID != seatID {
				continue
			}
			if !seat.Available() {
				return cartdomain.Item{}, ErrSeatUnavailable
			}

			item := cartdomain.Item{
				SeatID:       seat.SeatID,
				Row:          row.SeatRow,
				Place:        seat.Place,
				TicketTypeID: seat.TicketTypeID,
			}
			if tt, ok := s.snapshot.TicketType(seat.TicketTypeID); ok {
				price := tt.Price
				item.Price = &price
			}
			return item, nil
		}
	}

	return cartdomain.Item{}, ErrSeatNotFound
}
