package clients

import (
	"context"
	"fmt"
	"net/url"

	domain "boxoffice/internal/domain/seating"
)

func (g *Gateway) GetEvent(ctx context.Context) (domain.EventData, error) {
	var event domain.EventData
	if err := g.getJSON(ctx, "/event", &event); err != nil {
		return domain.EventData{}, fmt.Errorf("failed to fetch event: %w", err)
	}
	return event, nil
}

func (g *Gateway) GetSeats(ctx context.Context, eventID string) (domain.SeatData, error) {
	var seats domain.SeatData
	path := "/event-tickets?eventId=" + url.QueryEscape(eventID)
	if err := g.getJSON(ctx, path, &seats); err != nil {
		return domain.SeatData{}, fmt.Errorf("failed to fetch seats: %w", err)
	}
	return seats, nil
}
