package cart

import "boxoffice/internal/domain/seating"

// Item is a denormalized snapshot of a selected seat, taken at selection
// time. Price is nil for seats the gateway serves without a ticket type.
type Item struct {
	SeatID       string         `json:"seatId"`
	Row          int            `json:"row"`
	Place        int            `json:"place"`
	Price        *seating.Money `json:"price,omitempty"`
	TicketTypeID string         `json:"ticketTypeId,omitempty"`
}
