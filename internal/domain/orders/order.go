package orders

import (
	"boxoffice/internal/domain/seating"
	"boxoffice/internal/domain/users"
)

type Ticket struct {
	TicketTypeID string `json:"ticketTypeId"`
	SeatID       string `json:"seatId"`
}

// Request is the submission payload the gateway expects on POST /order.
type Request struct {
	EventID string     `json:"eventId"`
	Tickets []Ticket   `json:"tickets"`
	User    users.User `json:"user"`
}

// Order is created by the gateway in response to a successful submission.
type Order struct {
	OrderID     string        `json:"orderId"`
	User        users.User    `json:"user"`
	TotalAmount seating.Money `json:"totalAmount"`
	Tickets     []Ticket      `json:"tickets"`
}
