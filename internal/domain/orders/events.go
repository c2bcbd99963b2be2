package orders

import (
	"boxoffice/internal/domain/events"
	"boxoffice/internal/domain/seating"
)

type OrderPlaced struct {
	Header        events.Header `json:"header"`
	OrderID       string        `json:"order_id"`
	CustomerEmail string        `json:"customer_email"`
	TotalAmount   seating.Money `json:"total_amount"`
	TicketCount   int           `json:"ticket_count"`
}
