package seating

import (
	"strings"
	"time"
)

// Unavailable marks a seat that cannot be purchased. Placeholder seats
// synthesized by Normalize carry it, and the gateway may return it too.
const Unavailable = "unavailable"

type TicketType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

type Seat struct {
	SeatID       string `json:"seatId"`
	Place        int    `json:"place"`
	TicketTypeID string `json:"ticketTypeId,omitempty"`
	Information  string `json:"information,omitempty"`
}

func (s Seat) Available() bool {
	return s.Information != Unavailable
}

type SeatRow struct {
	SeatRow int    `json:"seatRow"`
	Seats   []Seat `json:"seats"`
}

type SeatData struct {
	TicketTypes []TicketType `json:"ticketTypes"`
	SeatRows    []SeatRow    `json:"seatRows"`
}

// TicketType resolves a ticket type by id within the same snapshot.
func (d SeatData) TicketType(id string) (TicketType, bool) {
	for _, tt := range d.TicketTypes {
		if tt.ID == id {
			return tt, true
		}
	}
	return TicketType{}, false
}

type EventData struct {
	EventID        string    `json:"eventId"`
	NamePub        string    `json:"namePub"`
	Description    string    `json:"description"`
	CurrencyISO    string    `json:"currencyIso"`
	DateFrom       time.Time `json:"dateFrom"`
	DateTo         time.Time `json:"dateTo"`
	HeaderImageURL string    `json:"headerImageUrl"`
	Place          string    `json:"place"`
}

const placeholderPrefix = "placeholder-"

// IsPlaceholderID reports whether a seat id was synthesized by Normalize.
func IsPlaceholderID(seatID string) bool {
	return strings.HasPrefix(seatID, placeholderPrefix)
}
