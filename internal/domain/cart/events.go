package cart

import "boxoffice/internal/domain/events"

type SeatAddedToCart struct {
	Header events.Header `json:"header"`
	SeatID string        `json:"seat_id"`
	Row    int           `json:"row"`
	Place  int           `json:"place"`
}

type SeatRemovedFromCart struct {
	Header events.Header `json:"header"`
	SeatID string        `json:"seat_id"`
}
