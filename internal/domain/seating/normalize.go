package seating

import (
	"fmt"
	"sort"
)

// Normalize turns a sparse seat listing into a rectangular grid: every row
// ends up with seats contiguous by place from 1 to the snapshot-wide maximum,
// missing places filled with unavailable placeholder seats. Rows are sorted
// by seatRow and seats by place. The input is not mutated, and running
// Normalize on its own output is a no-op.
func Normalize(data SeatData) SeatData {
	maxPlace := 0
	for _, row := range data.SeatRows {
		for _, seat := range row.Seats {
			if seat.Place > maxPlace {
				maxPlace = seat.Place
			}
		}
	}

	rows := make([]SeatRow, 0, len(data.SeatRows))
	for _, row := range data.SeatRows {
		seats := append(make([]Seat, 0, maxPlace), row.Seats...)

		existing := make(map[int]struct{}, len(row.Seats))
		for _, seat := range row.Seats {
			existing[seat.Place] = struct{}{}
		}

		for place := 1; place <= maxPlace; place++ {
			if _, ok := existing[place]; ok {
				continue
			}
			seats = append(seats, Seat{
				SeatID:      fmt.Sprintf("%s%d-%d", placeholderPrefix, row.SeatRow, place),
				Place:       place,
				Information: Unavailable,
			})
		}

		sort.Slice(seats, func(i, j int) bool { return seats[i].Place < seats[j].Place })
		rows = append(rows, SeatRow{SeatRow: row.SeatRow, Seats: seats})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SeatRow < rows[j].SeatRow })

	return SeatData{TicketTypes: data.TicketTypes, SeatRows: rows}
}
