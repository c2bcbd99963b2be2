package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetSeatsHandler serves the normalized seat map, fetching it from the
// gateway on first use.
func (s *Server) GetSeatsHandler(c echo.Context) error {
	if snapshot, ok := s.seats.Snapshot(); ok {
		return c.JSON(http.StatusOK, snapshot)
	}

	event, err := s.currentEvent(c)
	if err != nil {
		return err
	}

	snapshot, err := s.seats.LoadSeats(c.Request().Context(), event.EventID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, snapshot)
}
