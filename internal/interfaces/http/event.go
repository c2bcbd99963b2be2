package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"boxoffice/internal/domain/calendar"
	"boxoffice/internal/domain/seating"
)

func (s *Server) GetEventHandler(c echo.Context) error {
	event, err := s.currentEvent(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

func (s *Server) CalendarHandler(c echo.Context) error {
	event, err := s.currentEvent(c)
	if err != nil {
		return err
	}

	ics := calendar.VEvent(event, time.Now())

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="event.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func (s *Server) currentEvent(c echo.Context) (seating.EventData, error) {
	if event, ok := s.seats.Event(); ok {
		return event, nil
	}

	event, err := s.seats.LoadEvent(c.Request().Context())
	if err != nil {
		return seating.EventData{}, mapError(err)
	}
	return event, nil
}
