package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"

	cartapp "boxoffice/internal/application/cart"
	"boxoffice/internal/application/checkout"
	seatingapp "boxoffice/internal/application/seating"
	"boxoffice/internal/domain/orders"
	"boxoffice/internal/infrastructure/clients"
)

// ProfileReader is the slice of the profile store the HTTP surface reads
// from directly.
type ProfileReader interface {
	TakeOrder(ctx context.Context) (*orders.Order, error)
	OrderHistory(ctx context.Context) ([]string, error)
}

type Server struct {
	e    *echo.Echo
	addr string

	seats      *seatingapp.Service
	cart       *cartapp.Store
	controller *checkout.Controller
	profile    ProfileReader
}

func NewServer(
	e *echo.Echo,
	addr string,
	seats *seatingapp.Service,
	cart *cartapp.Store,
	controller *checkout.Controller,
	profile ProfileReader,
	routerIsRunning func() bool,
) *Server {
	srv := &Server{
		e:          e,
		addr:       addr,
		seats:      seats,
		cart:       cart,
		controller: controller,
		profile:    profile,
	}

	e.GET("/event", srv.GetEventHandler)
	e.GET("/seats", srv.GetSeatsHandler)
	e.GET("/calendar.ics", srv.CalendarHandler)

	e.GET("/cart", srv.GetCartHandler)
	e.POST("/cart", srv.AddToCartHandler)
	e.DELETE("/cart/:seatId", srv.RemoveFromCartHandler)

	e.GET("/checkout", srv.GetCheckoutHandler)
	e.POST("/checkout", srv.RequestCheckoutHandler)
	e.POST("/checkout/guest", srv.ContinueAsGuestHandler)
	e.POST("/checkout/sign-in", srv.BeginSignInHandler)

	e.POST("/login", srv.LoginHandler)
	e.POST("/logout", srv.LogoutHandler)

	e.POST("/order", srv.SubmitOrderHandler)
	e.GET("/order/confirmation", srv.OrderConfirmationHandler)
	e.GET("/order/history", srv.OrderHistoryHandler)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log.FromContext(c.Request().Context()).
				WithField("path", c.Request().URL.Path).
				Info("Handling a request")

			err := next(c)
			if err != nil {
				log.FromContext(c.Request().Context()).
					WithField("error", err).
					Error("Request handling error")
			}

			return err
		}
	})

	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// mapError translates flow errors to HTTP statuses. Anything unrecognized
// at this surface came from the upstream event service.
func mapError(err error) error {
	var validation checkout.ValidationError
	switch {
	case errors.As(err, &validation):
		return echo.NewHTTPError(http.StatusBadRequest, validation.Error())
	case errors.Is(err, clients.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, seatingapp.ErrSeatNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrWrongScreen),
		errors.Is(err, seatingapp.ErrSeatUnavailable),
		errors.Is(err, seatingapp.ErrNoSeatData),
		errors.Is(err, seatingapp.ErrStaleResponse),
		errors.Is(err, cartapp.ErrSeatUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}
