package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"boxoffice/internal/application/checkout"
	"boxoffice/internal/domain/users"
)

type CheckoutStateResponse struct {
	Screen            checkout.Screen `json:"screen"`
	CheckoutRequested bool            `json:"checkout_requested"`
	LoggedIn          bool            `json:"logged_in"`
	Contact           *users.User     `json:"contact,omitempty"`
}

func (s *Server) GetCheckoutHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}

func (s *Server) RequestCheckoutHandler(c echo.Context) error {
	if _, err := s.controller.RequestCheckout(c.Request().Context()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}

func (s *Server) ContinueAsGuestHandler(c echo.Context) error {
	if _, err := s.controller.ContinueAsGuest(c.Request().Context()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}

func (s *Server) BeginSignInHandler(c echo.Context) error {
	if _, err := s.controller.BeginSignIn(c.Request().Context()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}

// stateResponse exposes the session contact so the order form can prefill
// the details of a signed-in shopper.
func stateResponse(state checkout.State) CheckoutStateResponse {
	return CheckoutStateResponse{
		Screen:            state.Screen,
		CheckoutRequested: state.CheckoutRequested,
		LoggedIn:          state.LoggedIn(),
		Contact:           state.User,
	}
}
