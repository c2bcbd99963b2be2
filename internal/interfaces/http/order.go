package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"boxoffice/internal/domain/users"
)

type SubmitOrderRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type OrderHistoryResponse struct {
	OrderIDs []string `json:"order_ids"`
}

func (s *Server) SubmitOrderHandler(c echo.Context) error {
	var request SubmitOrderRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	order, err := s.controller.SubmitOrder(c.Request().Context(), users.User{
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, order)
}

// OrderConfirmationHandler serves the last submitted order and consumes it;
// a second read responds 404.
func (s *Server) OrderConfirmationHandler(c echo.Context) error {
	order, err := s.profile.TakeOrder(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	if order == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no order to confirm")
	}
	return c.JSON(http.StatusOK, order)
}

func (s *Server) OrderHistoryHandler(c echo.Context) error {
	history, err := s.profile.OrderHistory(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	if history == nil {
		history = []string{}
	}
	return c.JSON(http.StatusOK, OrderHistoryResponse{OrderIDs: history})
}
