package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "boxoffice/internal/domain/cart"
	"boxoffice/internal/domain/seating"
)

type CartResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
	Total seating.Money `json:"total"`
}

type AddToCartRequest struct {
	SeatID string `json:"seat_id"`
}

type AddToCartResponse struct {
	Added bool          `json:"added"`
	Count int           `json:"count"`
	Total seating.Money `json:"total"`
}

func (s *Server) GetCartHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cartResponse())
}

func (s *Server) AddToCartHandler(c echo.Context) error {
	var request AddToCartRequest
	if err := c.Bind(&request); err != nil {
		return err
	}
	if request.SeatID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "seat_id is required")
	}

	item, err := s.seats.BuildCartItem(request.SeatID)
	if err != nil {
		return mapError(err)
	}

	added, err := s.cart.Add(c.Request().Context(), item)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, AddToCartResponse{
		Added: added,
		Count: s.cart.Count(),
		Total: s.cart.Total(),
	})
}

func (s *Server) RemoveFromCartHandler(c echo.Context) error {
	s.cart.Remove(c.Request().Context(), c.Param("seatId"))
	return c.JSON(http.StatusOK, s.cartResponse())
}

func (s *Server) cartResponse() CartResponse {
	items := s.cart.Items()
	if items == nil {
		items = []domain.Item{}
	}
	return CartResponse{
		Items: items,
		Count: s.cart.Count(),
		Total: s.cart.Total(),
	}
}
