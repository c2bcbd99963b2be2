package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) LoginHandler(c echo.Context) error {
	var request LoginRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	if _, err := s.controller.Login(c.Request().Context(), request.Email, request.Password); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}

func (s *Server) LogoutHandler(c echo.Context) error {
	if err := s.controller.Logout(c.Request().Context()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stateResponse(s.controller.State()))
}
