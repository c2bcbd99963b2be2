package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"boxoffice/internal/domain/users"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User users.User `json:"user"`
}

func (g *Gateway) Login(ctx context.Context, email, password string) (users.User, error) {
	resp, err := g.postJSON(ctx, "/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return users.User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return users.User{}, ErrInvalidCredentials
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return users.User{}, fmt.Errorf("failed to decode login response: %w", err)
	}
	return body.User, nil
}
