package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"boxoffice/internal/domain/orders"
)

func (g *Gateway) PlaceOrder(ctx context.Context, req orders.Request) (orders.Order, error) {
	resp, err := g.postJSON(ctx, "/order", req)
	if err != nil {
		return orders.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return orders.Order{}, fmt.Errorf("unexpected status code: %v", resp.StatusCode)
	}

	var order orders.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return orders.Order{}, fmt.Errorf("failed to decode order response: %w", err)
	}
	return order, nil
}
