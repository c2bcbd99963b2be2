package clients_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/domain/orders"
	"boxoffice/internal/infrastructure/clients"
)

func TestGateway_GetEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"eventId": "evt-1",
			"namePub": "Spring Concert",
			"currencyIso": "CZK",
			"dateFrom": "2024-03-01T19:00:00Z",
			"dateTo": "2024-03-01T22:00:00Z",
			"place": "Prague"
		}`))
	}))
	defer srv.Close()

	event, err := clients.NewGateway(srv.URL).GetEvent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "evt-1", event.EventID)
	assert.Equal(t, "CZK", event.CurrencyISO)
}

func TestGateway_GetSeats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event-tickets", r.URL.Path)
		require.Equal(t, "evt-1", r.URL.Query().Get("eventId"))
		_, _ = w.Write([]byte(`{
			"ticketTypes": [{"id": "vip", "name": "VIP ticket", "price": 1250}],
			"seatRows": [{"seatRow": 1, "seats": [{"seatId": "S1", "place": 1, "ticketTypeId": "vip"}]}]
		}`))
	}))
	defer srv.Close()

	seats, err := clients.NewGateway(srv.URL).GetSeats(context.Background(), "evt-1")
	require.NoError(t, err)
	require.Len(t, seats.TicketTypes, 1)
	assert.EqualValues(t, 125000, seats.TicketTypes[0].Price)
	require.Len(t, seats.SeatRows, 1)
}

func TestGateway_GetSeatsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"seatRows": "not a list"}`))
	}))
	defer srv.Close()

	_, err := clients.NewGateway(srv.URL).GetSeats(context.Background(), "evt-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestGateway_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"user": {"email": "jane@example.com", "firstName": "Jane", "lastName": "Doe"}}`))
	}))
	defer srv.Close()

	gateway := clients.NewGateway(srv.URL)

	user, err := gateway.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.FirstName)

	_, err = gateway.Login(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, clients.ErrInvalidCredentials)
}

func TestGateway_PlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/order", r.URL.Path)

		var req orders.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.EventID == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(orders.Order{
			OrderID: "ord-1",
			User:    req.User,
			Tickets: req.Tickets,
		})
	}))
	defer srv.Close()

	gateway := clients.NewGateway(srv.URL)

	order, err := gateway.PlaceOrder(context.Background(), orders.Request{
		EventID: "evt-1",
		Tickets: []orders.Ticket{{TicketTypeID: "vip", SeatID: "S1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", order.OrderID)

	_, err = gateway.PlaceOrder(context.Background(), orders.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}
