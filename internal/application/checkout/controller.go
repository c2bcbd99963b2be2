// Package checkout sequences the shopper from seat selection through the
// sign-in decision to order submission. The reactive "already signed in"
// shortcut of the original flow is an explicit transition here, evaluated
// after every mutation that touches the prompt or the session.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	cartapp "boxoffice/internal/application/cart"
	domainevents "boxoffice/internal/domain/events"
	"boxoffice/internal/domain/orders"
	"boxoffice/internal/domain/users"
)

type Screen string

const (
	ScreenBrowsing       Screen = "browsing"
	ScreenCheckoutPrompt Screen = "checkout_prompt"
	ScreenLoginPrompt    Screen = "login_prompt"
	ScreenOrderForm      Screen = "order_form"
	ScreenConfirmation   Screen = "confirmation"
)

var (
	ErrEmptyCart   = errors.New("checkout requires a non-empty cart")
	ErrWrongScreen = errors.New("operation not allowed on the current screen")
)

// ValidationError reports contact fields missing from a submission. It is
// raised before any network call.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (users.User, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req orders.Request) (orders.Order, error)
}

type ProfileStore interface {
	SaveUser(ctx context.Context, user users.User) error
	LoadUser(ctx context.Context) (*users.User, error)
	DeleteUser(ctx context.Context) error
	SaveOrder(ctx context.Context, order orders.Order) error
}

type EventSource interface {
	EventID() string
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

// State is a read-only view of the controller for the presentation layer.
type State struct {
	Screen            Screen
	CheckoutRequested bool
	User              *users.User
}

func (s State) LoggedIn() bool {
	return s.User != nil
}

type Controller struct {
	cart    *cartapp.Store
	auth    AuthService
	orders  OrderService
	profile ProfileStore
	events  EventSource
	bus     EventBus

	mu                sync.Mutex
	screen            Screen
	checkoutRequested bool
	user              *users.User
}

func NewController(
	cart *cartapp.Store,
	auth AuthService,
	orderService OrderService,
	profile ProfileStore,
	events EventSource,
	bus EventBus,
) *Controller {
	return &Controller{
		cart:    cart,
		auth:    auth,
		orders:  orderService,
		profile: profile,
		events:  events,
		bus:     bus,
		screen:  ScreenBrowsing,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		Screen:            c.screen,
		CheckoutRequested: c.checkoutRequested,
	}
	if c.user != nil {
		u := *c.user
		state.User = &u
	}
	return state
}

// RestoreSession repopulates the session from durable storage on app start.
func (c *Controller) RestoreSession(ctx context.Context) error {
	user, err := c.profile.LoadUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		return nil
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()

	log.FromContext(ctx).WithField("email", user.Email).Info("Restored user session")
	return nil
}

// RequestCheckout records checkout intent. With an empty cart the shopper
// stays on the seat map. A signed-in shopper skips the prompt entirely.
func (c *Controller) RequestCheckout(ctx context.Context) (Screen, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a fresh flow after a completed order starts over
	if c.screen == ScreenConfirmation {
		c.screen = ScreenBrowsing
	}

	if c.cart.Count() == 0 {
		return c.screen, ErrEmptyCart
	}

	c.screen = ScreenCheckoutPrompt
	c.checkoutRequested = true
	c.advance()

	return c.screen, nil
}

// ContinueAsGuest closes the prompt and moves to the order form.
func (c *Controller) ContinueAsGuest(ctx context.Context) (Screen, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenCheckoutPrompt {
		return c.screen, ErrWrongScreen
	}

	c.screen = ScreenOrderForm
	c.checkoutRequested = false

	return c.screen, nil
}

// BeginSignIn swaps the checkout prompt for the login prompt. The checkout
// intent stays set so a successful login resumes the flow.
func (c *Controller) BeginSignIn(ctx context.Context) (Screen, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenCheckoutPrompt {
		return c.screen, ErrWrongScreen
	}

	c.screen = ScreenLoginPrompt

	return c.screen, nil
}

// Login authenticates against the gateway. On success the session is
// populated and persisted; with checkout intent pending the shopper lands on
// the order form, otherwise back on the seat map. Failure leaves all state
// untouched.
func (c *Controller) Login(ctx context.Context, email, password string) (Screen, error) {
	user, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return c.currentScreen(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = &user

	if err := c.profile.SaveUser(ctx, user); err != nil {
		log.FromContext(ctx).WithField("error", err).Warn("Failed to persist user session")
	}

	c.publish(ctx, users.UserLoggedIn{
		Header: domainevents.NewHeader(),
		Email:  user.Email,
	})

	// Checkout intent wins over the default go-home navigation, no matter
	// how the login and the intent interleaved.
	if c.checkoutRequested {
		c.screen = ScreenOrderForm
		c.checkoutRequested = false
	} else {
		c.screen = ScreenBrowsing
	}
	c.advance()

	return c.screen, nil
}

// Logout drops the session and the stored user and returns to the seat map.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.screen = ScreenBrowsing
	c.checkoutRequested = false

	if err := c.profile.DeleteUser(ctx); err != nil {
		return fmt.Errorf("failed to delete stored session: %w", err)
	}
	return nil
}

// SubmitOrder validates the contact details, submits the order and, only on
// success, persists it, clears the cart and moves to the confirmation
// screen. On failure the cart and the screen stay exactly as they were.
func (c *Controller) SubmitOrder(ctx context.Context, contact users.User) (orders.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen != ScreenOrderForm {
		return orders.Order{}, ErrWrongScreen
	}

	if err := validateContact(contact); err != nil {
		return orders.Order{}, err
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return orders.Order{}, ErrEmptyCart
	}

	req := orders.Request{
		EventID: c.events.EventID(),
		Tickets: make([]orders.Ticket, 0, len(items)),
		User:    contact,
	}
	for _, item := range items {
		req.Tickets = append(req.Tickets, orders.Ticket{
			TicketTypeID: item.TicketTypeID,
			SeatID:       item.SeatID,
		})
	}

	order, err := c.orders.PlaceOrder(ctx, req)
	if err != nil {
		return orders.Order{}, fmt.Errorf("failed to place order: %w", err)
	}

	if err := c.profile.SaveOrder(ctx, order); err != nil {
		log.FromContext(ctx).WithField("error", err).Warn("Failed to persist order")
	}

	c.cart.Clear(ctx)

	c.publish(ctx, orders.OrderPlaced{
		Header:        domainevents.NewHeader(),
		OrderID:       order.OrderID,
		CustomerEmail: order.User.Email,
		TotalAmount:   order.TotalAmount,
		TicketCount:   len(order.Tickets),
	})

	c.screen = ScreenConfirmation

	return order, nil
}

// advance applies the reactive invariant: an open checkout prompt and a
// signed-in session together short-circuit straight to the order form.
// Callers must hold c.mu.
func (c *Controller) advance() {
	if c.screen == ScreenCheckoutPrompt && c.user != nil {
		c.screen = ScreenOrderForm
		c.checkoutRequested = false
	}
}

func (c *Controller) currentScreen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

func (c *Controller) publish(ctx context.Context, event any) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, event); err != nil {
		log.FromContext(ctx).WithField("error", err).Warn("Failed to publish checkout event")
	}
}

func validateContact(contact users.User) error {
	var missing []string
	if contact.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if contact.LastName == "" {
		missing = append(missing, "lastName")
	}
	if contact.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return ValidationError{Fields: missing}
	}
	return nil
}
