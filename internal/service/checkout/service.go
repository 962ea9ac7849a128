package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
)

// ErrCheckoutInFlight is returned when a session retries checkout while a
// previous submission is still running, guarding against duplicate orders
// from repeated clicks.
var ErrCheckoutInFlight = errors.New("checkout already in progress")

// SubmissionError wraps a failed order submission. The cart is left
// untouched so the shopper can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Service drives the checkout flow: compose an order from the session cart,
// submit it, render the WhatsApp summary, and clear the cart on success.
type Service struct {
	carts    cartrepo.Repository
	orders   orderRepo
	settings settingsProvider
	logger   *log.Logger

	inflight sync.Map
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
}

type settingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

func New(carts cartrepo.Repository, orders orderRepo, settings settingsProvider, logger *log.Logger) *Service {
	return &Service{carts: carts, orders: orders, settings: settings, logger: logger}
}

// Result is the successful checkout outcome.
type Result struct {
	Order       *domain.Order `json:"order"`
	Summary     string        `json:"summary"`
	WhatsAppURL string        `json:"whatsappUrl"`
}

// Checkout validates the session's cart and contact fields, submits the
// order, and on success clears the cart and returns the summary text plus
// the pre-filled WhatsApp link. On any error before submission succeeds the
// cart is preserved for retry.
func (s *Service) Checkout(ctx context.Context, sessionID, customerName, customerPhone string) (*Result, error) {
	if _, busy := s.inflight.LoadOrStore(sessionID, struct{}{}); busy {
		return nil, ErrCheckoutInFlight
	}
	defer s.inflight.Delete(sessionID)

	ledger, err := cart.NewLedger(ctx, cartrepo.ForSession(s.carts, sessionID))
	if err != nil {
		return nil, err
	}

	st, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Printf("settings unavailable, using defaults: %v", err)
		defaults := domain.DefaultSettings()
		st = &defaults
	}

	order, err := checkout.Compose(ledger.Items(), customerName, customerPhone, st.DeliveryChargeCents)
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, *order)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	summary := s.renderSummary(*created, st)
	link := checkout.MessageLink(st.WhatsAppNumber, summary)

	if err := ledger.Clear(ctx); err != nil {
		// The order is already placed; a stale cart is recoverable.
		s.logger.Printf("clear cart for session %s: %v", sessionID, err)
	}

	return &Result{Order: created, Summary: summary, WhatsAppURL: link}, nil
}

func (s *Service) renderSummary(order domain.Order, st *domain.Settings) string {
	if st.OrderMessageTemplate != "" {
		return checkout.RenderTemplate(st.OrderMessageTemplate, order, order.OrderNumber, st.CurrencySymbol)
	}
	return checkout.FormatSummary(order, order.OrderNumber, st.CurrencySymbol)
}
