package checkout

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/core/cart"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// LineItem is one submitted sale position. The unit price is deliberately not
// part of the submission: authoritative pricing belongs to the sales backend,
// which prevents client-side price tampering.
type LineItem struct {
	ProductID int64
	Quantity  int
}

// Confirmation is the result of a successfully submitted sale.
type Confirmation struct {
	ID        int64
	Total     decimal.Decimal
	CreatedAt time.Time
}

// SalesAPI is the external sale submission collaborator.
type SalesAPI interface {
	SubmitSale(ctx context.Context, items []LineItem, notes string) (Confirmation, error)
}

// Orchestrator converts the current cart into a submitted sale and reconciles
// local state with the outcome. At most one checkout runs at a time; the gate
// lives here rather than in caller discipline so the component stays correct
// outside a UI context.
type Orchestrator struct {
	cart     *cart.Cart
	sales    SalesAPI
	log      *slog.Logger
	inFlight atomic.Bool
}

// Option is a functional option for configuring the orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used to record checkout attempts.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// New creates a checkout orchestrator over the given cart and sales collaborator.
func New(c *cart.Cart, sales SalesAPI, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cart:  c,
		sales: sales,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Checkout submits the cart's lines as a sale.
//
// An empty cart fails immediately with ErrEmptyCart before any network
// interaction. On success the cart is cleared and the confirmation returned.
// On failure the cart is left untouched and the collaborator's error is
// returned verbatim, so the caller can retry without losing the selection.
//
// A second Checkout while one is in flight returns ErrCheckoutInFlight.
// No deduplication of sequential attempts is performed here.
func (o *Orchestrator) Checkout(ctx context.Context, notes string) (Confirmation, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return Confirmation{}, ErrCheckoutInFlight
	}
	defer o.inFlight.Store(false)

	lines := o.cart.Lines()
	if len(lines) == 0 {
		return Confirmation{}, ErrEmptyCart
	}

	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, LineItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	attemptID := uuid.NewString()
	start := time.Now()

	confirmation, err := o.sales.SubmitSale(ctx, items, notes)
	if err != nil {
		o.log.ErrorContext(ctx, "sale submission failed",
			logger.Component("checkout"),
			logger.ID("attempt_id", attemptID),
			logger.Count("lines", len(items)),
			logger.Elapsed(start),
			logger.Error(err),
		)
		return Confirmation{}, err
	}

	o.cart.Clear()
	o.log.InfoContext(ctx, "sale submitted",
		logger.Component("checkout"),
		logger.ID("attempt_id", attemptID),
		logger.ID("sale_id", confirmation.ID),
		logger.Count("lines", len(items)),
		logger.Elapsed(start),
	)
	return confirmation, nil
}
