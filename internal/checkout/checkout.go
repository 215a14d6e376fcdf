// Package checkout turns a cart into a purchase against the sales
// service. The flow is a small state machine: reviewing -> submitting ->
// succeeded | failed, where a failure leaves the flow retryable.
package checkout

import (
	"errors"

	"github.com/rnrstore/retrostore-golang/internal/cart"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

// State of one checkout flow.
type State string

const (
	StateReviewing  State = "reviewing"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrEmptyCart short-circuits before any network call: an empty cart
	// renders the empty-cart notice, it is not a terminal state.
	ErrEmptyCart = errors.New("el carrito está vacío")

	// ErrNotAuthenticated rejects the submission locally; the caller
	// redirects to login without touching the sales service.
	ErrNotAuthenticated = errors.New("debes estar autenticado para realizar una compra")

	// ErrNotReviewing means Submit was called while a submission was
	// already in flight or after one already succeeded.
	ErrNotReviewing = errors.New("checkout is not accepting a submission")
)

// Submitter is the one call the flow needs from the sales service.
type Submitter interface {
	CreatePurchase(input models.PurchaseInput) (models.Purchase, error)
}

// BuildPurchase maps a cart to the sales-service payload: one detail per
// line with the unit price and computed subtotal, the cart total, and the
// initial "pendiente" status.
func BuildPurchase(userID int64, c cart.Cart) models.PurchaseInput {
	details := make([]models.PurchaseDetail, 0, len(c))
	for _, item := range c {
		details = append(details, models.PurchaseDetail{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.Product.Price * float64(item.Quantity),
		})
	}
	return models.PurchaseInput{
		UserID:  userID,
		Details: details,
		Total:   c.Total(),
		Status:  models.PurchaseStatusPending,
	}
}

// Flow is one checkout attempt for one user.
type Flow struct {
	userID int64
	state  State
}

// NewFlow starts in the reviewing state.
func NewFlow(userID int64) *Flow {
	return &Flow{userID: userID, state: StateReviewing}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Submit runs the order-creation request. Local rejections (empty cart,
// missing authentication) never touch the network and leave the state
// unchanged. A backend failure moves to failed but stays retryable; a
// success is terminal.
func (f *Flow) Submit(c cart.Cart, sales Submitter) (models.Purchase, error) {
	if f.state != StateReviewing && f.state != StateFailed {
		return models.Purchase{}, ErrNotReviewing
	}
	if f.userID == 0 {
		return models.Purchase{}, ErrNotAuthenticated
	}
	if c.IsEmpty() {
		return models.Purchase{}, ErrEmptyCart
	}

	f.state = StateSubmitting
	purchase, err := sales.CreatePurchase(BuildPurchase(f.userID, c))
	if err != nil {
		f.state = StateFailed
		return models.Purchase{}, err
	}

	f.state = StateSucceeded
	return purchase, nil
}
