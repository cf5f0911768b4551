package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Lilianobi/audiophile/internal/cart"
	"github.com/Lilianobi/audiophile/internal/checkout"
	"github.com/Lilianobi/audiophile/internal/domain"
	"github.com/Lilianobi/audiophile/internal/order"
)

type CheckoutHandler struct {
	carts   *cart.Service
	orders  *order.Service
	timeout time.Duration
}

func NewCheckoutHandler(carts *cart.Service, orders *order.Service, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		carts:   carts,
		orders:  orders,
		timeout: timeout,
	}
}

// ValidationErrorDTO carries the per-field messages plus the first
// invalid field in validation order, for the client to focus.
type ValidationErrorDTO struct {
	Errors map[string]string `json:"errors"`
	Focus  string            `json:"focus"`
}

// POST /api/checkout
//
// Validates the form against the session cart, assembles and submits the
// order, and clears the cart on success.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	var form domain.CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if fieldErrors, focus := checkout.Validate(form); len(fieldErrors) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorDTO{
			Errors: fieldErrors,
			Focus:  focus,
		})
		return
	}

	items, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		log.Printf("cart load error (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}
	if len(items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		return
	}

	id, err := h.orders.Submit(ctx, checkout.Assemble(form, items, time.Now()))
	if err != nil {
		if errors.Is(err, order.ErrMissingFields) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
			return
		}
		log.Printf("checkout submit error (request %s): %v", getRequestID(r.Context()), err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create order"})
		return
	}

	// The order is already persisted; a stale cart is only a cosmetic
	// leftover, so do not fail the checkout over it.
	if err := h.carts.ClearCart(ctx, sessionID); err != nil {
		log.Printf("cart clear error after checkout (request %s): %v", getRequestID(r.Context()), err)
	}

	respondJSON(w, http.StatusOK, SubmitResponseDTO{Success: true, OrderID: id})
}
