package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lilianobi/audiophile/internal/cart"
	"github.com/Lilianobi/audiophile/internal/catalog"
	"github.com/Lilianobi/audiophile/internal/domain"
)

type CartHandler struct {
	carts   *cart.Service
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewCartHandler(carts *cart.Service, c *catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: c,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items []domain.CartItem `json:"items"`
	Total int               `json:"total"`
	Count int               `json:"count"`
}

func cartResponse(items []domain.CartItem) CartResponseDTO {
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponseDTO{
		Items: items,
		Total: domain.CartTotal(items),
		Count: domain.CartCount(items),
	}
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	items, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// Price, name and image come from the catalog, never from the client.
	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	items, err := h.carts.AddToCart(ctx, sessionID, domain.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: req.Quantity,
		Image:    product.CartImage,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(items))
}

// PUT /api/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "missing_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	items, err := h.carts.UpdateQuantity(ctx, sessionID, productID, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

// DELETE /api/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	productID := chi.URLParam(r, "product_id")
	items, err := h.carts.RemoveFromCart(ctx, sessionID, productID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

// DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "missing_session", "missing cart session")
		return
	}

	if err := h.carts.ClearCart(ctx, sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
