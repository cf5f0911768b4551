package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lilianobi/audiophile/internal/domain"
	"github.com/Lilianobi/audiophile/internal/order"
)

type OrdersHandler struct {
	orders  *order.Service
	timeout time.Duration
}

func NewOrdersHandler(orders *order.Service, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		timeout: timeout,
	}
}

// PaymentDTO is the wire shape of the payment sub-object: the e-money
// fields appear only for the e-money method.
type PaymentDTO struct {
	Method       string `json:"method"`
	EMoneyNumber string `json:"eMoneyNumber,omitempty"`
	EMoneyPin    string `json:"eMoneyPin,omitempty"`
}

type OrderRequestDTO struct {
	Customer  domain.Customer     `json:"customer"`
	Shipping  domain.ShippingInfo `json:"shipping"`
	Payment   PaymentDTO          `json:"payment"`
	Items     []domain.CartItem   `json:"items"`
	Totals    domain.OrderTotals  `json:"totals"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"createdAt"`
}

type OrderResponseDTO struct {
	OrderID   string              `json:"orderId"`
	Customer  domain.Customer     `json:"customer"`
	Shipping  domain.ShippingInfo `json:"shipping"`
	Payment   PaymentDTO          `json:"payment"`
	Items     []domain.CartItem   `json:"items"`
	Totals    domain.OrderTotals  `json:"totals"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"createdAt"`
	UpdatedAt string              `json:"updatedAt,omitempty"`
}

type SubmitResponseDTO struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

func toDomainOrder(req OrderRequestDTO) domain.Order {
	payment := domain.Payment{Method: domain.PaymentMethod(req.Payment.Method)}
	if payment.Method == domain.PaymentEMoney {
		payment.EMoney = &domain.EMoneyDetails{
			Number: req.Payment.EMoneyNumber,
			PIN:    req.Payment.EMoneyPin,
		}
	}

	o := domain.Order{
		Customer:  req.Customer,
		Shipping:  req.Shipping,
		Payment:   payment,
		Items:     req.Items,
		Totals:    req.Totals,
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
	}
	if o.Status == "" {
		o.Status = string(domain.OrderStatusPending)
	}
	if o.CreatedAt == "" {
		o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return o
}

func toOrderResponse(o *domain.Order) OrderResponseDTO {
	payment := PaymentDTO{Method: string(o.Payment.Method)}
	if o.Payment.EMoney != nil {
		payment.EMoneyNumber = o.Payment.EMoney.Number
		payment.EMoneyPin = o.Payment.EMoney.PIN
	}

	items := o.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	return OrderResponseDTO{
		OrderID:   o.ID,
		Customer:  o.Customer,
		Shipping:  o.Shipping,
		Payment:   payment,
		Items:     items,
		Totals:    o.Totals,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// POST /api/orders
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req OrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	id, err := h.orders.Submit(ctx, toDomainOrder(req))
	if err != nil {
		if errors.Is(err, order.ErrMissingFields) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
			return
		}
		log.Printf("order creation error (request %s): %v", getRequestID(r.Context()), err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to create order"})
		return
	}

	respondJSON(w, http.StatusOK, SubmitResponseDTO{Success: true, OrderID: id})
}

// GET /api/orders/{order_id}
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "missing_order_id", "order_id is required")
		return
	}

	o, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		log.Printf("order lookup error (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}

	respondJSON(w, http.StatusOK, toOrderResponse(o))
}

// GET /api/orders?email=
func (h *OrdersHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		respondError(w, http.StatusBadRequest, "missing_email", "email is required")
		return
	}

	orders, err := h.orders.GetOrdersByEmail(ctx, email)
	if err != nil {
		log.Printf("order listing error (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load orders")
		return
	}

	dtos := make([]OrderResponseDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, toOrderResponse(&orders[i]))
	}

	respondJSON(w, http.StatusOK, dtos)
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status"`
}

// PATCH /api/orders/{order_id}/status
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.orders.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, "invalid_status", "status is required")
		case errors.Is(err, order.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "not_found", "order not found")
		default:
			log.Printf("status update error (request %s): %v", getRequestID(r.Context()), err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to update order")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ConfirmationDTO is the condensed confirmation view: the first line item,
// how many more there are, and the grand total.
type ConfirmationDTO struct {
	OrderID         string          `json:"orderId"`
	FirstItem       domain.CartItem `json:"firstItem"`
	OtherItemsCount int             `json:"otherItemsCount"`
	GrandTotal      int             `json:"grandTotal"`
	Status          string          `json:"status"`
}

// GET /api/confirmation?orderId=
func (h *OrdersHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orderID := r.URL.Query().Get("orderId")
	if orderID == "" {
		respondError(w, http.StatusNotFound, "no_order", "No order found")
		return
	}

	o, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "no_order", "No order found")
			return
		}
		log.Printf("confirmation lookup error (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}

	dto := ConfirmationDTO{
		OrderID:    o.ID,
		GrandTotal: o.Totals.GrandTotal,
		Status:     o.Status,
	}
	if len(o.Items) > 0 {
		dto.FirstItem = o.Items[0]
		dto.OtherItemsCount = len(o.Items) - 1
	}

	respondJSON(w, http.StatusOK, dto)
}
