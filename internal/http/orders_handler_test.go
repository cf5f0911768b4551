package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lilianobi/audiophile/internal/domain"
	"github.com/Lilianobi/audiophile/internal/order"
)

type stubRepository struct {
	orders  map[string]domain.Order
	nextID  string
	failure error
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		orders: make(map[string]domain.Order),
		nextID: "68b1c2d3e4f5a6b7c8d9e0f1",
	}
}

func (s *stubRepository) CreateOrder(ctx context.Context, o domain.Order) (string, error) {
	if s.failure != nil {
		return "", s.failure
	}
	o.ID = s.nextID
	s.orders[s.nextID] = o
	return s.nextID, nil
}

func (s *stubRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return &o, nil
}

func (s *stubRepository) GetOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	var result []domain.Order
	for _, o := range s.orders {
		if o.Customer.Email == email {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *stubRepository) UpdateStatus(ctx context.Context, id, status string) error {
	o, ok := s.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, id string) (*domain.Order, error) {
	return nil, order.ErrCacheMiss
}
func (noopCache) Set(ctx context.Context, id string, o *domain.Order) error { return nil }
func (noopCache) Delete(ctx context.Context, id string) error               { return nil }

func newOrdersHandler(repo *stubRepository) *OrdersHandler {
	return NewOrdersHandler(order.NewService(repo, noopCache{}, nil), 5*time.Second)
}

func validOrderRequest() OrderRequestDTO {
	return OrderRequestDTO{
		Customer: domain.Customer{
			Name:  "Alexei Ward",
			Email: "alexei@mail.com",
			Phone: "+1 202-555-0136",
		},
		Shipping: domain.ShippingInfo{
			Address: "1137 Williams Avenue",
			ZipCode: "10001",
			City:    "New York",
			Country: "United States",
		},
		Payment: PaymentDTO{Method: "cash"},
		Items: []domain.CartItem{
			{ID: "xx99-mark-two-headphones", Name: "XX99 Mark II Headphones", Price: 2999, Quantity: 1},
		},
		Totals: domain.OrderTotals{Subtotal: 2999, Shipping: 50, VAT: 600, GrandTotal: 3649},
	}
}

func TestOrdersHandler_Create(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	body, _ := json.Marshal(validOrderRequest())
	recorder := httptest.NewRecorder()

	handler.Create(recorder, httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response SubmitResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, repo.nextID, response.OrderID)

	stored := repo.orders[repo.nextID]
	assert.Equal(t, string(domain.OrderStatusPending), stored.Status)
	assert.Nil(t, stored.Payment.EMoney)
}

func TestOrdersHandler_Create_EMoneyPayment(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	req := validOrderRequest()
	req.Payment = PaymentDTO{Method: "e-money", EMoneyNumber: "238521993", EMoneyPin: "6891"}
	body, _ := json.Marshal(req)
	recorder := httptest.NewRecorder()

	handler.Create(recorder, httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)

	stored := repo.orders[repo.nextID]
	require.NotNil(t, stored.Payment.EMoney)
	assert.Equal(t, "238521993", stored.Payment.EMoney.Number)
}

func TestOrdersHandler_Create_MissingFields(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	req := validOrderRequest()
	req.Items = nil
	body, _ := json.Marshal(req)
	recorder := httptest.NewRecorder()

	handler.Create(recorder, httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Missing required fields", response.Error)
	assert.Empty(t, repo.orders)
}

func TestOrdersHandler_Create_RepositoryFailure(t *testing.T) {
	repo := newStubRepository()
	repo.failure = errors.New("mongo down")
	handler := newOrdersHandler(repo)

	body, _ := json.Marshal(validOrderRequest())
	recorder := httptest.NewRecorder()

	handler.Create(recorder, httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body)))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Failed to create order", response.Error)
}

func TestOrdersHandler_Get(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	id, err := repo.CreateOrder(context.Background(), toDomainOrder(validOrderRequest()))
	require.NoError(t, err)

	request := withURLParam(httptest.NewRequest("GET", "/api/orders/"+id, nil), "order_id", id)
	recorder := httptest.NewRecorder()

	handler.Get(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response OrderResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, id, response.OrderID)
	assert.Equal(t, "Alexei Ward", response.Customer.Name)
	assert.Equal(t, "cash", response.Payment.Method)
}

func TestOrdersHandler_Get_NotFound(t *testing.T) {
	handler := newOrdersHandler(newStubRepository())

	request := withURLParam(httptest.NewRequest("GET", "/api/orders/missing", nil), "order_id", "missing")
	recorder := httptest.NewRecorder()

	handler.Get(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestOrdersHandler_UpdateStatus(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	id, err := repo.CreateOrder(context.Background(), toDomainOrder(validOrderRequest()))
	require.NoError(t, err)

	body, _ := json.Marshal(UpdateStatusRequestDTO{Status: "shipped"})
	request := httptest.NewRequest("PATCH", "/api/orders/"+id+"/status", bytes.NewReader(body))
	request = withURLParam(request, "order_id", id)
	recorder := httptest.NewRecorder()

	handler.UpdateStatus(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "shipped", repo.orders[id].Status)
}

func TestOrdersHandler_UpdateStatus_Empty(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	id, err := repo.CreateOrder(context.Background(), toDomainOrder(validOrderRequest()))
	require.NoError(t, err)

	body, _ := json.Marshal(UpdateStatusRequestDTO{Status: ""})
	request := httptest.NewRequest("PATCH", "/api/orders/"+id+"/status", bytes.NewReader(body))
	request = withURLParam(request, "order_id", id)
	recorder := httptest.NewRecorder()

	handler.UpdateStatus(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestOrdersHandler_Confirmation(t *testing.T) {
	repo := newStubRepository()
	handler := newOrdersHandler(repo)

	req := validOrderRequest()
	req.Items = append(req.Items, domain.CartItem{ID: "zx9-speaker", Name: "ZX9 Speaker", Price: 4500, Quantity: 2})
	req.Totals = domain.OrderTotals{Subtotal: 11999, Shipping: 50, VAT: 2400, GrandTotal: 14449}
	id, err := repo.CreateOrder(context.Background(), toDomainOrder(req))
	require.NoError(t, err)

	request := httptest.NewRequest("GET", "/api/confirmation?orderId="+id, nil)
	recorder := httptest.NewRecorder()

	handler.Confirmation(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response ConfirmationDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, id, response.OrderID)
	assert.Equal(t, "xx99-mark-two-headphones", response.FirstItem.ID)
	assert.Equal(t, 1, response.OtherItemsCount)
	assert.Equal(t, 14449, response.GrandTotal)
}

func TestOrdersHandler_Confirmation_NoOrder(t *testing.T) {
	handler := newOrdersHandler(newStubRepository())

	for _, target := range []string{"/api/confirmation", "/api/confirmation?orderId=missing"} {
		recorder := httptest.NewRecorder()
		handler.Confirmation(recorder, httptest.NewRequest("GET", target, nil))

		require.Equal(t, http.StatusNotFound, recorder.Code, target)

		var response ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, "No order found", response.Error)
	}
}
