package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lilianobi/audiophile/internal/cart"
	"github.com/Lilianobi/audiophile/internal/domain"
	"github.com/Lilianobi/audiophile/internal/order"
)

func newCheckoutHandler(t *testing.T) (*CheckoutHandler, *memStore, *stubRepository) {
	t.Helper()
	store := newMemStore()
	repo := newStubRepository()
	carts := cart.NewService(store)
	orders := order.NewService(repo, noopCache{}, nil)
	return NewCheckoutHandler(carts, orders, 5*time.Second), store, repo
}

func validCheckoutForm() domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:          "Alexei Ward",
		Email:         "alexei@mail.com",
		Phone:         "+1 202-555-0136",
		Address:       "1137 Williams Avenue",
		ZipCode:       "10001",
		City:          "New York",
		Country:       "United States",
		PaymentMethod: domain.PaymentCash,
	}
}

func TestCheckoutHandler_Submit(t *testing.T) {
	handler, store, repo := newCheckoutHandler(t)
	store.carts["s1"] = []domain.CartItem{
		{ID: "xx99-mark-two-headphones", Name: "XX99 Mark II Headphones", Price: 2999, Quantity: 1},
	}

	body, _ := json.Marshal(validCheckoutForm())
	request := withSession(httptest.NewRequest("POST", "/api/checkout", bytes.NewReader(body)), "s1")
	recorder := httptest.NewRecorder()

	handler.Submit(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response SubmitResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, repo.nextID, response.OrderID)

	stored := repo.orders[repo.nextID]
	assert.Equal(t, 2999, stored.Totals.Subtotal)
	assert.Equal(t, 50, stored.Totals.Shipping)
	assert.Equal(t, 600, stored.Totals.VAT)
	assert.Equal(t, 3649, stored.Totals.GrandTotal)

	// The cart is cleared once the order is persisted.
	assert.Empty(t, store.carts["s1"])
}

func TestCheckoutHandler_Submit_ValidationErrors(t *testing.T) {
	handler, store, repo := newCheckoutHandler(t)
	store.carts["s1"] = []domain.CartItem{
		{ID: "zx9-speaker", Name: "ZX9 Speaker", Price: 4500, Quantity: 1},
	}

	form := validCheckoutForm()
	form.Email = "alexei@mail"
	form.ZipCode = "12"
	body, _ := json.Marshal(form)
	request := withSession(httptest.NewRequest("POST", "/api/checkout", bytes.NewReader(body)), "s1")
	recorder := httptest.NewRecorder()

	handler.Submit(recorder, request)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var response ValidationErrorDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Wrong format", response.Errors["email"])
	assert.Equal(t, "Wrong format", response.Errors["zipCode"])
	assert.Equal(t, "email", response.Focus)

	// Nothing persisted and the cart is untouched.
	assert.Empty(t, repo.orders)
	assert.Len(t, store.carts["s1"], 1)
}

func TestCheckoutHandler_Submit_EmptyCart(t *testing.T) {
	handler, _, repo := newCheckoutHandler(t)

	body, _ := json.Marshal(validCheckoutForm())
	request := withSession(httptest.NewRequest("POST", "/api/checkout", bytes.NewReader(body)), "s1")
	recorder := httptest.NewRecorder()

	handler.Submit(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, repo.orders)
}

func TestCheckoutHandler_Submit_EMoneyDetailsCarried(t *testing.T) {
	handler, store, repo := newCheckoutHandler(t)
	store.carts["s1"] = []domain.CartItem{
		{ID: "zx9-speaker", Name: "ZX9 Speaker", Price: 4500, Quantity: 1},
	}

	form := validCheckoutForm()
	form.PaymentMethod = domain.PaymentEMoney
	form.EMoneyNumber = "238521993"
	form.EMoneyPin = "6891"
	body, _ := json.Marshal(form)
	request := withSession(httptest.NewRequest("POST", "/api/checkout", bytes.NewReader(body)), "s1")
	recorder := httptest.NewRecorder()

	handler.Submit(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	stored := repo.orders[repo.nextID]
	require.NotNil(t, stored.Payment.EMoney)
	assert.Equal(t, "238521993", stored.Payment.EMoney.Number)
	assert.Equal(t, "6891", stored.Payment.EMoney.PIN)
}
