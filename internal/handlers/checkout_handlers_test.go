package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

func TestReviewCheckoutEmptyCart(t *testing.T) {
	app := newTestApp(t)
	bearer := app.loginAs(t, sessionUser(7, false))

	rec := app.do(t, http.MethodGet, "/checkout", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["empty"])
	assert.Equal(t, "No hay productos en tu carrito.", body["message"])
}

func TestReviewCheckoutSummary(t *testing.T) {
	app := newTestApp(t)
	app.inventory.products = []models.Product{
		{ID: 3, Name: "Super Metroid", Price: 10},
		{ID: 4, Name: "Chrono Trigger", Price: 20},
	}
	bearer := app.loginAs(t, sessionUser(7, false))

	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 3})
	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 3})
	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 4})

	rec := app.do(t, http.MethodGet, "/checkout", bearer, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["empty"])
	assert.Equal(t, 40.0, body["subtotal"])
	assert.Equal(t, 0.0, body["taxes"])
	assert.Equal(t, 40.0, body["total"])

	items := body["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, float64(2), first["quantity"])
	assert.Equal(t, 20.0, first["subtotal"])
}

func TestSubmitCheckoutEmptyCartSendsNothing(t *testing.T) {
	app := newTestApp(t)
	bearer := app.loginAs(t, sessionUser(7, false))

	rec := app.do(t, http.MethodPost, "/checkout", bearer, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, app.sales.createCalls, "empty cart must never reach the sales service")

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["empty"])
	assert.Equal(t, "No hay productos en tu carrito.", body["message"])
}

func TestSubmitCheckoutSuccessClearsCart(t *testing.T) {
	app := newTestApp(t)
	app.inventory.products = []models.Product{{ID: 3, Name: "Super Metroid", Price: 10}}
	bearer := app.loginAs(t, sessionUser(7, false))

	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 3})

	rec := app.do(t, http.MethodPost, "/checkout", bearer, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, app.sales.createCalls)

	body := decodeBody(t, rec)
	assert.Equal(t, "/CheckoutSuccess", body["redirect"])
	purchase := body["purchase"].(map[string]any)
	assert.Equal(t, "pendiente", purchase["estado"])
	assert.Equal(t, 10.0, purchase["total"])

	// The cart must be cleared after the purchase is registered.
	rec = app.do(t, http.MethodGet, "/cart", bearer, nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["totalItems"])
}

func TestSubmitCheckoutBackendErrorKeepsCart(t *testing.T) {
	app := newTestApp(t)
	app.inventory.products = []models.Product{{ID: 3, Name: "Super Metroid", Price: 10}}
	app.sales.createErr = &clients.Error{Kind: clients.KindStatus, Status: 500, Message: "sin stock"}
	bearer := app.loginAs(t, sessionUser(7, false))

	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 3})

	rec := app.do(t, http.MethodPost, "/checkout", bearer, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Error 500: sin stock", decodeBody(t, rec)["error"])

	// A failed purchase leaves the cart intact so the buyer can retry.
	rec = app.do(t, http.MethodGet, "/cart", bearer, nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["totalItems"])
}

func TestSubmitCheckoutUnreachableBackend(t *testing.T) {
	app := newTestApp(t)
	app.inventory.products = []models.Product{{ID: 3, Name: "Super Metroid", Price: 10}}
	app.sales.createErr = &clients.Error{Kind: clients.KindNoResponse}
	bearer := app.loginAs(t, sessionUser(7, false))

	app.do(t, http.MethodPost, "/cart/items", bearer, gin.H{"product_id": 3})

	rec := app.do(t, http.MethodPost, "/checkout", bearer, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "No se recibió respuesta del microservicio. Intenta más tarde.", decodeBody(t, rec)["error"])
}
