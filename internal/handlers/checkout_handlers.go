package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/cart"
	"github.com/rnrstore/retrostore-golang/internal/checkout"
	"github.com/rnrstore/retrostore-golang/internal/clients"
)

//
// --- Checkout Handlers ---
//

// reviewLine is one row of the order summary table.
type reviewLine struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// ReviewCheckout is the handler for GET /checkout: the order summary the
// buyer confirms. An empty cart gets the empty-cart notice instead.
func (h *Handlers) ReviewCheckout(c *gin.Context) {
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	if sess.Cart.IsEmpty() {
		c.JSON(http.StatusOK, gin.H{
			"empty":   true,
			"message": "No hay productos en tu carrito.",
		})
		return
	}

	lines := make([]reviewLine, 0, len(sess.Cart))
	for _, item := range sess.Cart {
		lines = append(lines, reviewLine{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.Product.Price * float64(item.Quantity),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"empty":    false,
		"items":    lines,
		"subtotal": sess.Cart.Total(),
		"taxes":    0.0,
		"total":    sess.Cart.Total(),
	})
}

// SubmitCheckout is the handler for POST /checkout. It drives the
// checkout flow: local rejections first (no session, empty cart), then a
// single order-creation request; on success the cart is cleared and the
// client is pointed at the confirmation page.
func (h *Handlers) SubmitCheckout(c *gin.Context) {
	// 1. --- Load the Session ---
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Debes estar autenticado para realizar una compra",
			"redirect": "/login",
		})
		return
	}

	// 2. --- Run the Flow ---
	flow := checkout.NewFlow(sess.User.ID)
	purchase, err := flow.Submit(sess.Cart, h.Sales)
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	// 3. --- Clear the Cart ---
	_, _ = h.Sessions.UpdateCart(sess.ID, func(current cart.Cart) cart.Cart {
		return current.Clear()
	})

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Compra realizada con éxito",
		"purchase": purchase,
		"redirect": "/CheckoutSuccess",
	})
}

// respondCheckoutError maps every checkout failure to its user-facing
// message: local rejections, backend error statuses, unreachable backend,
// and requests that could not even be built.
func (h *Handlers) respondCheckoutError(c *gin.Context, err error) {
	switch {
	case err == checkout.ErrEmptyCart:
		c.JSON(http.StatusBadRequest, gin.H{
			"empty":   true,
			"message": "No hay productos en tu carrito.",
		})
	case err == checkout.ErrNotAuthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Debes estar autenticado para realizar una compra",
			"redirect": "/login",
		})
	case clients.StatusCode(err) != 0:
		ce := err.(*clients.Error)
		message := ce.Message
		if message == "" {
			message = "al procesar compra"
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": fmt.Sprintf("Error %d: %s", ce.Status, message),
		})
	case clients.IsNoResponse(err):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "No se recibió respuesta del microservicio. Intenta más tarde.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error: " + err.Error()})
	}
}

// CheckoutSuccess is the handler for GET /CheckoutSuccess, the
// confirmation page the client lands on after a purchase.
func (h *Handlers) CheckoutSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "¡Compra Exitosa!",
		"message": "Tu compra fue registrada y está pendiente de confirmación.",
	})
}
