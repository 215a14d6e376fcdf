package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/cart"
	"github.com/rnrstore/retrostore-golang/internal/clients"
)

//
// --- Cart Handlers (session-scoped) ---
//

// cartResponse is the shape every cart endpoint answers with: the items,
// the badge count and the running total.
func cartResponse(c cart.Cart) gin.H {
	items := c
	if items == nil {
		items = cart.Cart{}
	}
	return gin.H{
		"items":      items,
		"totalItems": c.ItemCount(),
		"total":      c.Total(),
	}
}

// GetCart is the handler for GET /cart.
func (h *Handlers) GetCart(c *gin.Context) {
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(sess.Cart))
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// AddToCart is the handler for POST /cart/items.
// The product summary stored in the cart comes from the inventory
// service, never from the client, so prices cannot be tampered with.
func (h *Handlers) AddToCart(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Fetch the Product ---
	product, err := h.Inventory.GetProduct(input.ProductID)
	if err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los productos"})
		return
	}

	// 3. --- Merge into the Session Cart ---
	entry := cart.Product{
		ID:    product.ID,
		Title: product.Name,
		Price: product.Price,
		Image: product.Photo,
	}
	updated, err := h.Sessions.UpdateCart(c.GetString("sessionID"), func(current cart.Cart) cart.Cart {
		return current.Add(entry)
	})
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	c.JSON(http.StatusCreated, cartResponse(updated))
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem is the handler for PUT /cart/items/:product_id.
// Quantities below 1 are rejected; removal has its own endpoint.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	// 1. --- Parse IDs & Input ---
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La cantidad debe ser al menos 1"})
		return
	}

	// 2. --- Replace the Quantity ---
	updated, err := h.Sessions.UpdateCart(c.GetString("sessionID"), func(current cart.Cart) cart.Cart {
		return current.UpdateQuantity(productID, input.Quantity)
	})
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(updated))
}

// RemoveCartItem is the handler for DELETE /cart/items/:product_id.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	updated, err := h.Sessions.UpdateCart(c.GetString("sessionID"), func(current cart.Cart) cart.Cart {
		return current.Remove(productID)
	})
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(updated))
}
