package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

//
// --- Inventory Handlers (Admin-Only) ---
//
// These proxy the admin inventory screen to the inventory service. The
// role gate runs server-side in middleware.AdminMiddleware; the old
// storefront only hid the screen client-side, which was a known gap.
//

// ListInventory is the handler for GET /inventory/products.
func (h *Handlers) ListInventory(c *gin.Context) {
	products, err := h.Inventory.ListProducts()
	if err != nil {
		h.respondInventoryError(c, err, "No se pudieron cargar los productos")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetInventoryOptions is the handler for GET /inventory/options: the
// three lookup lists the product form needs.
func (h *Handlers) GetInventoryOptions(c *gin.Context) {
	categories, err := h.Inventory.ListCategories()
	if err != nil {
		h.respondInventoryError(c, err, "Error al cargar categorías")
		return
	}
	conditions, err := h.Inventory.ListConditions()
	if err != nil {
		h.respondInventoryError(c, err, "Error al cargar estados")
		return
	}
	platforms, err := h.Inventory.ListPlatforms()
	if err != nil {
		h.respondInventoryError(c, err, "Error al cargar plataformas")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categorias":  categories,
		"estados":     conditions,
		"plataformas": platforms,
	})
}

// InventoryProductInput defines the JSON of the product form.
type InventoryProductInput struct {
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	CategoryID  int64   `json:"id_cat"`
	ConditionID int64   `json:"id_estado"`
	PlatformID  int64   `json:"id_plat"`
	Photo       string  `json:"foto"`
}

// validate mirrors the product form's checks before anything is proxied.
func (input *InventoryProductInput) validate() bool {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.SKU) == "" {
		return false
	}
	return input.Price > 0 && input.Stock >= 0
}

func (input *InventoryProductInput) toModel() models.ProductInput {
	out := models.ProductInput{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		SKU:         strings.TrimSpace(input.SKU),
		Photo:       input.Photo,
	}
	if input.CategoryID != 0 {
		out.Category = &models.Category{ID: input.CategoryID}
	}
	if input.ConditionID != 0 {
		out.Condition = &models.Condition{ID: input.ConditionID}
	}
	if input.PlatformID != 0 {
		out.Platform = &models.Platform{ID: input.PlatformID}
	}
	return out
}

// CreateInventoryProduct is the handler for POST /inventory/products.
func (h *Handlers) CreateInventoryProduct(c *gin.Context) {
	var input InventoryProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor completa todos los campos correctamente"})
		return
	}

	product, err := h.Inventory.CreateProduct(input.toModel())
	if err != nil {
		h.respondInventoryError(c, err, "Error al guardar el producto")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateInventoryProduct is the handler for PUT /inventory/products/:id.
func (h *Handlers) UpdateInventoryProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	var input InventoryProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !input.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor completa todos los campos correctamente"})
		return
	}

	product, err := h.Inventory.UpdateProduct(id, input.toModel())
	if err != nil {
		h.respondInventoryError(c, err, "Error al guardar el producto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteInventoryProduct is the handler for DELETE /inventory/products/:id.
func (h *Handlers) DeleteInventoryProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	if err := h.Inventory.DeleteProduct(id); err != nil {
		h.respondInventoryError(c, err, "Error al eliminar el producto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}

// respondInventoryError prefers the backend's own message when it sent
// one, falling back to the screen-specific text.
func (h *Handlers) respondInventoryError(c *gin.Context, err error, fallback string) {
	if ce, ok := err.(*clients.Error); ok && ce.Kind == clients.KindStatus {
		message := ce.Message
		if message == "" {
			message = fallback
		}
		status := ce.Status
		if status >= 500 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": message})
		return
	}
	if clients.IsNoResponse(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se recibió respuesta del microservicio. Intenta más tarde."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
