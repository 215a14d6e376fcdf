package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/catalog"
	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

//
// --- Product Catalog Handlers (public) ---
//

// catalogEntry is a product plus its derived URL slug.
type catalogEntry struct {
	models.Product
	Slug string `json:"slug"`
}

// BrowseProducts is the handler for GET /products.
// Query parameters mirror the storefront controls: ?search= for the
// case-insensitive name filter, ?category= for the exact category match
// ("all" disables it), ?sort= for featured / price-asc / price-desc.
// The list is recomputed from the inventory service on every request.
func (h *Handlers) BrowseProducts(c *gin.Context) {
	// 1. --- Fetch the Source List ---
	products, err := h.Inventory.ListProducts()
	if err != nil {
		if clients.IsNoResponse(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se recibió respuesta del microservicio. Intenta más tarde."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los productos"})
		return
	}

	// 2. --- Derive the View ---
	filtered := catalog.Filter(products, c.Query("search"), c.Query("category"))
	sorted := catalog.Sort(filtered, c.DefaultQuery("sort", catalog.SortFeatured))

	entries := make([]catalogEntry, 0, len(sorted))
	for _, p := range sorted {
		entries = append(entries, catalogEntry{Product: p, Slug: catalog.Slug(p)})
	}

	c.JSON(http.StatusOK, gin.H{
		"products": entries,
		"count":    len(entries),
	})
}

// GetProduct is the handler for GET /products/:id.
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	product, err := h.Inventory.GetProduct(id)
	if err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar los productos"})
		return
	}

	c.JSON(http.StatusOK, catalogEntry{Product: product, Slug: catalog.Slug(product)})
}

// GetProductPhoto is the handler for GET /products/:id/photo. It streams
// the binary image straight through from the inventory service.
func (h *Handlers) GetProductPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	photo, contentType, err := h.Inventory.ProductPhoto(id)
	if err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Foto no encontrada"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo cargar la foto"})
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, photo)
}
