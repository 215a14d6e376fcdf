package clients

import (
	"fmt"
	"net/http"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

// InventoryClient talks to the inventory microservice, which owns every
// product, category, condition and platform record.
type InventoryClient struct {
	BaseURL string
}

func NewInventoryClient(baseURL string) *InventoryClient {
	return &InventoryClient{BaseURL: baseURL}
}

// ListProducts fetches the full product list.
func (c *InventoryClient) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := doJSON(http.MethodGet, c.BaseURL+"/productos", nil, &products)
	return products, err
}

// GetProduct fetches one product by id.
func (c *InventoryClient) GetProduct(id int64) (models.Product, error) {
	var product models.Product
	err := doJSON(http.MethodGet, fmt.Sprintf("%s/productos/%d", c.BaseURL, id), nil, &product)
	return product, err
}

// CreateProduct adds a product to the inventory.
func (c *InventoryClient) CreateProduct(input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := doJSON(http.MethodPost, c.BaseURL+"/productos", input, &product)
	return product, err
}

// UpdateProduct replaces a product record.
func (c *InventoryClient) UpdateProduct(id int64, input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := doJSON(http.MethodPut, fmt.Sprintf("%s/productos/%d", c.BaseURL, id), input, &product)
	return product, err
}

// DeleteProduct removes a product from the inventory.
func (c *InventoryClient) DeleteProduct(id int64) error {
	return doJSON(http.MethodDelete, fmt.Sprintf("%s/productos/%d", c.BaseURL, id), nil, nil)
}

// ListCategories fetches the category lookup list.
func (c *InventoryClient) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := doJSON(http.MethodGet, c.BaseURL+"/categorias", nil, &categories)
	return categories, err
}

// ListConditions fetches the condition ("estados") lookup list.
func (c *InventoryClient) ListConditions() ([]models.Condition, error) {
	var conditions []models.Condition
	err := doJSON(http.MethodGet, c.BaseURL+"/estados", nil, &conditions)
	return conditions, err
}

// ListPlatforms fetches the platform lookup list.
func (c *InventoryClient) ListPlatforms() ([]models.Platform, error) {
	var platforms []models.Platform
	err := doJSON(http.MethodGet, c.BaseURL+"/plataformas", nil, &platforms)
	return platforms, err
}

// ProductPhoto fetches the binary photo for a product, returning the bytes
// and their content type.
func (c *InventoryClient) ProductPhoto(id int64) ([]byte, string, error) {
	return getBinary(fmt.Sprintf("%s/productos/%d/foto", c.BaseURL, id))
}
