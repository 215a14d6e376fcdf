package clients

import (
	"fmt"
	"net/http"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

// SalesClient talks to the sales microservice, which persists purchases.
type SalesClient struct {
	BaseURL string
}

func NewSalesClient(baseURL string) *SalesClient {
	return &SalesClient{BaseURL: baseURL}
}

// CreatePurchase posts a new purchase. The payload carries the line items
// with their unit prices and subtotals plus the precomputed total; the
// initial status is always "pendiente".
func (c *SalesClient) CreatePurchase(input models.PurchaseInput) (models.Purchase, error) {
	var purchase models.Purchase
	err := doJSON(http.MethodPost, c.BaseURL+"/compras", input, &purchase)
	return purchase, err
}

// ListPurchases fetches the purchase history of one user.
func (c *SalesClient) ListPurchases(userID int64) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := doJSON(http.MethodGet, fmt.Sprintf("%s/compras/usuario/%d", c.BaseURL, userID), nil, &purchases)
	return purchases, err
}
