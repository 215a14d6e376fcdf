package clients

import (
	"fmt"
	"net/http"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

// ReviewsClient talks to the reviews microservice. The contact mailbox
// also lives behind this service.
type ReviewsClient struct {
	BaseURL string
}

func NewReviewsClient(baseURL string) *ReviewsClient {
	return &ReviewsClient{BaseURL: baseURL}
}

// ListByProduct fetches every review for one product.
func (c *ReviewsClient) ListByProduct(productID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := doJSON(http.MethodGet, fmt.Sprintf("%s/resenas/producto/%d", c.BaseURL, productID), nil, &reviews)
	return reviews, err
}

// ListByUser fetches every review written by one user.
func (c *ReviewsClient) ListByUser(userID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := doJSON(http.MethodGet, fmt.Sprintf("%s/resenas/usuario/%d", c.BaseURL, userID), nil, &reviews)
	return reviews, err
}

// Create posts a new review. The backend allows one review per
// (product, user) pair and answers 409 for a duplicate.
func (c *ReviewsClient) Create(input models.ReviewInput) (models.Review, error) {
	var review models.Review
	err := doJSON(http.MethodPost, c.BaseURL+"/resenas", input, &review)
	return review, err
}

// Update replaces the text and rating of an existing review.
func (c *ReviewsClient) Update(id int64, input models.ReviewInput) (models.Review, error) {
	var review models.Review
	err := doJSON(http.MethodPut, fmt.Sprintf("%s/resenas/%d", c.BaseURL, id), input, &review)
	return review, err
}

// Delete removes a review.
func (c *ReviewsClient) Delete(id int64) error {
	return doJSON(http.MethodDelete, fmt.Sprintf("%s/resenas/%d", c.BaseURL, id), nil, nil)
}

// SendContact delivers a contact-form message.
func (c *ReviewsClient) SendContact(msg models.ContactMessage) error {
	return doJSON(http.MethodPost, c.BaseURL+"/contactos", msg, nil)
}
