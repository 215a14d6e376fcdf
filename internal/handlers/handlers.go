package handlers

import (
	"encoding/json"

	"github.com/rnrstore/retrostore-golang/internal/models"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

// UserService is the slice of the user/auth microservice the handlers use.
type UserService interface {
	Login(email, password string) (json.RawMessage, error)
	Register(input models.RegisterInput) (models.User, error)
	GetUser(id int64) (models.User, error)
	SecurityQuestion(email string) (string, error)
	VerifyAnswer(email, answer string) error
	ResetPassword(email, newPassword string) error
}

// InventoryService is the slice of the inventory microservice the
// handlers use.
type InventoryService interface {
	ListProducts() ([]models.Product, error)
	GetProduct(id int64) (models.Product, error)
	CreateProduct(input models.ProductInput) (models.Product, error)
	UpdateProduct(id int64, input models.ProductInput) (models.Product, error)
	DeleteProduct(id int64) error
	ListCategories() ([]models.Category, error)
	ListConditions() ([]models.Condition, error)
	ListPlatforms() ([]models.Platform, error)
	ProductPhoto(id int64) ([]byte, string, error)
}

// SalesService is the slice of the sales microservice the handlers use.
type SalesService interface {
	CreatePurchase(input models.PurchaseInput) (models.Purchase, error)
	ListPurchases(userID int64) ([]models.Purchase, error)
}

// ReviewsService is the slice of the reviews microservice the handlers
// use. The contact mailbox lives behind the same service.
type ReviewsService interface {
	ListByProduct(productID int64) ([]models.Review, error)
	ListByUser(userID int64) ([]models.Review, error)
	Create(input models.ReviewInput) (models.Review, error)
	Update(id int64, input models.ReviewInput) (models.Review, error)
	Delete(id int64) error
	SendContact(msg models.ContactMessage) error
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Users     UserService
	Inventory InventoryService
	Sales     SalesService
	Reviews   ReviewsService
	Sessions  *session.Store
}
