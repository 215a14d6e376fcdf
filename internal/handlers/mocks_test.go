package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

// The mocks below count calls so tests can assert that local validation
// short-circuits before any backend traffic.

type usersMock struct {
	loginCalls  int
	loginRaw    json.RawMessage
	loginErr    error
	question    string
	questionErr error
	answerErr   error
	answerHook  func() error
	resetCalls  int
	resetErr    error
	user        models.User
	userErr     error
}

func (m *usersMock) Login(email, password string) (json.RawMessage, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginRaw, nil
}

func (m *usersMock) Register(input models.RegisterInput) (models.User, error) {
	return models.User{ID: 99, Name: input.Name, Email: input.Email}, nil
}

func (m *usersMock) GetUser(id int64) (models.User, error) {
	if m.userErr != nil {
		return models.User{}, m.userErr
	}
	return m.user, nil
}

func (m *usersMock) SecurityQuestion(email string) (string, error) {
	if m.questionErr != nil {
		return "", m.questionErr
	}
	return m.question, nil
}

func (m *usersMock) VerifyAnswer(email, answer string) error {
	if m.answerHook != nil {
		return m.answerHook()
	}
	return m.answerErr
}

func (m *usersMock) ResetPassword(email, newPassword string) error {
	m.resetCalls++
	return m.resetErr
}

type inventoryMock struct {
	products []models.Product
	listErr  error
}

func (m *inventoryMock) ListProducts() ([]models.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.products, nil
}

func (m *inventoryMock) GetProduct(id int64) (models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, &clients.Error{Kind: clients.KindStatus, Status: http.StatusNotFound}
}

func (m *inventoryMock) CreateProduct(input models.ProductInput) (models.Product, error) {
	return models.Product{ID: 100, Name: input.Name, Price: input.Price, Stock: input.Stock, SKU: input.SKU}, nil
}

func (m *inventoryMock) UpdateProduct(id int64, input models.ProductInput) (models.Product, error) {
	return models.Product{ID: id, Name: input.Name, Price: input.Price, Stock: input.Stock, SKU: input.SKU}, nil
}

func (m *inventoryMock) DeleteProduct(id int64) error { return nil }

func (m *inventoryMock) ListCategories() ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Juegos"}}, nil
}

func (m *inventoryMock) ListConditions() ([]models.Condition, error) {
	return []models.Condition{{ID: 1, Name: "Usado"}}, nil
}

func (m *inventoryMock) ListPlatforms() ([]models.Platform, error) {
	return []models.Platform{{ID: 1, Name: "SNES"}}, nil
}

func (m *inventoryMock) ProductPhoto(id int64) ([]byte, string, error) {
	return []byte{0xFF, 0xD8}, "image/jpeg", nil
}

type salesMock struct {
	createCalls int
	createErr   error
	purchases   []models.Purchase
	listErr     error
}

func (m *salesMock) CreatePurchase(input models.PurchaseInput) (models.Purchase, error) {
	m.createCalls++
	if m.createErr != nil {
		return models.Purchase{}, m.createErr
	}
	return models.Purchase{ID: 42, UserID: input.UserID, Total: input.Total, Status: input.Status, Details: input.Details}, nil
}

func (m *salesMock) ListPurchases(userID int64) ([]models.Purchase, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.purchases, nil
}

type reviewsMock struct {
	byProduct  []models.Review
	byUser     []models.Review
	byUserErr  error
	createErr  error
	updateErr  error
	deleteErr  error
	contactErr error
}

func (m *reviewsMock) ListByProduct(productID int64) ([]models.Review, error) {
	return m.byProduct, nil
}

func (m *reviewsMock) ListByUser(userID int64) ([]models.Review, error) {
	if m.byUserErr != nil {
		return nil, m.byUserErr
	}
	return m.byUser, nil
}

func (m *reviewsMock) Create(input models.ReviewInput) (models.Review, error) {
	if m.createErr != nil {
		return models.Review{}, m.createErr
	}
	return models.Review{ID: 1, ProductID: input.ProductID, UserID: input.UserID, Text: input.Text, Rating: input.Rating}, nil
}

func (m *reviewsMock) Update(id int64, input models.ReviewInput) (models.Review, error) {
	if m.updateErr != nil {
		return models.Review{}, m.updateErr
	}
	return models.Review{ID: id, ProductID: input.ProductID, UserID: input.UserID, Text: input.Text, Rating: input.Rating}, nil
}

func (m *reviewsMock) Delete(id int64) error { return m.deleteErr }

func (m *reviewsMock) SendContact(msg models.ContactMessage) error { return m.contactErr }
