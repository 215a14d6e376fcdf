package clients

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

// UsersClient talks to the user/auth microservice.
type UsersClient struct {
	BaseURL string
}

func NewUsersClient(baseURL string) *UsersClient {
	return &UsersClient{BaseURL: baseURL}
}

type loginPayload struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Login posts the credentials and returns the raw user record exactly as
// the backend sent it. Older deployments of the user service return the id
// and role in several shapes, so normalization happens in one place
// (session.UserFromLogin), not here.
func (c *UsersClient) Login(email, password string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := doJSON(http.MethodPost, c.BaseURL+"/usuarios/login", loginPayload{Email: email, Password: password}, &raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Register creates a new account.
func (c *UsersClient) Register(input models.RegisterInput) (models.User, error) {
	var user models.User
	err := doJSON(http.MethodPost, c.BaseURL+"/usuarios", input, &user)
	return user, err
}

// GetUser fetches one user record by id.
func (c *UsersClient) GetUser(id int64) (models.User, error) {
	var user models.User
	err := doJSON(http.MethodGet, fmt.Sprintf("%s/usuarios/%d", c.BaseURL, id), nil, &user)
	return user, err
}

type securityQuestionResponse struct {
	Question string `json:"question"`
}

// SecurityQuestion fetches the configured security question for an email.
// A 404 means the user does not exist or never configured one.
func (c *UsersClient) SecurityQuestion(email string) (string, error) {
	var resp securityQuestionResponse
	err := doJSON(http.MethodGet, c.BaseURL+"/usuarios/security-question/"+url.PathEscape(email), nil, &resp)
	if err != nil {
		return "", err
	}
	return resp.Question, nil
}

type verifyAnswerPayload struct {
	Email  string `json:"correo"`
	Answer string `json:"answer"`
}

// VerifyAnswer checks the security answer. A 401 means the answer is wrong.
func (c *UsersClient) VerifyAnswer(email, answer string) error {
	return doJSON(http.MethodPost, c.BaseURL+"/usuarios/verify-answer", verifyAnswerPayload{Email: email, Answer: answer}, nil)
}

type resetPasswordPayload struct {
	Email       string `json:"correo"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword replaces the password of a verified account.
func (c *UsersClient) ResetPassword(email, newPassword string) error {
	return doJSON(http.MethodPut, c.BaseURL+"/usuarios/reset-password", resetPasswordPayload{Email: email, NewPassword: newPassword}, nil)
}
