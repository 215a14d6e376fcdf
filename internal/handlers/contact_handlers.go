package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

//
// --- Contact Handler ---
//

// ContactInput defines the JSON of the contact form.
type ContactInput struct {
	Name    string `json:"nombre"`
	Email   string `json:"correo"`
	Message string `json:"mensaje"`
}

// SendContact is the handler for POST /contact. Validation runs locally
// with one message per field before the message is forwarded.
func (h *Handlers) SendContact(c *gin.Context) {
	// 1. --- Bind JSON ---
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Validate Fields ---
	fieldErrors := gin.H{}
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" {
		fieldErrors["nombre"] = "El nombre es obligatorio"
	}
	if email == "" || !emailPattern.MatchString(email) {
		fieldErrors["correo"] = "Correo debe tener un formato válido (usuario@dominio.com)"
	}
	if utf8.RuneCountInString(message) < 10 {
		fieldErrors["mensaje"] = "El mensaje debe tener al menos 10 caracteres"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	// 3. --- Forward ---
	err := h.Reviews.SendContact(models.ContactMessage{Name: name, Email: email, Message: message})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo enviar el mensaje. Intenta más tarde."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "¡Mensaje enviado! Te contactaremos pronto."})
}
