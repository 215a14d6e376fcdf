package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/auth"
	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

//
// --- Auth Handlers (Login / Register / Logout) ---
//

var emailPattern = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[a-zA-Z]{2,}$`)

// LoginInput defines the JSON for the login form.
type LoginInput struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Login is the handler for POST /login.
// Field validation runs fully locally: an invalid form never reaches the
// user service, and each field gets its own message.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Validate Fields (local, per-field messages) ---
	fieldErrors := gin.H{}
	switch {
	case input.Email == "":
		fieldErrors["correo"] = "El correo es obligatorio"
	case !emailPattern.MatchString(input.Email):
		fieldErrors["correo"] = "Formato de correo inválido"
	}
	if input.Password == "" {
		fieldErrors["password"] = "La contraseña es obligatoria"
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	// 3. --- Call the User Service ---
	raw, err := h.Users.Login(input.Email, input.Password)
	if err != nil {
		if clients.StatusCode(err) == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Correo o contraseña incorrectos"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo conectar al servicio de usuarios"})
		return
	}

	// 4. --- Normalize the User (once, here, never again) ---
	user, err := session.UserFromLogin(raw)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Respuesta inesperada del servicio de usuarios"})
		return
	}

	// 5. --- Open the Session & Issue the Token ---
	sess := h.Sessions.Create(user)
	token, err := auth.GenerateToken(sess.ID)
	if err != nil {
		h.Sessions.Destroy(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la sesión"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// RegisterInput defines the JSON for the registration form. The security
// question/answer pair is optional.
type RegisterInput struct {
	Name             string `json:"nombre"`
	Email            string `json:"correo"`
	Username         string `json:"nombre_usu"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"cPassword"`
	Phone            string `json:"telefono"`
	BirthDate        string `json:"fec_nac"`
	AcceptedTerms    bool   `json:"termCond"`
	SecurityQuestion string `json:"pregunta_seguridad"`
	SecurityAnswer   string `json:"respuesta_seguridad"`
}

// validate runs every registration rule and returns one message per
// failed field. Lengths count characters, not bytes, so accented names
// at the limit are not rejected.
func (input *RegisterInput) validate() gin.H {
	fieldErrors := gin.H{}

	name := strings.TrimSpace(input.Name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 20 {
		fieldErrors["nombre"] = "Nombre debe contener 3 a 20 caracteres"
	}

	email := strings.TrimSpace(input.Email)
	switch {
	case !emailPattern.MatchString(email):
		fieldErrors["correo"] = "Correo debe tener un formato válido (usuario@dominio.com)"
	case utf8.RuneCountInString(email) > 100:
		fieldErrors["correo"] = "Correo NO debe ser mayor a 100 caracteres"
	}

	username := strings.TrimSpace(input.Username)
	if n := utf8.RuneCountInString(username); n < 4 || n > 20 {
		fieldErrors["nombre_usu"] = "Usuario debe contener 4 a 20 caracteres"
	}

	if utf8.RuneCountInString(input.Password) < 8 {
		fieldErrors["password"] = "La contraseña debe contener al menos 8 caracteres"
	}
	if input.ConfirmPassword != input.Password {
		fieldErrors["cPassword"] = "La contraseña ingresada no coincide"
	}

	if input.Phone != "" {
		if n := utf8.RuneCountInString(input.Phone); n < 8 || n > 12 {
			fieldErrors["telefono"] = "El teléfono debe tener entre 8 y 12 números"
		}
	}

	if input.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", input.BirthDate); err != nil {
			fieldErrors["fec_nac"] = "Fecha de nacimiento inválida"
		} else if age(birth, time.Now()) < 18 {
			fieldErrors["fec_nac"] = "Debes ser mayor de 18 años para registrarte"
		}
	}

	if !input.AcceptedTerms {
		fieldErrors["termCond"] = "Debe aceptar los términos y condiciones"
	}

	return fieldErrors
}

// age computes full years between birth and now.
func age(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

// Register is the handler for POST /signin.
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind JSON ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Validate Fields ---
	if fieldErrors := input.validate(); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	// 3. --- Forward to the User Service ---
	user, err := h.Users.Register(models.RegisterInput{
		Name:             strings.TrimSpace(input.Name),
		Email:            strings.TrimSpace(input.Email),
		Username:         strings.TrimSpace(input.Username),
		Password:         input.Password,
		Phone:            input.Phone,
		BirthDate:        input.BirthDate,
		SecurityQuestion: input.SecurityQuestion,
		SecurityAnswer:   input.SecurityAnswer,
	})
	if err != nil {
		if code := clients.StatusCode(err); code == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una cuenta con ese correo"})
			return
		} else if code != 0 {
			c.JSON(code, gin.H{"error": "No se pudo completar el registro"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo conectar al servicio de usuarios"})
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "¡Se ha registrado correctamente!",
		"user":    user,
	})
}

// Logout is the handler for POST /logout. It tears down the server-side
// session; the client discards its token.
func (h *Handlers) Logout(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	h.Sessions.Destroy(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}
