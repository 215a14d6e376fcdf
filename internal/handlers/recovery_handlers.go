package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/recovery"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

//
// --- Password Recovery Handlers (three-step wizard) ---
//
// The wizard state lives server-side, keyed by an opaque token the client
// carries between steps. Steps are strictly ordered; the only backward
// move is from the question step to the email step.
//

// RecoveryQuestionInput defines the JSON for step 1.
type RecoveryQuestionInput struct {
	Token string `json:"token"`
	Email string `json:"correo"`
}

// RecoveryQuestion is the handler for POST /forgot-password/question.
// Without a token it opens a fresh wizard; the success response carries
// the token the client must keep for the following steps.
func (h *Handlers) RecoveryQuestion(c *gin.Context) {
	// 1. --- Bind & Validate ---
	var input RecoveryQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Email == "" || !emailPattern.MatchString(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de correo inválido"})
		return
	}

	// 2. --- Fetch the Security Question ---
	// The wizard is only allocated once this succeeds, so failed
	// attempts leave nothing behind in the store.
	question, err := h.Users.SecurityQuestion(input.Email)
	if err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Usuario no encontrado o no tiene pregunta de seguridad configurada.",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Error al obtener la pregunta de seguridad.",
		})
		return
	}

	// 3. --- Open (or Resume) the Wizard & Advance ---
	token := input.Token
	if token == "" {
		token = h.Sessions.BeginRecovery()
	}
	err = h.Sessions.WithRecovery(token, func(w *recovery.Wizard) error {
		return w.AdvanceToQuestion(input.Email, question)
	})
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"step":     recovery.StepQuestion,
		"question": question,
	})
}

// RecoveryAnswerInput defines the JSON for step 2.
type RecoveryAnswerInput struct {
	Token  string `json:"token" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

// RecoveryAnswer is the handler for POST /forgot-password/answer.
// A wrong answer (401 from the user service) keeps the wizard on the
// question step; any other backend failure yields a generic error.
func (h *Handlers) RecoveryAnswer(c *gin.Context) {
	// 1. --- Bind & Validate ---
	var input RecoveryAnswerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Snapshot the Wizard State ---
	w, err := h.Sessions.ViewRecovery(input.Token)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	if w.Step != recovery.StepQuestion {
		h.respondWizardError(c, recovery.ErrWrongStep)
		return
	}

	// 3. --- Verify Against the User Service (no store lock held) ---
	if err := h.Users.VerifyAnswer(w.Email, input.Answer); err != nil {
		if clients.StatusCode(err) == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Respuesta incorrecta.", "step": recovery.StepQuestion})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al verificar la respuesta.", "step": recovery.StepQuestion})
		return
	}

	// 4. --- Advance ---
	err = h.Sessions.WithRecovery(input.Token, func(w *recovery.Wizard) error {
		return w.AdvanceToReset()
	})
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": recovery.StepReset})
}

// RecoveryBackInput defines the JSON for the explicit back transition.
type RecoveryBackInput struct {
	Token string `json:"token" binding:"required"`
}

// RecoveryBack is the handler for POST /forgot-password/back: the one
// allowed backward move, question -> email.
func (h *Handlers) RecoveryBack(c *gin.Context) {
	var input RecoveryBackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.Sessions.WithRecovery(input.Token, func(w *recovery.Wizard) error {
		return w.Back()
	})
	if err != nil {
		h.respondWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"step": recovery.StepEmail})
}

// RecoveryResetInput defines the JSON for step 3.
type RecoveryResetInput struct {
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// RecoveryReset is the handler for PUT /forgot-password/reset. The local
// checks (match + minimum length) run before the reset request leaves the
// building; on success the wizard is discarded and the client goes back
// to the login page.
func (h *Handlers) RecoveryReset(c *gin.Context) {
	// 1. --- Bind ---
	var input RecoveryResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Snapshot & Validate Locally ---
	w, err := h.Sessions.ViewRecovery(input.Token)
	if err != nil {
		h.respondWizardError(c, err)
		return
	}
	if err := w.ValidateNewPassword(input.NewPassword, input.ConfirmPassword); err != nil {
		switch err {
		case recovery.ErrPasswordMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Las contraseñas no coinciden."})
		case recovery.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "La contraseña debe tener al menos 8 caracteres."})
		default:
			h.respondWizardError(c, err)
		}
		return
	}

	// 3. --- Reset Against the User Service (no store lock held) ---
	if err := h.Users.ResetPassword(w.Email, input.NewPassword); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al restablecer la contraseña."})
		return
	}

	// 4. --- Done: Discard the Wizard ---
	h.Sessions.EndRecovery(input.Token)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Contraseña restablecida exitosamente.",
		"redirect": "/login",
	})
}

// respondWizardError maps wizard bookkeeping failures (unknown token,
// out-of-order step) to client errors.
func (h *Handlers) respondWizardError(c *gin.Context, err error) {
	switch err {
	case session.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "El proceso de recuperación no existe o expiró"})
	case recovery.ErrWrongStep:
		c.JSON(http.StatusConflict, gin.H{"error": "Paso de recuperación fuera de orden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error: " + err.Error()})
	}
}
