package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrstore/retrostore-golang/internal/clients"
)

// beginRecovery drives step 1 and returns the wizard token.
func beginRecovery(t *testing.T, app *testApp) string {
	t.Helper()
	app.users.question = "¿Nombre de tu primera mascota?"

	rec := app.do(t, http.MethodPost, "/forgot-password/question", "", gin.H{"correo": "ana@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	return body["token"].(string)
}

func TestRecoveryQuestionStartsWizard(t *testing.T) {
	app := newTestApp(t)
	app.users.question = "¿Nombre de tu primera mascota?"

	rec := app.do(t, http.MethodPost, "/forgot-password/question", "", gin.H{"correo": "ana@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "question", body["step"])
	assert.Equal(t, "¿Nombre de tu primera mascota?", body["question"])
	assert.NotEmpty(t, body["token"])
}

func TestRecoveryQuestionUnknownUser(t *testing.T) {
	app := newTestApp(t)
	app.users.questionErr = &clients.Error{Kind: clients.KindStatus, Status: http.StatusNotFound}

	rec := app.do(t, http.MethodPost, "/forgot-password/question", "", gin.H{"correo": "nadie@example.com"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Usuario no encontrado o no tiene pregunta de seguridad configurada.", body["error"])
	assert.NotContains(t, body, "token", "no wizard should be opened for a failed lookup")
}

func TestRecoveryAnswerDoesNotBlockOtherSessions(t *testing.T) {
	app := newTestApp(t)
	token := beginRecovery(t, app)
	bearer := app.loginAs(t, sessionUser(7, false))

	started := make(chan struct{})
	release := make(chan struct{})
	app.users.answerHook = func() error {
		close(started)
		<-release
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "perro"})
	}()

	// While the answer verification is stuck on the user service, an
	// unrelated session's cart must still be readable.
	<-started
	rec := app.do(t, http.MethodGet, "/cart", bearer, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	close(release)
	<-done

	// The stalled verification still completed normally.
	rec = app.do(t, http.MethodPut, "/forgot-password/reset", "", gin.H{
		"token": token, "newPassword": "nueva1234", "confirmPassword": "nueva1234",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoveryWrongAnswerStaysOnQuestion(t *testing.T) {
	app := newTestApp(t)
	token := beginRecovery(t, app)
	app.users.answerErr = &clients.Error{Kind: clients.KindStatus, Status: http.StatusUnauthorized}

	rec := app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "gato"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Respuesta incorrecta.", body["error"])
	assert.Equal(t, "question", body["step"])

	// The wizard must still accept a corrected answer.
	app.users.answerErr = nil
	rec = app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "perro"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reset", decodeBody(t, rec)["step"])
}

func TestRecoveryAnswerOutOfOrder(t *testing.T) {
	app := newTestApp(t)
	token := app.sessions.BeginRecovery()

	// The wizard is still on the email step, so answering must fail.
	rec := app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "gato"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecoveryBackClearsQuestion(t *testing.T) {
	app := newTestApp(t)
	token := beginRecovery(t, app)

	rec := app.do(t, http.MethodPost, "/forgot-password/back", "", gin.H{"token": token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "email", decodeBody(t, rec)["step"])

	// Back from the email step is not a thing.
	rec = app.do(t, http.MethodPost, "/forgot-password/back", "", gin.H{"token": token})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecoveryResetValidatesLocally(t *testing.T) {
	app := newTestApp(t)
	token := beginRecovery(t, app)

	rec := app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "perro"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/forgot-password/reset", "", gin.H{
		"token": token, "newPassword": "12345678", "confirmPassword": "distinta",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Las contraseñas no coinciden.", decodeBody(t, rec)["error"])
	assert.Equal(t, 0, app.users.resetCalls, "local validation must not reach the user service")

	rec = app.do(t, http.MethodPut, "/forgot-password/reset", "", gin.H{
		"token": token, "newPassword": "corta", "confirmPassword": "corta",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres.", decodeBody(t, rec)["error"])
	assert.Equal(t, 0, app.users.resetCalls)
}

func TestRecoveryResetSuccessDiscardsWizard(t *testing.T) {
	app := newTestApp(t)
	token := beginRecovery(t, app)

	rec := app.do(t, http.MethodPost, "/forgot-password/answer", "", gin.H{"token": token, "answer": "perro"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodPut, "/forgot-password/reset", "", gin.H{
		"token": token, "newPassword": "nueva1234", "confirmPassword": "nueva1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, app.users.resetCalls)

	body := decodeBody(t, rec)
	assert.Equal(t, "Contraseña restablecida exitosamente.", body["message"])
	assert.Equal(t, "/login", body["redirect"])

	// The token is single-use.
	rec = app.do(t, http.MethodPut, "/forgot-password/reset", "", gin.H{
		"token": token, "newPassword": "nueva1234", "confirmPassword": "nueva1234",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
