package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rnrstore/retrostore-golang/internal/auth"
	"github.com/rnrstore/retrostore-golang/internal/handlers"
	"github.com/rnrstore/retrostore-golang/internal/routes"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

// testApp bundles the router with its mocks and session store so each
// test can drive real HTTP requests end to end.
type testApp struct {
	router    *gin.Engine
	users     *usersMock
	inventory *inventoryMock
	sales     *salesMock
	reviews   *reviewsMock
	sessions  *session.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := &testApp{
		users:     &usersMock{},
		inventory: &inventoryMock{},
		sales:     &salesMock{},
		reviews:   &reviewsMock{},
		sessions:  session.NewStore(),
	}
	h := &handlers.Handlers{
		Users:     app.users,
		Inventory: app.inventory,
		Sales:     app.sales,
		Reviews:   app.reviews,
		Sessions:  app.sessions,
	}
	app.router = routes.SetupRouter(h, app.sessions, "http://localhost:5173")
	return app
}

// loginAs opens a session directly in the store and returns a Bearer
// token for it, skipping the user service.
func (a *testApp) loginAs(t *testing.T, user session.User) string {
	t.Helper()
	sess := a.sessions.Create(user)
	token, err := auth.GenerateToken(sess.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func (a *testApp) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// sessionUser builds a minimal normalized user for loginAs.
func sessionUser(id int64, admin bool) session.User {
	return session.User{ID: id, Name: "Tester", Email: "tester@example.com", Admin: admin}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
