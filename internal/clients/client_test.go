package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnrstore/retrostore-golang/internal/models"
)

func TestDoJSONDecodesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/productos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id_producto":1,"nombre":"Super Mario World (SNES)","precio":50000,"stock":3,"sku":"SNES-001"}]`))
	}))
	defer server.Close()

	products, err := NewInventoryClient(server.URL).ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Super Mario World (SNES)", products[0].Name)
	assert.Equal(t, 50000.0, products[0].Price)
}

func TestDoJSONClassifiesStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"resena ya existe"}`))
	}))
	defer server.Close()

	_, err := NewReviewsClient(server.URL).Create(models.ReviewInput{ProductID: 1, UserID: 2, Rating: 5})
	require.Error(t, err)

	ce, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindStatus, ce.Kind)
	assert.Equal(t, http.StatusConflict, ce.Status)
	assert.Equal(t, "resena ya existe", ce.Message)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
}

func TestDoJSONClassifiesNoResponse(t *testing.T) {
	// A server that is already gone never answers.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := server.URL
	server.Close()

	_, err := NewSalesClient(dead).ListPurchases(7)
	require.Error(t, err)
	assert.True(t, IsNoResponse(err))
	assert.Equal(t, 0, StatusCode(err))
}

func TestDoJSONClassifiesBadRequestConstruction(t *testing.T) {
	// A control character in the URL makes http.NewRequest fail before
	// anything goes over the wire.
	err := doJSON(http.MethodGet, "http://localhost:8082/\x7f", nil, nil)
	require.Error(t, err)

	ce, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindRequest, ce.Kind)
}

func TestSecurityQuestionEscapesEmail(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"question":"¿Nombre de tu primera mascota?"}`))
	}))
	defer server.Close()

	question, err := NewUsersClient(server.URL).SecurityQuestion("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "¿Nombre de tu primera mascota?", question)
	assert.Equal(t, "/usuarios/security-question/ana@example.com", gotPath)
}
