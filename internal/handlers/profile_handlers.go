package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
)

//
// --- Profile & Purchase History Handlers ---
//

// GetProfile is the handler for GET /profile. It fans out to the user,
// sales and reviews services and returns the three tab datasets in one
// response: account info, purchase history and the user's reviews.
func (h *Handlers) GetProfile(c *gin.Context) {
	// 1. --- Load the Session ---
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No hay usuario autenticado"})
		return
	}
	userID := sess.User.ID

	// 2. --- User Record ---
	user, err := h.Users.GetUser(userID)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}

	// 3. --- Purchase History ---
	purchases, err := h.Sales.ListPurchases(userID)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}

	// 4. --- Reviews Tab ---
	// A reviews outage should not blank the whole profile; the tab just
	// comes back empty with its own error note.
	reviews, reviewsErr := h.Reviews.ListByUser(userID)
	if reviews == nil {
		reviews = []models.Review{}
	}
	var reviewsMessage string
	if reviewsErr != nil {
		reviewsMessage = "No se pudieron cargar tus reseñas"
	}

	response := gin.H{
		"user":      user,
		"purchases": purchases,
		"reviews":   reviews,
	}
	if reviewsMessage != "" {
		response["reviewsError"] = reviewsMessage
	}
	c.JSON(http.StatusOK, response)
}

// respondProfileError keeps the profile page's status-specific messages.
func (h *Handlers) respondProfileError(c *gin.Context, err error) {
	if code := clients.StatusCode(err); code != 0 {
		switch {
		case code == http.StatusNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Datos no encontrados (404). Verifica el ID y los endpoints."})
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			c.JSON(code, gin.H{"error": "No autorizado al consultar el perfil (401/403)."})
		case code >= 500:
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error en el servidor del microservicio."})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("Error al cargar datos (%d)", code)})
		}
		return
	}
	if clients.IsNoResponse(err) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se recibió respuesta del microservicio. Intenta más tarde."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inesperado al preparar la petición: " + err.Error()})
}

// historyEntry is one purchase with its computed line subtotals.
type historyEntry struct {
	models.Purchase
	Items int `json:"items"`
}

// GetPurchaseHistory is the handler for GET /historial.
func (h *Handlers) GetPurchaseHistory(c *gin.Context) {
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No hay usuario autenticado"})
		return
	}

	purchases, err := h.Sales.ListPurchases(sess.User.ID)
	if err != nil {
		h.respondProfileError(c, err)
		return
	}

	entries := make([]historyEntry, 0, len(purchases))
	for _, p := range purchases {
		items := 0
		for i := range p.Details {
			p.Details[i].Subtotal = p.Details[i].UnitPrice * float64(p.Details[i].Quantity)
			items += p.Details[i].Quantity
		}
		entries = append(entries, historyEntry{Purchase: p, Items: items})
	}

	c.JSON(http.StatusOK, gin.H{
		"purchases": entries,
		"count":     len(entries),
	})
}
