package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/clients"
	"github.com/rnrstore/retrostore-golang/internal/models"
	"github.com/rnrstore/retrostore-golang/internal/reviews"
)

//
// --- Review Handlers (the profile's review editor) ---
//

// GetProductReviews is the handler for GET /products/:id/reviews.
// Besides the review list it reports which editor mode applies to the
// current user: "view" when their review exists, "create" otherwise.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	// 1. --- Parse the Product ID ---
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	// 2. --- Fetch the Reviews ---
	productReviews, err := h.Reviews.ListByProduct(productID)
	if err != nil {
		if clients.IsNoResponse(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "No se recibió respuesta del microservicio. Intenta más tarde."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron cargar las reseñas"})
		return
	}
	if productReviews == nil {
		productReviews = []models.Review{}
	}

	// 3. --- Resolve the Editor Mode for This User ---
	var mine *models.Review
	sess, sessErr := h.Sessions.View(c.GetString("sessionID"))
	if sessErr == nil {
		for i := range productReviews {
			if productReviews[i].UserID == sess.User.ID {
				mine = &productReviews[i]
				break
			}
		}
	}

	response := gin.H{
		"reviews": productReviews,
		"mode":    reviews.OpenMode(mine != nil),
	}
	if mine != nil {
		response["myReview"] = mine
	}
	c.JSON(http.StatusOK, response)
}

// ReviewInput defines the JSON for creating or editing a review.
type ReviewInput struct {
	ProductID int64  `json:"id_producto" binding:"required"`
	Text      string `json:"texto"`
	Rating    int    `json:"calificacion"`
}

// CreateReview is the handler for POST /reviews (the editor's create
// mode). A 409 from the backend means this user already reviewed the
// product.
func (h *Handlers) CreateReview(c *gin.Context) {
	// 1. --- Load the Session ---
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	// 2. --- Bind & Validate ---
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := reviews.ValidateRating(input.Rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La calificación debe estar entre 1 y 5"})
		return
	}

	// 3. --- Create ---
	review, err := h.Reviews.Create(models.ReviewInput{
		ProductID: input.ProductID,
		UserID:    sess.User.ID,
		Text:      input.Text,
		Rating:    input.Rating,
	})
	if err != nil {
		if clients.StatusCode(err) == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "Ya has publicado una reseña para este producto."})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo publicar la reseña"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// UpdateReview is the handler for PUT /reviews/:id (the editor's edit
// mode, reachable only from view on the client).
func (h *Handlers) UpdateReview(c *gin.Context) {
	sess, err := h.Sessions.View(c.GetString("sessionID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reseña inválido"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := reviews.ValidateRating(input.Rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La calificación debe estar entre 1 y 5"})
		return
	}

	review, err := h.Reviews.Update(reviewID, models.ReviewInput{
		ProductID: input.ProductID,
		UserID:    sess.User.ID,
		Text:      input.Text,
		Rating:    input.Rating,
	})
	if err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reseña no encontrada"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo actualizar la reseña"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// DeleteReview is the handler for DELETE /reviews/:id. Afterwards the
// client returns to the product list.
func (h *Handlers) DeleteReview(c *gin.Context) {
	if _, err := h.Sessions.View(c.GetString("sessionID")); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
		return
	}

	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reseña inválido"})
		return
	}

	if err := h.Reviews.Delete(reviewID); err != nil {
		if clients.StatusCode(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reseña no encontrada"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo eliminar la reseña"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reseña eliminada"})
}
