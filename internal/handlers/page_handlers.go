package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Static Content Handlers (Home / Terms / Privacy) ---
//

// Home is the handler for GET /.
func (h *Handlers) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "R&R RetroStore",
		"tagline":  "Consolas, cartuchos y merch retro desde 1995",
		"sections": []string{"destacados", "categorias", "contacto"},
	})
}

// Terms is the handler for GET /terms.
func (h *Handlers) Terms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Términos y Condiciones",
		"sections": []gin.H{
			{"heading": "Uso del sitio", "body": "El catálogo es informativo; los precios pueden cambiar sin previo aviso."},
			{"heading": "Compras", "body": "Toda compra queda en estado pendiente hasta su confirmación por la tienda."},
			{"heading": "Productos usados", "body": "Los artículos retro se venden en el estado descrito en cada ficha."},
		},
	})
}

// Privacy is the handler for GET /privacy.
func (h *Handlers) Privacy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Política de Privacidad",
		"sections": []gin.H{
			{"heading": "Datos recolectados", "body": "Solo pedimos los datos necesarios para crear tu cuenta y procesar compras."},
			{"heading": "Uso de los datos", "body": "Nunca compartimos tu información con terceros fuera de los servicios de la tienda."},
		},
	})
}
