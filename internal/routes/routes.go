package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/handlers"
	"github.com/rnrstore/retrostore-golang/internal/middleware"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

// CORSMiddleware tells the browser the storefront frontend may talk to
// us, including the Authorization header for the session token.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires the storefront's route table. The paths mirror the
// old client-side routes one-to-one so the frontend did not have to
// change its navigation.
func SetupRouter(h *handlers.Handlers, sessions *session.Store, allowedOrigin string) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware(allowedOrigin))

	// --- Ping Route (Public) ---
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Static Pages (Public) ---
	router.GET("/", h.Home)
	router.GET("/terms", h.Terms)
	router.GET("/privacy", h.Privacy)

	// --- Auth Routes (Public) ---
	router.POST("/login", h.Login)
	router.POST("/signin", h.Register)

	// --- Password Recovery (Public, three steps + back) ---
	forgot := router.Group("/forgot-password")
	{
		forgot.POST("/question", h.RecoveryQuestion)
		forgot.POST("/answer", h.RecoveryAnswer)
		forgot.POST("/back", h.RecoveryBack)
		forgot.PUT("/reset", h.RecoveryReset)
	}

	// --- Catalog Routes (Public) ---
	router.GET("/products", h.BrowseProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/products/:id/photo", h.GetProductPhoto)
	router.GET("/products/:id/reviews", middleware.OptionalAuth(sessions), h.GetProductReviews)

	// --- Contact (Public) ---
	router.POST("/contact", h.SendContact)

	// --- Protected Routes (Login Required) ---
	authed := router.Group("/")
	authed.Use(middleware.AuthMiddleware(sessions))
	{
		authed.POST("/logout", h.Logout)

		// Cart modal
		authed.GET("/cart", h.GetCart)
		authed.POST("/cart/items", h.AddToCart)
		authed.PUT("/cart/items/:product_id", h.UpdateCartItem)
		authed.DELETE("/cart/items/:product_id", h.RemoveCartItem)

		// Checkout
		authed.GET("/checkout", h.ReviewCheckout)
		authed.POST("/checkout", h.SubmitCheckout)
		authed.GET("/CheckoutSuccess", h.CheckoutSuccess)

		// Profile tabs + purchase history
		authed.GET("/profile", h.GetProfile)
		authed.GET("/historial", h.GetPurchaseHistory)

		// Review editor
		authed.POST("/reviews", h.CreateReview)
		authed.PUT("/reviews/:id", h.UpdateReview)
		authed.DELETE("/reviews/:id", h.DeleteReview)
	}

	// --- Admin-Only Routes ---
	admin := router.Group("/inventory")
	admin.Use(middleware.AuthMiddleware(sessions))
	admin.Use(middleware.AdminMiddleware(sessions))
	{
		admin.GET("/products", h.ListInventory)
		admin.POST("/products", h.CreateInventoryProduct)
		admin.PUT("/products/:id", h.UpdateInventoryProduct)
		admin.DELETE("/products/:id", h.DeleteInventoryProduct)
		admin.GET("/options", h.GetInventoryOptions)
	}

	return router
}
