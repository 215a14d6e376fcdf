package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/session"
)

//
// --- Role-Based Middleware ---
//
// Designed to be used *after* AuthMiddleware: it reads the session id
// from the context and checks the normalized admin flag. The flag was
// decided once at login, so there is no re-deriving roles from raw data
// here.
//

// AdminMiddleware gates the inventory administration routes.
func AdminMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get the session from AuthMiddleware
		sessionID := c.GetString("sessionID")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found in context (AuthMiddleware must run first)"})
			c.Abort()
			return
		}

		sess, err := sessions.View(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida"})
			c.Abort()
			return
		}

		// 2. Check permission
		if !sess.User.Admin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Acceso restringido: se requiere rol de administrador"})
			c.Abort()
			return
		}

		c.Next()
	}
}
