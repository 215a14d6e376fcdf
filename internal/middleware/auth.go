package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rnrstore/retrostore-golang/internal/auth"
	"github.com/rnrstore/retrostore-golang/internal/session"
)

// AuthMiddleware validates the Bearer token and checks the session it
// points at still exists. On success the session id and user id land in
// the gin context for the handlers.
func AuthMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}
		tokenString := parts[1]

		// 2. --- Validate Token ---
		sessionID, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 3. --- Check the Session Still Exists ---
		// A valid token with no session behind it means the user logged
		// out (or the server restarted); either way, back to login.
		sess, err := sessions.View(sessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión no válida", "redirect": "/login"})
			c.Abort()
			return
		}

		// 4. --- Success ---
		c.Set("sessionID", sessionID)
		c.Set("userID", sess.User.ID)
		c.Next()
	}
}

// OptionalAuth is AuthMiddleware for public routes whose response is
// richer for logged-in visitors (e.g. the review list marking the
// visitor's own review). A missing or bad token just means anonymous.
func OptionalAuth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		sessionID, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}
		sess, err := sessions.View(sessionID)
		if err != nil {
			c.Next()
			return
		}

		c.Set("sessionID", sessionID)
		c.Set("userID", sess.User.ID)
		c.Next()
	}
}
