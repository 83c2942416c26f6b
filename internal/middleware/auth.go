package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bungee-astro/tracker-api/internal/token"
)

// claimsKey is the Gin context key the verified claims are stored under.
const claimsKey = "authClaims"

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token. Verified claims are stored in the context for handlers.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyRequest(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "valid authentication required",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuth returns a middleware that attaches claims when a valid
// token is present but never blocks the request. Used on public routes
// where an authenticated reporter gets linked to their account.
func OptionalAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := verifyRequest(c, tokens); ok {
			c.Set(claimsKey, claims)
		}
		c.Next()
	}
}

// ClaimsFromContext retrieves the authenticated claims set by RequireAuth
// or OptionalAuth. Returns (nil, false) for anonymous requests.
func ClaimsFromContext(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}

func verifyRequest(c *gin.Context, tokens *token.Service) (*token.Claims, bool) {
	raw, ok := token.ExtractBearer(c.GetHeader("Authorization"))
	if !ok {
		return nil, false
	}
	return tokens.Verify(raw)
}
