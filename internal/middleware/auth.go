package middleware

import (
	"net/http"
	"strings"
	"time"

	"taskhub-api/internal/auth"
	"taskhub-api/internal/cache"
	"taskhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// Identity is the resolved caller record attached to each request. The token
// only proves who the caller is; admin and active flags always come from the
// user directory so revocations take effect without reissuing tokens.
type Identity struct {
	Email    string
	IsAdmin  bool
	IsActive bool
}

// IdentityCache caches user-directory lookups keyed by user ID. Entries are
// invalidated by user-mutating handlers; the TTL is a backstop.
type IdentityCache = cache.TTLCache[string, Identity]

// identityTTL bounds how stale a cached identity may get if an invalidation
// is ever missed.
const identityTTL = 5 * time.Minute

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  false,
		"message": message,
	})
	c.Abort()
}

// Protect validates the bearer token, resolves the caller against the user
// directory and stores user_id, email and is_admin in the request context.
func Protect(users store.UserStore, identities *IdentityCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			unauthorized(c, "Authorization token is required")
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		identity, ok := identities.Get(claims.UserID)
		if !ok {
			user, err := users.FindByID(claims.UserID)
			if err != nil {
				unauthorized(c, "Invalid or expired token")
				return
			}
			identity = Identity{
				Email:    user.Email,
				IsAdmin:  user.IsAdmin,
				IsActive: user.IsActive,
			}
			identities.Set(claims.UserID, identity, identityTTL)
		}

		if !identity.IsActive {
			unauthorized(c, "User account has been deactivated, contact the administrator")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", identity.Email)
		c.Set("is_admin", identity.IsAdmin)

		c.Next()
	}
}

// AdminRequired rejects callers that are not admins. Must run after Protect.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			unauthorized(c, "Not authorized as admin. Try login as admin.")
			return
		}
		c.Next()
	}
}
