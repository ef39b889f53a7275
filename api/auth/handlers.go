package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hoaworks/reserve-api/internal/services/auth"
	"github.com/hoaworks/reserve-api/internal/services/users"
)

// Handler manages auth endpoints
type Handler struct {
	authService    *auth.Service
	userService    users.Service
	devAuthToken   string
	devAuthEnabled bool
}

// NewHandler creates a new auth handler. The user service may be nil;
// when present, validated identities are mirrored into local profile rows.
func NewHandler(authService *auth.Service, userService users.Service) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
	}
}

// SetDevAuth configures dev auth settings for the handler
func (h *Handler) SetDevAuth(enabled bool, token string) {
	h.devAuthEnabled = enabled
	h.devAuthToken = token
	h.authService.SetDevAuth(enabled, token)
}

// Me returns current user info from JWT
// @Summary Get current user
// @Description Get current user information from Supabase JWT token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.UserInfo
// @Failure 401 {object} map[string]string
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	// Get claims from context (set by auth middleware)
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	authClaims := claims.(*auth.Claims)
	userInfo := auth.GetUserInfo(authClaims)
	c.JSON(http.StatusOK, userInfo)
}

func (h *Handler) setIdentity(c *gin.Context, claims *auth.Claims) {
	c.Set("claims", claims)
	c.Set("user_id", claims.Sub)
	c.Set("email", claims.Email)
	c.Set("username", claims.UserMetadata.Username)

	if h.userService != nil {
		if _, err := h.userService.EnsureUser(c.Request.Context(), claims.Sub, claims.Email,
			claims.UserMetadata.Username, claims.UserMetadata.FullName); err != nil {
			// Profile mirroring is best effort; the request proceeds on the JWT alone
			log.Printf("[ERROR] Failed to upsert profile for %s: %v", claims.Sub, err)
		}
	}
}

// AuthMiddleware validates Supabase JWT tokens
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip auth entirely in development mode if configured
		if h.devAuthEnabled && h.devAuthToken == "SKIP_AUTH" {
			h.setIdentity(c, h.authService.GetDevClaims())
			c.Next()
			return
		}

		// Get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		h.setIdentity(c, claims)
		c.Next()
	}
}
