package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"chairai-backend/internal/config"
	"chairai-backend/internal/models"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "user_role"
)

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error: models.ErrorBody{Code: "UNAUTHORIZED", Message: message},
	})
	c.Abort()
}

// AuthMiddleware validates the Supabase JWT from the Authorization header and
// stores the principal (user id + role) in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthorized(c, "empty token")
			return
		}

		// Supabase signs access tokens with HS256 using the project JWT secret.
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			if cfg.SupabaseJWTSecret == "" {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SupabaseJWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			msg := "invalid token"
			if strings.Contains(err.Error(), "token is expired") {
				msg = "token has expired"
			} else if strings.Contains(err.Error(), "signature is invalid") {
				msg = "token signature is invalid"
			}
			unauthorized(c, msg)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			unauthorized(c, "invalid token claims")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			unauthorized(c, "missing user id in token")
			return
		}

		c.Set(UserIDKey, sub)
		c.Set(RoleKey, extractRole(claims))
		c.Next()
	}
}

// extractRole reads the application role from the token. The role is written
// to the user_role claim at signup; older tokens carry it in user_metadata.
func extractRole(claims jwt.MapClaims) string {
	if role, ok := claims["user_role"].(string); ok && role != "" {
		return role
	}
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok {
			return role
		}
	}
	return ""
}
