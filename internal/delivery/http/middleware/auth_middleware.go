package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.Resolve(r)
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		// Add user info to context
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Resolve validates the request credentials and returns the token claims.
// The route guard reuses this without writing an error response, since page
// navigations redirect instead of returning 401.
func (m *AuthMiddleware) Resolve(r *http.Request) (*jwt.Claims, error) {
	tokenString := extractToken(r)
	if tokenString == "" {
		return nil, fmt.Errorf("authorization is required")
	}

	claims, err := m.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token")
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, fmt.Errorf("invalid token type")
	}

	// Check if token exists in Redis (not revoked)
	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to validate token")
	}
	if exists == 0 {
		return nil, fmt.Errorf("token has been revoked")
	}

	return claims, nil
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the access_token cookie that page navigations carry.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleFromContext extracts the role code from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
