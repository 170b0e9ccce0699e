package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coding-online/certexam/internal/dto"
	"github.com/coding-online/certexam/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ContextUserID    = "user_id"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
)

// GenerateToken issues an HS256 bearer token for the given user.
func GenerateToken(user *model.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireAuth validates the Authorization bearer token and stores the user's
// identity in the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing authorization token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token claims"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid token claims"})
			return
		}
		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		ctx.Set(ContextUserID, sub)
		ctx.Set(ContextUserName, name)
		ctx.Set(ContextUserEmail, email)
		ctx.Next()
	}
}

// UserFromContext rebuilds the authenticated user from the claims RequireAuth
// stored.
func UserFromContext(ctx *gin.Context) (*model.User, bool) {
	id := ctx.GetString(ContextUserID)
	if id == "" {
		return nil, false
	}
	return &model.User{
		ID:    id,
		Name:  ctx.GetString(ContextUserName),
		Email: ctx.GetString(ContextUserEmail),
	}, true
}
