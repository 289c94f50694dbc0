package auth

import (
	"github.com/gin-gonic/gin"
)

// TokenService handles JWT operations
type TokenService interface {
	GenerateAccessToken(userID, email string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// ResponseHandler handles HTTP responses
type ResponseHandler interface {
	UnauthorizedResponse(c *gin.Context, message string)
}
