package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jetwave/jetski-booking-backend/internal/auth"
)

// AuthHandler authenticates the site administrator and issues access tokens.
type AuthHandler struct {
	passwordHash string
	hasher       auth.PasswordHasher
	jwtManager   *auth.JWTManager
}

func NewAuthHandler(
	passwordHash string,
	hasher auth.PasswordHasher,
	jwtManager *auth.JWTManager,
) *AuthHandler {
	return &AuthHandler{
		passwordHash: passwordHash,
		hasher:       hasher,
		jwtManager:   jwtManager,
	}
}

//
// POST /v1/admin/auth
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.hasher.Compare(h.passwordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}

	token, err := h.jwtManager.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to generate token",
		})
		return
	}

	resp := AdminLoginResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtManager.TTL().Seconds()),
	}

	c.JSON(http.StatusOK, resp)
}
