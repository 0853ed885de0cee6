package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"saathi/internal/auth"
	"saathi/internal/logging"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	service *auth.Service
	logger  logging.Logger
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service, logger: logging.NewComponentLogger("AuthHandler")}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User  auth.User `json:"user"`
	Token string    `json:"token"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}
	user, token, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			respondError(c, http.StatusConflict, "email already registered")
			return
		}
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondCreated(c, authResponse{User: user, Token: token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}
	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}
	respondOK(c, authResponse{User: user, Token: token})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	respondOK(c, user)
}
