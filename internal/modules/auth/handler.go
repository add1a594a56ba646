package auth

import (
	"net/http"

	"hoteldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/register", h.Register)
}

// RegisterProtectedRoutes mounts the endpoints that require a valid session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
	rg.GET("/auth/verify", h.Verify)
	rg.POST("/auth/logout", h.Logout)
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrInvalidCredentials:
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Account already exists")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	out, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to log in")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to register account")
		return
	}
	response.Success(c, http.StatusCreated, u)
}

func (h *Handler) Me(c *gin.Context) {
	out, err := h.service.Me(c.Request.Context(), c.GetString("user_id"), c.GetString("username"))
	if err != nil {
		respondErr(c, err, "Failed to resolve session")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Verify(c *gin.Context) {
	// Reaching this handler means the auth middleware accepted the token.
	response.Success(c, http.StatusOK, VerifyResponse{
		Valid:    true,
		Username: c.GetString("username"),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	// Sessions are stateless JWTs; the client discards the token.
	response.Message(c, http.StatusOK, "Logged out")
}
