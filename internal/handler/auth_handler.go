package handler

import (
	"net/http"

	"go-event-planner/internal/middleware"
	"go-event-planner/internal/model"
	"go-event-planner/internal/service"
	apperrors "go-event-planner/pkg/app_errors"
	"go-event-planner/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("register", h.Register)
		router.POST("login", h.Login)
		router.POST("logout", auth, h.Logout)
	}
}

// LoginResponse 登入成功回傳 session token 與使用者資訊
type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// 未指定角色時註冊為一般使用者
	role := model.RoleUser
	if req.Role != nil {
		role = *req.Role
	}

	user, err := h.service.Register(c, req.Email, req.Password, role)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusCreated, user.ToResponse())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	session, err := h.service.Login(c, req.Email, req.Password, req.Role)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: session.Token,
		User: model.UserResponse{
			ID:    session.UserID,
			Email: session.Email,
			Role:  string(session.Role),
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.service.Logout(c, token); err != nil {
		h.handleError(c, err, "Logout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrDuplicateEmail:
		log.Warn("Duplicate email")
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case err == apperrors.ErrInvalidCredentials:
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case err == apperrors.ErrRoleMismatch:
		log.Warn("Role mismatch")
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to log in via this portal"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
