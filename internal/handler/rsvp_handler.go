package handler

import (
	"net/http"
	"time"

	"go-event-planner/internal/middleware"
	"go-event-planner/internal/model"
	"go-event-planner/internal/service"
	apperrors "go-event-planner/pkg/app_errors"
	"go-event-planner/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RSVPHandler struct {
	service service.RSVPService
}

func NewRSVPHandler(service service.RSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

func (h *RSVPHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:uuid/rsvp", auth, h.Submit)
		router.GET("events/:uuid/rsvp", auth, h.Get)
		router.GET("rsvps", auth, h.ListMine)
	}
}

// SubmitRSVPRequest RSVP 請求
type SubmitRSVPRequest struct {
	Status model.RSVPStatus `json:"status" binding:"required"`
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}

	var req SubmitRSVPRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	rsvp, err := h.service.Submit(c, userID, eventID, req.Status, time.Now())
	if err != nil {
		h.handleError(c, err, "Submit")
		return
	}
	c.JSON(http.StatusOK, rsvp)
}

func (h *RSVPHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}

	rsvp, err := h.service.Get(c, userID, eventID)
	if err != nil {
		h.handleError(c, err, "Get")
		return
	}

	// rsvp 為 nil 表示尚未回覆，照樣回 200
	c.JSON(http.StatusOK, gin.H{"rsvp": rsvp})
}

func (h *RSVPHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	rsvps, err := h.service.ListForUser(c, userID)
	if err != nil {
		h.handleError(c, err, "ListMine")
		return
	}
	c.JSON(http.StatusOK, rsvps)
}

func (h *RSVPHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrInvalidRSVPStatus:
		log.Warn("Invalid rsvp status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid RSVP status"})
	case err == apperrors.ErrEventPast:
		log.Warn("Event already passed")
		c.JSON(http.StatusConflict, gin.H{"error": "This event has already passed. You can no longer RSVP"})
	case err == apperrors.ErrConflict:
		log.Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicting RSVP, please retry"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
