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

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	router := r.Group("/api/v1")
	{
		router.GET("events", auth, h.ListUpcoming)
		router.GET("events/:uuid", auth, h.GetByEventID)
		router.POST("events", auth, adminOnly, h.Create)
		router.PUT("events/:uuid", auth, adminOnly, h.UpdateByEventID)
		router.DELETE("events/:uuid", auth, adminOnly, h.DeleteByEventID)
		router.GET("events/:uuid/summary", auth, adminOnly, h.Summary)
	}
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     *string `json:"end_time"`
	Location    string  `json:"location" binding:"required"`
}

// UpdateEventRequest 更新活動請求，至少要有一個欄位
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
}

func (h *EventHandler) ListUpcoming(c *gin.Context) {
	// 參考日期預設為今天，可用 ?from=YYYY-MM-DD 覆蓋
	from := time.Now()
	if s := c.Query("from"); s != "" {
		parsed, err := ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	events, err := h.service.ListUpcoming(c, from)
	if err != nil {
		h.handleError(c, err, "ListUpcoming")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		h.handleError(c, err, "GetByEventID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	if !ValidClock(req.StartTime) || (req.EndTime != nil && !ValidClock(*req.EndTime)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time, expected HH:MM"})
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}
	created, err := h.service.Create(c, adminID, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateByEventID(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	params := model.UpdateEventParams{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}

	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		params.EventDate = &date
	}
	if req.StartTime != nil && !ValidClock(*req.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time, expected HH:MM"})
		return
	}
	if req.EndTime != nil && !ValidClock(*req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time, expected HH:MM"})
		return
	}

	updated, err := h.service.UpdateByEventID(c, adminID, eventID, params)
	if err != nil {
		h.handleError(c, err, "UpdateByEventID")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteByEventID(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByEventID(c, adminID, eventID); err != nil {
		h.handleError(c, err, "DeleteByEventID")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (h *EventHandler) Summary(c *gin.Context) {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	eventID, ok := ParseEventUUID(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c, adminID, eventID)
	if err != nil {
		h.handleError(c, err, "Summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrForbidden:
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the event's creator may do this"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
