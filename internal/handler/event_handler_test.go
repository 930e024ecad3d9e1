package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-event-planner/internal/handler"
	"go-event-planner/internal/model"
	"go-event-planner/internal/service/mocks"
	apperrors "go-event-planner/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testEventUUID = uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

func setupEventTestRouter(mockService *mocks.EventServiceMock, role model.Role) *gin.Engine {
	router := newTestRouter()

	eventHandler := handler.NewEventHandler(mockService)
	eventHandler.RegisterRoutes(router, fakeAuth(1, role))

	return router
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		mockService.On("Create", mock.Anything, 1, mock.MatchedBy(func(e *model.Event) bool {
			return e.Title == "Launch" && e.StartTime == "18:00" && e.Location == "HQ"
		})).Return(&model.Event{ID: 1, EventID: testEventUUID, Title: "Launch", AdminID: 1}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/events", handler.CreateEventRequest{
			Title:     "Launch",
			Date:      "2026-09-02",
			StartTime: "18:00",
			Location:  "HQ",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - non-admin blocked by role middleware", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		req := createJSONHTTPRequest("POST", "/api/v1/events", handler.CreateEventRequest{
			Title:     "Launch",
			Date:      "2026-09-02",
			StartTime: "18:00",
			Location:  "HQ",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - bad date format", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		req := createJSONHTTPRequest("POST", "/api/v1/events", handler.CreateEventRequest{
			Title:     "Launch",
			Date:      "02/09/2026",
			StartTime: "18:00",
			Location:  "HQ",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - bad start time", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		req := createJSONHTTPRequest("POST", "/api/v1/events", handler.CreateEventRequest{
			Title:     "Launch",
			Date:      "2026-09-02",
			StartTime: "6pm",
			Location:  "HQ",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestListUpcomingEvents(t *testing.T) {
	t.Run("Success - explicit reference date", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		mockService.On("ListUpcoming", mock.Anything, mock.MatchedBy(func(ts time.Time) bool {
			return ts.Equal(from)
		})).Return([]*model.Event{
			{ID: 1, Title: "Launch"},
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events?from=2026-09-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - bad from date", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		req := createJSONHTTPRequest("GET", "/api/v1/events?from=september", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListUpcoming")
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		mockService.On("GetByEventID", mock.Anything, testEventUUID).Return(&model.Event{
			ID: 1, EventID: testEventUUID, Title: "Launch",
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+testEventUUID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var event model.Event
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
		assert.Equal(t, "Launch", event.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		mockService.On("GetByEventID", mock.Anything, testEventUUID).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+testEventUUID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - invalid uuid", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		req := createJSONHTTPRequest("GET", "/api/v1/events/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByEventID")
	})
}

func TestUpdateEvent(t *testing.T) {
	t.Run("Failed - not the owner", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		mockService.On("UpdateByEventID", mock.Anything, 1, testEventUUID, mock.Anything).
			Return(nil, apperrors.ErrForbidden).Once()

		title := "hijack"
		req := createJSONHTTPRequest("PUT", "/api/v1/events/"+testEventUUID.String(), handler.UpdateEventRequest{
			Title: &title,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		title := "Launch v2"
		mockService.On("UpdateByEventID", mock.Anything, 1, testEventUUID, model.UpdateEventParams{
			Title: &title,
		}).Return(&model.Event{ID: 1, EventID: testEventUUID, Title: title}, nil).Once()

		req := createJSONHTTPRequest("PUT", "/api/v1/events/"+testEventUUID.String(), handler.UpdateEventRequest{
			Title: &title,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		mockService.On("DeleteByEventID", mock.Anything, 1, testEventUUID).Return(nil).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/events/"+testEventUUID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - not the owner", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		mockService.On("DeleteByEventID", mock.Anything, 1, testEventUUID).
			Return(apperrors.ErrForbidden).Once()

		req := createJSONHTTPRequest("DELETE", "/api/v1/events/"+testEventUUID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestEventSummary(t *testing.T) {
	t.Run("Success - all statuses present", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleAdmin)

		mockService.On("Summary", mock.Anything, 1, testEventUUID).Return(&model.RSVPSummary{
			Going: 1,
		}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+testEventUUID.String()+"/summary", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var summary map[string]int
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 1, summary["going"])
		assert.Contains(t, summary, "maybe")
		assert.Contains(t, summary, "decline")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - non-admin blocked", func(t *testing.T) {
		mockService := mocks.NewEventServiceMock()
		router := setupEventTestRouter(mockService, model.RoleUser)

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+testEventUUID.String()+"/summary", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "Summary")
	})
}
