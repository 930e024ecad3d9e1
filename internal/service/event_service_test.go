package service_test

import (
	"context"
	"testing"
	"time"

	"go-event-planner/internal/model"
	repoMocks "go-event-planner/internal/repository/mocks"
	"go-event-planner/internal/service"
	apperrors "go-event-planner/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventServiceMocks() (*repoMocks.EventRepositoryMock, *repoMocks.RSVPRepositoryMock, service.EventService) {
	eventRepo := repoMocks.NewEventRepositoryMock()
	rsvpRepo := repoMocks.NewRSVPRepositoryMock()
	eventService := service.NewEventService(eventRepo, rsvpRepo)
	return eventRepo, rsvpRepo, eventService
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - stamps owner and public id", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		eventRepo.On("Create", ctx, mock.MatchedBy(func(e *model.Event) bool {
			return e.AdminID == 2 && e.EventID != uuid.Nil && e.Title == "Launch"
		})).Return(&model.Event{ID: 1, Title: "Launch", AdminID: 2}, nil).Once()

		created, err := eventService.Create(ctx, 2, &model.Event{Title: "Launch"})

		require.NoError(t, err)
		assert.Equal(t, 2, created.AdminID)
		eventRepo.AssertExpectations(t)
	})
}

func TestEventService_UpdateByEventID(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success - owner updates", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, Title: "Launch", AdminID: 2}
		title := "Launch v2"
		params := model.UpdateEventParams{Title: &title}

		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()
		eventRepo.On("Update", ctx, 5, params).Return(&model.Event{ID: 5, EventID: eventID, Title: title, AdminID: 2}, nil).Once()

		updated, err := eventService.UpdateByEventID(ctx, 2, eventID, params)

		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		eventRepo.AssertExpectations(t)
	})

	t.Run("Failed - not the owner", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()

		title := "hijack"
		_, err := eventService.UpdateByEventID(ctx, 3, eventID, model.UpdateEventParams{Title: &title})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		eventRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - event not found", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		eventRepo.On("FindByEventID", ctx, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		title := "whatever"
		_, err := eventService.UpdateByEventID(ctx, 2, eventID, model.UpdateEventParams{Title: &title})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		eventRepo.AssertNotCalled(t, "Update")
	})
}

func TestEventService_DeleteByEventID(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success - owner deletes", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()
		eventRepo.On("Delete", ctx, 5).Return(nil).Once()

		err := eventService.DeleteByEventID(ctx, 2, eventID)

		require.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})

	t.Run("Failed - not the owner", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()

		err := eventService.DeleteByEventID(ctx, 3, eventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		eventRepo.AssertNotCalled(t, "Delete")
	})
}

func TestEventService_ListUpcoming(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - delegates with the reference date", func(t *testing.T) {
		eventRepo, _, eventService := setupEventServiceMocks()

		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		events := []*model.Event{{ID: 1}, {ID: 2}}
		eventRepo.On("ListUpcoming", ctx, from).Return(events, nil).Once()

		got, err := eventService.ListUpcoming(ctx, from)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		eventRepo.AssertExpectations(t)
	})
}

func TestEventService_Summary(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success - zero-fills missing statuses", func(t *testing.T) {
		eventRepo, rsvpRepo, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()
		rsvpRepo.On("CountByStatus", ctx, 5).Return(map[model.RSVPStatus]int{
			model.RSVPStatusGoing: 3,
		}, nil).Once()

		summary, err := eventService.Summary(ctx, 2, eventID)

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Going)
		assert.Equal(t, 0, summary.Maybe)
		assert.Equal(t, 0, summary.Decline)
		assert.Equal(t, 3, summary.Total())
		eventRepo.AssertExpectations(t)
		rsvpRepo.AssertExpectations(t)
	})

	t.Run("Success - all statuses empty", func(t *testing.T) {
		eventRepo, rsvpRepo, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()
		rsvpRepo.On("CountByStatus", ctx, 5).Return(map[model.RSVPStatus]int{}, nil).Once()

		summary, err := eventService.Summary(ctx, 2, eventID)

		require.NoError(t, err)
		assert.Equal(t, &model.RSVPSummary{}, summary)
	})

	t.Run("Failed - not the owner", func(t *testing.T) {
		eventRepo, rsvpRepo, eventService := setupEventServiceMocks()

		event := &model.Event{ID: 5, EventID: eventID, AdminID: 2}
		eventRepo.On("FindByEventID", ctx, eventID).Return(event, nil).Once()

		_, err := eventService.Summary(ctx, 3, eventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		rsvpRepo.AssertNotCalled(t, "CountByStatus")
	})
}
