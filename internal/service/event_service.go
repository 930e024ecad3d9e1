package service

import (
	"context"
	"time"

	"go-event-planner/internal/model"
	"go-event-planner/internal/repository"
	apperrors "go-event-planner/pkg/app_errors"

	"github.com/google/uuid"
)

type EventService interface {
	Create(ctx context.Context, adminID int, event *model.Event) (*model.Event, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error)
	// UpdateByEventID 僅限建立活動的管理員，其他人回傳 ErrForbidden
	UpdateByEventID(ctx context.Context, adminID int, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	// DeleteByEventID 同上，刪除連同該活動的所有 RSVP
	DeleteByEventID(ctx context.Context, adminID int, eventID uuid.UUID) error
	// Summary 統計活動的 RSVP，三種狀態都會出現，無回覆補 0
	Summary(ctx context.Context, adminID int, eventID uuid.UUID) (*model.RSVPSummary, error)
}

type EventServiceImpl struct {
	repo     repository.EventRepository
	rsvpRepo repository.RSVPRepository
}

func NewEventService(repo repository.EventRepository, rsvpRepo repository.RSVPRepository) EventService {
	return &EventServiceImpl{repo: repo, rsvpRepo: rsvpRepo}
}

func (s *EventServiceImpl) Create(ctx context.Context, adminID int, event *model.Event) (*model.Event, error) {
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	event.AdminID = adminID
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) ListUpcoming(ctx context.Context, from time.Time) ([]*model.Event, error) {
	return s.repo.ListUpcoming(ctx, from)
}

func (s *EventServiceImpl) UpdateByEventID(ctx context.Context, adminID int, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.findOwned(ctx, adminID, eventID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, event.ID, params)
}

func (s *EventServiceImpl) DeleteByEventID(ctx context.Context, adminID int, eventID uuid.UUID) error {
	event, err := s.findOwned(ctx, adminID, eventID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, event.ID)
}

func (s *EventServiceImpl) Summary(ctx context.Context, adminID int, eventID uuid.UUID) (*model.RSVPSummary, error) {
	event, err := s.findOwned(ctx, adminID, eventID)
	if err != nil {
		return nil, err
	}

	counts, err := s.rsvpRepo.CountByStatus(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return &model.RSVPSummary{
		Going:   counts[model.RSVPStatusGoing],
		Maybe:   counts[model.RSVPStatusMaybe],
		Decline: counts[model.RSVPStatusDecline],
	}, nil
}

// findOwned 取出活動並確認擁有者
func (s *EventServiceImpl) findOwned(ctx context.Context, adminID int, eventID uuid.UUID) (*model.Event, error) {
	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsOwnedBy(adminID) {
		return nil, apperrors.ErrForbidden
	}
	return event, nil
}
