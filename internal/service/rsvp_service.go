package service

import (
	"context"
	"time"

	"go-event-planner/internal/model"
	"go-event-planner/internal/repository"
	apperrors "go-event-planner/pkg/app_errors"

	"github.com/google/uuid"
)

type RSVPService interface {
	// Submit 寫入或覆蓋回覆。規則依序：活動存在、狀態合法、活動未過期。
	// today 由呼叫端提供，service 本身不讀時鐘。
	Submit(ctx context.Context, userID int, eventID uuid.UUID, status model.RSVPStatus, today time.Time) (*model.RSVP, error)
	// ListForUser 使用者的所有回覆，依活動日期升冪
	ListForUser(ctx context.Context, userID int) ([]*model.RSVP, error)
	// Get 查詢使用者對某活動的回覆，尚未回覆回傳 (nil, nil)
	Get(ctx context.Context, userID int, eventID uuid.UUID) (*model.RSVP, error)
}

type RSVPServiceImpl struct {
	repo      repository.RSVPRepository
	eventRepo repository.EventRepository
}

func NewRSVPService(repo repository.RSVPRepository, eventRepo repository.EventRepository) RSVPService {
	return &RSVPServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *RSVPServiceImpl) Submit(ctx context.Context, userID int, eventID uuid.UUID, status model.RSVPStatus, today time.Time) (*model.RSVP, error) {
	event, err := s.eventRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, apperrors.ErrInvalidRSVPStatus
	}

	if event.IsPast(today) {
		return nil, apperrors.ErrEventPast
	}

	return s.repo.Upsert(ctx, userID, event.ID, status)
}

func (s *RSVPServiceImpl) ListForUser(ctx context.Context, userID int) ([]*model.RSVP, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *RSVPServiceImpl) Get(ctx context.Context, userID int, eventID uuid.UUID) (*model.RSVP, error) {
	event, err := s.eventRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, userID, event.ID)
}
