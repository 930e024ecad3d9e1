package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          int       `json:"id" db:"id"`
	EventID     uuid.UUID `json:"event_id" db:"event_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	StartTime   string    `json:"start_time" db:"start_time"`
	EndTime     *string   `json:"end_time,omitempty" db:"end_time"`
	Location    string    `json:"location" db:"location"`
	AdminID     int       `json:"admin_id" db:"admin_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsOwnedBy 檢查活動是否由該管理員建立
func (e *Event) IsOwnedBy(userID int) bool {
	return e.AdminID == userID
}

// IsPast 檢查活動日期是否早於參考日期（只比日期，不比時刻）
func (e *Event) IsPast(ref time.Time) bool {
	return DateOnly(e.EventDate).Before(DateOnly(ref))
}

// DateOnly 截斷到日期，活動日期的比較一律以天為單位
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type UpdateEventParams struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	StartTime   *string
	EndTime     *string
	Location    *string
}
