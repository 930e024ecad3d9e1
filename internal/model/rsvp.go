package model

import "time"

// RSVPStatus RSVP 狀態類型
type RSVPStatus string

const (
	RSVPStatusGoing   RSVPStatus = "Going"
	RSVPStatusMaybe   RSVPStatus = "Maybe"
	RSVPStatusDecline RSVPStatus = "Decline"
)

// IsValid 驗證狀態是否有效
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPStatusGoing, RSVPStatusMaybe, RSVPStatusDecline:
		return true
	}
	return false
}

// RSVP 出席回覆，每個 (user, event) 最多一筆
type RSVP struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	EventID   int        `json:"event_id" db:"event_id"`
	Status    RSVPStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	Event *Event `json:"event,omitempty" db:"-"`
}

// RSVPSummary 三種狀態的人數統計，沒有回覆的狀態以 0 呈現
type RSVPSummary struct {
	Going   int `json:"going"`
	Maybe   int `json:"maybe"`
	Decline int `json:"decline"`
}

// Total 回覆總數
func (s RSVPSummary) Total() int {
	return s.Going + s.Maybe + s.Decline
}
