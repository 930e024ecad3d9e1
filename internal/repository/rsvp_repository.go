package repository

import (
	"context"

	"go-event-planner/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RSVPRepository interface {
	// Upsert 寫入或覆蓋 (user, event) 的回覆。
	// 唯一約束在資料庫層，併發的重複 insert 會原子地轉成 update。
	Upsert(ctx context.Context, userID, eventID int, status model.RSVPStatus) (*model.RSVP, error)
	// Find 查詢單筆回覆，沒有回覆不是錯誤，回傳 (nil, nil)
	Find(ctx context.Context, userID, eventID int) (*model.RSVP, error)
	// ListByUser 回傳使用者的所有回覆，依活動日期升冪
	ListByUser(ctx context.Context, userID int) ([]*model.RSVP, error)
	// CountByStatus 統計活動各狀態的回覆數，只含有資料的狀態
	CountByStatus(ctx context.Context, eventID int) (map[model.RSVPStatus]int, error)
}

type RSVPRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) RSVPRepository {
	return &RSVPRepositoryImpl{
		pool: pool,
	}
}

func (r *RSVPRepositoryImpl) Upsert(ctx context.Context, userID, eventID int, status model.RSVPStatus) (*model.RSVP, error) {
	query := `
		INSERT INTO rsvps (user_id, event_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT rsvps_user_event_unique
		DO UPDATE SET status = EXCLUDED.status, updated_at = now()
		RETURNING id, user_id, event_id, status, created_at, updated_at
	`

	var rsvp model.RSVP
	err := r.pool.QueryRow(ctx, query, userID, eventID, status).Scan(
		&rsvp.ID,
		&rsvp.UserID,
		&rsvp.EventID,
		&rsvp.Status,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepositoryImpl) Find(ctx context.Context, userID, eventID int) (*model.RSVP, error) {
	query := `
		SELECT id, user_id, event_id, status, created_at, updated_at
		FROM rsvps
		WHERE user_id = $1 AND event_id = $2
	`

	var rsvp model.RSVP
	err := r.pool.QueryRow(ctx, query, userID, eventID).Scan(
		&rsvp.ID,
		&rsvp.UserID,
		&rsvp.EventID,
		&rsvp.Status,
		&rsvp.CreatedAt,
		&rsvp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// 尚未回覆是合法狀態
			return nil, nil
		}
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepositoryImpl) ListByUser(ctx context.Context, userID int) ([]*model.RSVP, error) {
	query := `
		SELECT r.id, r.user_id, r.event_id, r.status, r.created_at, r.updated_at,
		       e.id, e.event_id, e.title, e.description, e.event_date, e.start_time, e.end_time, e.location, e.admin_id, e.created_at, e.updated_at
		FROM rsvps r
		JOIN events e ON r.event_id = e.id
		WHERE r.user_id = $1
		ORDER BY e.event_date ASC, e.id ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*model.RSVP, 0)
	for rows.Next() {
		var rsvp model.RSVP
		var event model.Event
		err := rows.Scan(
			&rsvp.ID,
			&rsvp.UserID,
			&rsvp.EventID,
			&rsvp.Status,
			&rsvp.CreatedAt,
			&rsvp.UpdatedAt,
			&event.ID,
			&event.EventID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.StartTime,
			&event.EndTime,
			&event.Location,
			&event.AdminID,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rsvp.Event = &event
		rsvps = append(rsvps, &rsvp)
	}
	return rsvps, rows.Err()
}

func (r *RSVPRepositoryImpl) CountByStatus(ctx context.Context, eventID int) (map[model.RSVPStatus]int, error) {
	query := `
		SELECT status, COUNT(id)
		FROM rsvps
		WHERE event_id = $1
		GROUP BY status
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.RSVPStatus]int)
	for rows.Next() {
		var status model.RSVPStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
