package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go-event-planner/internal/model"
	apperrors "go-event-planner/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session Redis 中保存的登入狀態
type Session struct {
	Token  string
	UserID int
	Email  string
	Role   model.Role
}

type SessionStore interface {
	// Create 發給不透明 token，session 寫入 Redis 並套用 TTL
	Create(ctx context.Context, user *model.User) (*Session, error)
	// Get 以 token 取回 session，過期或不存在回傳 ErrInvalidSession
	Get(ctx context.Context, token string) (*Session, error)
	// Delete 登出時撤銷 session
	Delete(ctx context.Context, token string) error
}

type RedisSessionStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// session key
func (s *RedisSessionStoreImpl) getSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisSessionStoreImpl) Create(ctx context.Context, user *model.User) (*Session, error) {
	token := uuid.NewString()
	key := s.getSessionKey(token)

	err := s.client.HSet(ctx, key, map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	}).Err()
	if err != nil {
		return nil, err
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &Session{
		Token:  token,
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func (s *RedisSessionStoreImpl) Get(ctx context.Context, token string) (*Session, error) {
	key := s.getSessionKey(token)
	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return nil, apperrors.ErrInvalidSession
	}

	userID, err := strconv.Atoi(result["user_id"])
	if err != nil {
		return nil, fmt.Errorf("invalid session user_id: %v", err)
	}

	role := model.Role(result["role"])
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid session role: %q", result["role"])
	}

	return &Session{
		Token:  token,
		UserID: userID,
		Email:  result["email"],
		Role:   role,
	}, nil
}

func (s *RedisSessionStoreImpl) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}
