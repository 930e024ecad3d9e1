package service

import (
	"context"
	"errors"

	"go-event-planner/internal/cache"
	"go-event-planner/internal/model"
	"go-event-planner/internal/repository"
	apperrors "go-event-planner/pkg/app_errors"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register 建立帳號，email 重複回傳 ErrDuplicateEmail
	Register(ctx context.Context, email, password string, role model.Role) (*model.User, error)
	// Login 驗證帳密後比對登入入口的角色，成功發給 session
	Login(ctx context.Context, email, password string, claimedRole model.Role) (*cache.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	userRepository repository.UserRepository
	sessionStore   cache.SessionStore
	bcryptCost     int
}

func NewAuthService(userRepository repository.UserRepository, sessionStore cache.SessionStore, bcryptCost int) AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		sessionStore:   sessionStore,
		bcryptCost:     bcryptCost,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, email, password string, role model.Role) (*model.User, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	return s.userRepository.Create(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, claimedRole model.Role) (*cache.Session, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// 不洩漏 email 是否存在
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// 帳密正確後才比對角色：admin 必須走 admin portal，反之亦然
	if user.Role != claimedRole {
		return nil, apperrors.ErrRoleMismatch
	}

	return s.sessionStore.Create(ctx, user)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return s.sessionStore.Delete(ctx, token)
}
