package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
	"github.com/billfold/billfold-api/pkg/apperror"
	"github.com/billfold/billfold-api/pkg/session"
	"github.com/billfold/billfold-api/pkg/utils"
)

// AuthService handles login, token refresh and profile management.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	sessions   session.Store
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, sessions session.Store) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		sessions:   sessions,
	}
}

// AuthTokens is the token pair returned on login and refresh.
type AuthTokens struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login verifies credentials, saves a session and issues tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthTokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	s.sessions.Save(&session.Session{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		LoggedInAt: time.Now(),
	})

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// Logout clears the user's session. Tokens already issued simply age
// out; there is no revocation list.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) {
	s.sessions.Clear(userID)
}

// GetProfile returns the user's account record.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateProfileInput carries partial profile updates.
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// UpdateProfile merges the given fields into the user record and keeps
// the session in sync.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if sess := s.sessions.Load(userID); sess != nil {
		sess.Name = user.Name
		s.sessions.Save(sess)
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return apperror.NewBadRequestError("Current password is incorrect")
	}
	if len(next) < 8 {
		return apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	return s.userRepo.Update(ctx, user)
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthTokens, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
