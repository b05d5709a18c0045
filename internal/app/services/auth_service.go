package services

import (
	"context"
	"errors"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/logger"
)

// AuthUserRepository is the slice of user storage the auth service needs
type AuthUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// AuthTokenRepository is the refresh token storage the auth service needs
type AuthTokenRepository interface {
	StoreRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetUserIDByRefreshToken(ctx context.Context, token string) (int64, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteAllUserTokens(ctx context.Context, userID int64) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	users      AuthUserRepository
	tokens     AuthTokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users AuthUserRepository, tokens AuthTokenRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{users: users, tokens: tokens, jwtService: jwtService}
}

// Register creates a new student account and issues its first token pair
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *dto.TokenResponse, error) {
	if req.Password != req.Password2 {
		return nil, nil, apperrors.NewValidationError("password2", "Passwords do not match")
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Campus:     req.Campus,
		Batch:      req.Batch,
		RoleType:   models.RoleStudent,
		IsVerified: false,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	user.ID = id

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int64("userID", id).Str("email", user.Email).Msg("User registered")
	return user, tokens, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record login time")
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokens.GetUserIDByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// Logout revokes every refresh token for the user
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.DeleteAllUserTokens(ctx, userID)
}

// PurgeExpiredTokens drops refresh tokens past their expiry. Expired tokens
// are already rejected at refresh time, so this only reclaims storage; it
// runs from the background sweeper.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) error {
	removed, err := s.tokens.DeleteExpiredTokens(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Info().Int64("removed", removed).Msg("Purged expired refresh tokens")
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(refreshExpiresIn) * time.Second)
	if err := s.tokens.StoreRefreshToken(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
