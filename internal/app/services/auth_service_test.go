package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
)

type fakeUserRepo struct {
	usersByID    map[int64]*models.User
	usersByEmail map[string]*models.User
	nextID       int64
	lastLogins   map[int64]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByID:    make(map[int64]*models.User),
		usersByEmail: make(map[string]*models.User),
		nextID:       1,
		lastLogins:   make(map[int64]int),
	}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if _, exists := r.usersByEmail[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	id := r.nextID
	r.nextID++
	stored := *user
	stored.ID = id
	r.usersByID[id] = &stored
	r.usersByEmail[stored.Email] = &stored
	return id, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.usersByID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.usersByEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, userID int64) error {
	r.lastLogins[userID]++
	return nil
}

type fakeTokenRepo struct {
	tokens   map[string]int64
	expiries map[string]time.Time
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		tokens:   make(map[string]int64),
		expiries: make(map[string]time.Time),
	}
}

func (r *fakeTokenRepo) StoreRefreshToken(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	r.tokens[token] = userID
	r.expiries[token] = expiresAt
	return nil
}

func (r *fakeTokenRepo) GetUserIDByRefreshToken(_ context.Context, token string) (int64, error) {
	userID, ok := r.tokens[token]
	if !ok || !r.expiries[token].After(time.Now()) {
		return 0, apperrors.ErrTokenInvalid
	}
	return userID, nil
}

func (r *fakeTokenRepo) DeleteRefreshToken(_ context.Context, token string) error {
	delete(r.tokens, token)
	delete(r.expiries, token)
	return nil
}

func (r *fakeTokenRepo) DeleteAllUserTokens(_ context.Context, userID int64) error {
	for token, owner := range r.tokens {
		if owner == userID {
			delete(r.tokens, token)
			delete(r.expiries, token)
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpiredTokens(_ context.Context) (int64, error) {
	var removed int64
	for token := range r.tokens {
		if !r.expiries[token].After(time.Now()) {
			delete(r.tokens, token)
			delete(r.expiries, token)
			removed++
		}
	}
	return removed, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:      "hana@campus.edu",
		Password:   "Sup3rSecret!",
		Password2:  "Sup3rSecret!",
		FirstName:  "Hana",
		LastName:   "Tesfaye",
		Department: "Software Engineering",
		Campus:     "Main Campus",
		Batch:      "GC 2026",
	}
}

func TestRegisterCreatesStudentAndIssuesTokens(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens, testJWTService())

	user, pair, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatal(err)
	}
	if user.RoleType != models.RoleStudent {
		t.Fatalf("new accounts must be students, got %s", user.RoleType)
	}
	if user.Password == "Sup3rSecret!" {
		t.Fatal("password must be stored hashed")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.TokenType != "Bearer" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}
	if tokens.tokens[pair.RefreshToken] != user.ID {
		t.Fatal("refresh token not persisted for the user")
	}
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo(), testJWTService())

	req := registerRequest()
	req.Password2 = "different"
	_, _, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo(), testJWTService())

	if _, _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatal(err)
	}
	_, _, err := svc.Register(context.Background(), registerRequest())
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginVerifiesCredentials(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens, testJWTService())

	registered, _, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatal(err)
	}

	user, pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "hana@campus.edu",
		Password: "Sup3rSecret!",
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != registered.ID {
		t.Fatal("login returned a different account")
	}
	if pair.RefreshToken == "" {
		t.Fatal("login should issue a refresh token")
	}
	if users.lastLogins[user.ID] != 1 {
		t.Fatal("login time not recorded")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo(), testJWTService())
	if _, _, err := svc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "hana@campus.edu",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newFakeTokenRepo(), testJWTService())

	_, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens, testJWTService())

	user, pair, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatal(err)
	}

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh must rotate the token")
	}
	if _, ok := tokens.tokens[pair.RefreshToken]; ok {
		t.Fatal("old refresh token must be revoked")
	}
	if tokens.tokens[fresh.RefreshToken] != user.ID {
		t.Fatal("new refresh token not persisted")
	}

	// The revoked token no longer works
	if _, err := svc.RefreshToken(context.Background(), pair.RefreshToken); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for a revoked token, got %v", err)
	}
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	svc := NewAuthService(users, tokens, testJWTService())

	user, pair, err := svc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "hana@campus.edu",
		Password: "Sup3rSecret!",
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(context.Background(), user.ID); err != nil {
		t.Fatal(err)
	}
	if len(tokens.tokens) != 0 {
		t.Fatalf("all refresh tokens should be gone, %d remain", len(tokens.tokens))
	}
	if _, err := svc.RefreshToken(context.Background(), pair.RefreshToken); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid after logout, got %v", err)
	}
}

func TestPurgeExpiredTokensKeepsLiveOnes(t *testing.T) {
	tokens := newFakeTokenRepo()
	svc := NewAuthService(newFakeUserRepo(), tokens, testJWTService())

	ctx := context.Background()
	if err := tokens.StoreRefreshToken(ctx, 1, "stale", time.Now().Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := tokens.StoreRefreshToken(ctx, 1, "live", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	if err := svc.PurgeExpiredTokens(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatal("expected the expired token to be purged")
	}
	if _, ok := tokens.tokens["live"]; !ok {
		t.Fatal("expected the live token to survive the purge")
	}
}
