package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "unit-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "hana@campus.edu", RoleType: models.RoleStudent}

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}
	if access == "" || refresh == "" {
		t.Fatal("token pair must not be empty")
	}
	if expiresIn != 3600 || refreshExpiresIn != 720*3600 {
		t.Fatalf("unexpected expirations: %d / %d", expiresIn, refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 7 || claims.Email != "hana@campus.edu" || claims.RoleType != string(models.RoleStudent) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 7, Email: "hana@campus.edu", RoleType: models.RoleStudent}

	access, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ValidateAndExtractClaims(access)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 7, Email: "hana@campus.edu", RoleType: models.RoleStudent}
	access, _, _, _, err := testService(time.Hour).GenerateTokenPair(user)
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "campushub.test",
	})
	if _, err := other.ValidateAndExtractClaims(access); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatal(err)
	}
	if token != "abc.def.ghi" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("empty header should fail with ErrInvalidFormat, got %v", err)
	}
	if _, err := ExtractBearerToken("Token abc"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("non-bearer header should fail with ErrInvalidFormat, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "Sup3rSecret!" {
		t.Fatal("hash must differ from the plaintext")
	}
	if !CheckPassword(hash, "Sup3rSecret!") {
		t.Fatal("correct password should verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password must not verify")
	}
}
