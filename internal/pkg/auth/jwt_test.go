package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/peerconnect/peerconnect/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Email: "jane@peerconnect.app",
		Role:  models.RoleMentor,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "peerconnect.test",
	})

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned an empty token")
	}
	if expiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int(time.Hour.Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "jane@peerconnect.app" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != string(models.RoleMentor) {
		t.Errorf("Role = %q", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(JWTConfig{SecretKey: "secret-a", AccessTokenExp: time.Hour})
	verifier := NewJWTService(JWTConfig{SecretKey: "secret-b", AccessTokenExp: time.Hour})

	token, _, err := issuer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := verifier.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "test-secret", AccessTokenExp: -time.Minute})

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken failed: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}

	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken failed for a bare token: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("err = %v, want ErrInvalidFormat", err)
	}
}
