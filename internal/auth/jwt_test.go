package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/serunimart/api/internal/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()
	email := "admin@serunimart.com"
	role := "ADMIN"

	token, err := auth.GenerateToken(secret, userID, email, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID: got %v, want %v", claims.UserID, userID)
	}
	if claims.Email != email {
		t.Errorf("email: got %v, want %v", claims.Email, email)
	}
	if claims.Role != role {
		t.Errorf("role: got %v, want %v", claims.Role, role)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret-a", uuid.New(), "staff@serunimart.com", "STAFF")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateToken("secret-b", token)
	if err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateTokenWithInvalidString(t *testing.T) {
	_, err := auth.ValidateToken("secret", "not-a-jwt")
	if err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	token, err := auth.GenerateRefreshToken(secret, userID)
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	subject, err := auth.ValidateRefreshToken(secret, token)
	if err != nil {
		t.Fatalf("validate refresh token: %v", err)
	}
	if subject != userID {
		t.Errorf("subject: got %v, want %v", subject, userID)
	}
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	secret := "test-secret"

	token, err := auth.GenerateRefreshToken(secret, uuid.New())
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	// A long-lived refresh token must never authenticate requests.
	if _, err := auth.ValidateToken(secret, token); err == nil {
		t.Fatal("expected refresh token to fail access validation")
	}
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	secret := "test-secret"

	token, err := auth.GenerateToken(secret, uuid.New(), "admin@serunimart.com", "ADMIN")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := auth.ValidateRefreshToken(secret, token); err == nil {
		t.Fatal("expected access token to fail refresh validation")
	}
}
