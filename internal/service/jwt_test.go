package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWT_RoundTrip(t *testing.T) {
	InitJWTWithSecret("test-secret")

	userID := uuid.NewString()
	token, err := GenerateJWT(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	got, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got != userID {
		t.Fatalf("expected subject %s, got %s", userID, got)
	}
}

func TestJWT_Garbage(t *testing.T) {
	InitJWTWithSecret("test-secret")

	if _, err := ParseJWT("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	InitJWTWithSecret("secret-one")
	token, err := GenerateJWT(uuid.NewString())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	InitJWTWithSecret("secret-two")
	if _, err := ParseJWT(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}
