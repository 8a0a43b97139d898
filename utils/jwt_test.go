package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "rider@example.com", "passenger", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "rider@example.com" || claims.Role != "passenger" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "rider@example.com", "passenger", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ExtractClaims(token); err == nil {
		t.Fatal("expired token should not validate")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ExtractClaims("not.a.token"); err == nil {
		t.Fatal("garbage token should not validate")
	}
}
