package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestVerify_ValidToken(t *testing.T) {
	tokenString, err := Sign(testSecret, "player-1", "alice", time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := NewJWTVerifier(testSecret).Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.PlayerID != "player-1" {
		t.Errorf("PlayerID = %q, want player-1", claims.PlayerID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want alice", claims.Username)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tokenString, err := Sign("other-secret", "player-1", "alice", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewJWTVerifier(testSecret).Verify(tokenString); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	tokenString, err := Sign(testSecret, "player-1", "alice", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewJWTVerifier(testSecret).Verify(tokenString); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	if _, err := NewJWTVerifier(testSecret).Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingPlayerID(t *testing.T) {
	tokenString, err := Sign(testSecret, "", "alice", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewJWTVerifier(testSecret).Verify(tokenString); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for empty id, got %v", err)
	}
}
