package token

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	tm := NewManager("super-secret", time.Hour, nil)

	tok, err := tm.Issue(42, "ada@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	claims, err := tm.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tm := NewManager("secret", -time.Second, nil)

	tok, err := tm.Issue(1, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = tm.Verify(context.Background(), tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewManager("right-secret", time.Hour, nil)
	verifier := NewManager("wrong-secret", time.Hour, nil)

	tok, err := issuer.Issue(1, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	_, err = verifier.Verify(context.Background(), tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	tm := NewManager("k", time.Hour, nil)
	if _, err := tm.Verify(context.Background(), "not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestRevoke_WithoutBackend(t *testing.T) {
	t.Parallel()

	tm := NewManager("k", time.Hour, nil)
	tok, err := tm.Issue(1, "a@b.c")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if err := tm.Revoke(context.Background(), tok); !errors.Is(err, ErrRevocationUnavailable) {
		t.Fatalf("expected ErrRevocationUnavailable, got %v", err)
	}
}
