package identity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLocalSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	p := NewLocalProvider("test-secret", time.Hour)

	up, err := p.SignUp(ctx, "Student@NITGoa.ac.in", "secret123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if up.UID == "" || up.IDToken == "" || up.Email != "student@nitgoa.ac.in" {
		t.Fatalf("unexpected session: %+v", up)
	}
	if up.ExpiresIn != "3600" {
		t.Fatalf("ExpiresIn = %q", up.ExpiresIn)
	}

	in, err := p.SignIn(ctx, "student@nitgoa.ac.in", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if in.UID != up.UID {
		t.Fatalf("SignIn uid %s != SignUp uid %s", in.UID, up.UID)
	}

	claims, err := p.Verify(ctx, in.IDToken)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UID() != up.UID || claims.Email() != "student@nitgoa.ac.in" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestLocalRejections(t *testing.T) {
	ctx := context.Background()
	p := NewLocalProvider("test-secret", time.Hour)
	if _, err := p.SignUp(ctx, "a@nitgoa.ac.in", "secret123"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"duplicate email", func() error { _, err := p.SignUp(ctx, "A@nitgoa.ac.in", "another1"); return err }, "EMAIL_EXISTS"},
		{"weak password", func() error { _, err := p.SignUp(ctx, "b@nitgoa.ac.in", "123"); return err }, "WEAK_PASSWORD : Password should be at least 6 characters"},
		{"invalid email", func() error { _, err := p.SignUp(ctx, "not-an-email", "secret123"); return err }, "INVALID_EMAIL"},
		{"wrong password", func() error { _, err := p.SignIn(ctx, "a@nitgoa.ac.in", "wrong"); return err }, "INVALID_LOGIN_CREDENTIALS"},
		{"unknown email", func() error { _, err := p.SignIn(ctx, "ghost@nitgoa.ac.in", "secret123"); return err }, "INVALID_LOGIN_CREDENTIALS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var rejected *RejectedError
			if !errors.As(err, &rejected) {
				t.Fatalf("expected RejectedError, got %v", err)
			}
			if rejected.Message != tt.want {
				t.Fatalf("message = %q, want %q", rejected.Message, tt.want)
			}
		})
	}
}

func TestLocalVerifyRejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	p := NewLocalProvider("test-secret", time.Minute)
	s, _ := p.SignUp(ctx, "c@nitgoa.ac.in", "secret123")

	other := NewLocalProvider("other-secret", time.Minute)
	if _, err := other.Verify(ctx, s.IDToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign signature: expected ErrInvalidToken, got %v", err)
	}

	if _, err := p.Verify(ctx, "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: expected ErrInvalidToken, got %v", err)
	}

	p.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := p.Verify(ctx, s.IDToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired: expected ErrInvalidToken, got %v", err)
	}
}
