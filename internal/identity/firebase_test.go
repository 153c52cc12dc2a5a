package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newToolkitServer(t *testing.T, handler func(w http.ResponseWriter, method string, body passwordRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "web-key" {
			t.Errorf("missing api key in %s", r.URL)
		}
		var body passwordRequest
		json.NewDecoder(r.Body).Decode(&body)
		if !body.ReturnSecureToken {
			t.Errorf("returnSecureToken not set")
		}
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		handler(w, method, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFirebaseSignInSuccess(t *testing.T) {
	srv := newToolkitServer(t, func(w http.ResponseWriter, method string, body passwordRequest) {
		if method != "accounts:signInWithPassword" {
			t.Errorf("unexpected method %s", method)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"idToken":      "id-token",
			"refreshToken": "refresh",
			"expiresIn":    "3600",
			"localId":      "uid-1",
			"email":        body.Email,
		})
	})

	p := NewFirebaseProvider("web-key", nil)
	p.Endpoint = srv.URL

	s, err := p.SignIn(context.Background(), "a@nitgoa.ac.in", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if s.IDToken != "id-token" || s.UID != "uid-1" || s.Email != "a@nitgoa.ac.in" || s.ExpiresIn != "3600" {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestFirebaseRejectionPassesMessageThrough(t *testing.T) {
	srv := newToolkitServer(t, func(w http.ResponseWriter, method string, body passwordRequest) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 400, "message": "EMAIL_EXISTS"},
		})
	})

	p := NewFirebaseProvider("web-key", nil)
	p.Endpoint = srv.URL

	_, err := p.SignUp(context.Background(), "a@nitgoa.ac.in", "secret123")
	var rejected *RejectedError
	if !errors.As(err, &rejected) || rejected.Message != "EMAIL_EXISTS" {
		t.Fatalf("expected EMAIL_EXISTS rejection, got %v", err)
	}
}

func TestFirebaseRejectionFallbackMessage(t *testing.T) {
	srv := newToolkitServer(t, func(w http.ResponseWriter, method string, body passwordRequest) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	p := NewFirebaseProvider("web-key", nil)
	p.Endpoint = srv.URL

	_, err := p.SignIn(context.Background(), "a@nitgoa.ac.in", "x")
	var rejected *RejectedError
	if !errors.As(err, &rejected) || rejected.Message != "Authentication failed" {
		t.Fatalf("expected fallback rejection, got %v", err)
	}

	_, err = p.SignUp(context.Background(), "a@nitgoa.ac.in", "x")
	if !errors.As(err, &rejected) || rejected.Message != "Signup failed" {
		t.Fatalf("expected signup fallback rejection, got %v", err)
	}
}

func TestFirebaseTransportErrorIsNotRejection(t *testing.T) {
	p := NewFirebaseProvider("web-key", nil)
	p.Endpoint = "http://127.0.0.1:1"

	_, err := p.SignIn(context.Background(), "a@nitgoa.ac.in", "secret123")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		t.Fatalf("transport failure must not be a rejection: %v", err)
	}
}

func TestFirebaseMissingAPIKey(t *testing.T) {
	p := NewFirebaseProvider("", nil)
	if _, err := p.SignIn(context.Background(), "a@nitgoa.ac.in", "x"); err == nil {
		t.Fatal("expected error without api key")
	}
}
