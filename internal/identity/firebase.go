package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
)

const identityToolkitEndpoint = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider signs users in through the Identity Toolkit REST API and verifies ID tokens
// with the Admin SDK.
type FirebaseProvider struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
	authClient *fbauth.Client
}

func NewFirebaseProvider(apiKey string, authClient *fbauth.Client) *FirebaseProvider {
	return &FirebaseProvider{
		APIKey:   strings.TrimSpace(apiKey),
		Endpoint: identityToolkitEndpoint,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		authClient: authClient,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type passwordResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return p.passwordCall(ctx, "accounts:signInWithPassword", email, password, "Authentication failed")
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return p.passwordCall(ctx, "accounts:signUp", email, password, "Signup failed")
}

func (p *FirebaseProvider) passwordCall(ctx context.Context, method, email, password, fallback string) (*Session, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("identity: missing FIREBASE_WEB_API_KEY")
	}

	body, err := json.Marshal(passwordRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", strings.TrimRight(p.Endpoint, "/"), method, url.QueryEscape(p.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out passwordResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			return nil, &RejectedError{Message: out.Error.Message}
		}
		return nil, &RejectedError{Message: fallback}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("identity: decode %s response: %w", method, decodeErr)
	}
	if out.IDToken == "" || out.LocalID == "" {
		return nil, fmt.Errorf("identity: %s response missing idToken or localId", method)
	}

	return &Session{
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
		UID:          out.LocalID,
		Email:        out.Email,
	}, nil
}

func (p *FirebaseProvider) Verify(ctx context.Context, token string) (Claims, error) {
	if p.authClient == nil {
		return nil, fmt.Errorf("identity: firebase auth client not configured")
	}
	tok, err := p.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := Claims{}
	for k, v := range tok.Claims {
		claims[k] = v
	}
	claims["uid"] = tok.UID
	claims["sub"] = tok.Subject
	claims["iss"] = tok.Issuer
	claims["aud"] = tok.Audience
	claims["iat"] = tok.IssuedAt
	claims["exp"] = tok.Expires
	claims["auth_time"] = tok.AuthTime
	claims["firebase"] = map[string]interface{}{
		"sign_in_provider": tok.Firebase.SignInProvider,
		"identities":       tok.Firebase.Identities,
	}
	return claims, nil
}
