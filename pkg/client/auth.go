package client

import (
	"context"
	"net/http"
)

// AuthResult is the body of a successful login or signup.
type AuthResult struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	ExpiresIn    string   `json:"expiresIn,omitempty"`
	User         Document `json:"user"`
}

// SignupInput carries the credentials and any profile fields to store. Empty fields are
// not sent.
type SignupInput struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Name          string `json:"name,omitempty"`
	RollNo        string `json:"rollNo,omitempty"`
	Branch        string `json:"branch,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Hostel        string `json:"hostel,omitempty"`
	RoomNumber    string `json:"roomNumber,omitempty"`
	Batch         string `json:"batch,omitempty"`
	BloodGroup    string `json:"bloodGroup,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
}

type AuthClient struct {
	c *Client
}

// Login signs in and persists the returned token and user.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := a.c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	if err := a.persist(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers and persists the returned token and user.
func (a *AuthClient) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	var out AuthResult
	if err := a.c.do(ctx, http.MethodPost, "/auth/signup", in, &out); err != nil {
		return nil, err
	}
	if err := a.persist(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) persist(res *AuthResult) error {
	if res.Token == "" {
		return nil
	}
	return a.c.tokens.Save(res.Token, res.User)
}

// Verify returns the decoded claims of token.
func (a *AuthClient) Verify(ctx context.Context, token string) (Document, error) {
	var out struct {
		User Document `json:"user"`
	}
	if err := a.c.do(ctx, http.MethodPost, "/auth/verify", map[string]string{"token": token}, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Logout forgets the persisted token and user. It makes no request.
func (a *AuthClient) Logout() error {
	return a.c.tokens.Clear()
}

// Token returns the persisted token, or "".
func (a *AuthClient) Token() string {
	token, _, _ := a.c.tokens.Load()
	return token
}

// User returns the persisted user, or nil.
func (a *AuthClient) User() Document {
	_, user, _ := a.c.tokens.Load()
	return user
}
