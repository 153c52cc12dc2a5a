package services

import (
	"context"
	"fmt"
	"log"

	"github.com/nitgconnect/backend/internal/identity"
	"github.com/nitgconnect/backend/internal/models"
)

// AuthService combines the identity provider with the users collection.
type AuthService struct {
	provider identity.Provider
	users    *UserService
}

func NewAuthService(provider identity.Provider, users *UserService) *AuthService {
	return &AuthService{provider: provider, users: users}
}

// Login signs in with the provider and attaches the stored profile when one can be read. A
// provider refusal is returned as *identity.RejectedError.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	session, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user := map[string]interface{}{}
	profile, err := s.users.Profile(ctx, session.UID)
	if err != nil {
		log.Printf("[Login] Error loading profile for %s: %v", session.UID, err)
	}
	for k, v := range profile {
		if k == "id" {
			continue
		}
		user[k] = v
	}
	user["uid"] = session.UID
	user["email"] = session.Email

	return &models.AuthResponse{
		Token:        session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         user,
	}, nil
}

// Signup registers the account and writes its profile. The profile write failing after the
// account exists is returned as an error.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	session, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	supplied := req.SuppliedFields()
	email := session.Email
	if email == "" {
		email = req.Email
	}
	if err := s.users.CreateProfile(ctx, session.UID, email, supplied); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := map[string]interface{}{"uid": session.UID, "email": email}
	for k, v := range supplied {
		user[k] = v
	}

	return &models.AuthResponse{
		Token:        session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		User:         user,
	}, nil
}

// Verify returns the decoded claims of token. Invalid tokens match identity.ErrInvalidToken.
func (s *AuthService) Verify(ctx context.Context, token string) (identity.Claims, error) {
	return s.provider.Verify(ctx, token)
}
