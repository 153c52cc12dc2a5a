package models

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	ProfileFields
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by login and signup. User always carries uid and email.
type AuthResponse struct {
	Token        string                 `json:"token"`
	RefreshToken string                 `json:"refreshToken,omitempty"`
	ExpiresIn    string                 `json:"expiresIn,omitempty"`
	User         map[string]interface{} `json:"user"`
}

type VerifyResponse struct {
	User map[string]interface{} `json:"user"`
}

func (r *SignupRequest) Validate() map[string]string {
	return validateCredentials(r.Email, r.Password)
}

func (r *LoginRequest) Validate() map[string]string {
	return validateCredentials(r.Email, r.Password)
}

func validateCredentials(email, password string) map[string]string {
	errors := make(map[string]string)

	if email == "" {
		errors["email"] = "email is required"
	}
	if password == "" {
		errors["password"] = "password is required"
	}

	return errors
}
