package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const localIssuer = "nitg-connect-local"

type localAccount struct {
	UID          string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// LocalProvider keeps accounts in memory and issues HS256 ID tokens. It mirrors the Firebase
// error messages so clients behave the same against either provider.
type LocalProvider struct {
	mu         sync.RWMutex
	accounts   map[string]*localAccount // uid -> account
	byEmail    map[string]string        // email -> uid
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewLocalProvider(secret string, expiration time.Duration) *LocalProvider {
	if expiration <= 0 {
		expiration = time.Hour
	}
	return &LocalProvider{
		accounts:   make(map[string]*localAccount),
		byEmail:    make(map[string]string),
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if !strings.Contains(email, "@") {
		return nil, &RejectedError{Message: "INVALID_EMAIL"}
	}
	if len(password) < 6 {
		return nil, &RejectedError{Message: "WEAK_PASSWORD : Password should be at least 6 characters"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if _, exists := p.byEmail[email]; exists {
		p.mu.Unlock()
		return nil, &RejectedError{Message: "EMAIL_EXISTS"}
	}
	acct := &localAccount{
		UID:          strings.ReplaceAll(uuid.New().String(), "-", ""),
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    p.now(),
	}
	p.accounts[acct.UID] = acct
	p.byEmail[email] = acct.UID
	p.mu.Unlock()

	return p.session(acct)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	p.mu.RLock()
	uid, exists := p.byEmail[normalizeEmail(email)]
	var acct *localAccount
	if exists {
		acct = p.accounts[uid]
	}
	p.mu.RUnlock()

	if acct == nil {
		return nil, &RejectedError{Message: "INVALID_LOGIN_CREDENTIALS"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, &RejectedError{Message: "INVALID_LOGIN_CREDENTIALS"}
	}
	return p.session(acct)
}

func (p *LocalProvider) session(acct *localAccount) (*Session, error) {
	now := p.now()
	claims := jwt.MapClaims{
		"iss":       localIssuer,
		"aud":       localIssuer,
		"sub":       acct.UID,
		"user_id":   acct.UID,
		"email":     acct.Email,
		"auth_time": now.Unix(),
		"iat":       now.Unix(),
		"exp":       now.Add(p.expiration).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("identity: sign token: %w", err)
	}
	return &Session{
		IDToken:      token,
		RefreshToken: strings.ReplaceAll(uuid.New().String(), "-", ""),
		ExpiresIn:    strconv.FormatInt(int64(p.expiration/time.Second), 10),
		UID:          acct.UID,
		Email:        acct.Email,
	}, nil
}

func (p *LocalProvider) Verify(ctx context.Context, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	claims := Claims{}
	for k, v := range mapClaims {
		claims[k] = v
	}
	uid, _ := mapClaims["sub"].(string)
	if uid == "" {
		return nil, ErrInvalidToken
	}
	claims["uid"] = uid
	return claims, nil
}
