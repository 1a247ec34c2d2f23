package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/flight-reservation-api/internal/model"
	"github.com/iliyamo/flight-reservation-api/internal/repository"
	"github.com/iliyamo/flight-reservation-api/internal/utils"
)

// UserStore is the slice of the user repository the authenticator needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthService validates credentials and issues access tokens. It holds no
// mutable state: token issuance is a pure function of the user record, the
// injected signing secret and the clock.
type AuthService struct {
	users  UserStore
	secret string
	ttlMin int
}

func NewAuthService(users UserStore, secret string, ttlMin int) *AuthService {
	return &AuthService{users: users, secret: secret, ttlMin: ttlMin}
}

// TokenUser is the user summary returned alongside a fresh token. UserID
// equals the username; usernames are the stable identifier in this system.
type TokenUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult is the login response envelope.
type LoginResult struct {
	Token string    `json:"token"`
	User  TokenUser `json:"user"`
}

// ValidateCredentials looks up exactly one user by exact username match
// and verifies the password against the stored bcrypt hash. Both an
// unknown user and a wrong password return ErrInvalidCredentials; store
// failures propagate as-is.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken signs an access token for an already-validated user.
func (s *AuthService) IssueToken(user *model.User) (*LoginResult, error) {
	access, err := utils.NewAccessToken(s.secret, user, s.ttlMin)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &LoginResult{
		Token: access.Token,
		User: TokenUser{
			UserID:   user.Username,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// Login validates credentials and issues a token in one step.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.ValidateCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.IssueToken(u)
}
