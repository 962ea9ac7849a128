package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	tokenrepo "storefront/internal/repository/token"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles admin console login and token validation.
type Service struct {
	users     userRepo
	tokens    *tokenManager
	accessTTL time.Duration
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

func New(users userRepo, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:     users,
		tokens:    newTokenManager(tokens),
		accessTTL: 24 * time.Hour,
	}
}

// LoginResult carries the issued bearer token and the authenticated user.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *user}, nil
}

// Authenticate resolves a bearer token to the owning user id.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return "", ErrInvalidToken
	}
	return meta.UserID, nil
}
