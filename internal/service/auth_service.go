package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Princessdada/Blogging-API/internal/domain"
	"github.com/Princessdada/Blogging-API/internal/util"
	"github.com/Princessdada/Blogging-API/pkg/token"
)

// authService implements domain.AuthService over a UserRepository and a
// token manager.
type authService struct {
	users  domain.UserRepository
	tokens token.Manager
	log    *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens token.Manager, log *zap.Logger) domain.AuthService {
	return &authService{users: users, tokens: tokens, log: log}
}

// Signup creates a new user account and issues its first token.
func (s *authService) Signup(req domain.SignupRequest) (*domain.AuthResult, error) {
	_, err := s.users.GetByEmail(req.Email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.log.Info("user signed up", zap.Uint("user_id", user.ID))
	return &domain.AuthResult{Token: tok, User: user}, nil
}

// Login authenticates a user by email and password. Unknown emails and wrong
// passwords produce the same error.
func (s *authService) Login(email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := util.CheckPassword(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	s.log.Info("user logged in", zap.Uint("user_id", user.ID))
	return &domain.AuthResult{Token: tok, User: user}, nil
}

// Logout denylists the presented token until it expires. Requires a
// configured denylist backend.
func (s *authService) Logout(tokenString string) error {
	return s.tokens.Revoke(context.Background(), tokenString)
}
