package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// AuthService implements signup and login for both account variants.
// Credentials are stored as bcrypt hashes; the original system compared
// plaintext, which is reproduced nowhere here.
type AuthService struct {
	repo   ports.AccountRepository
	tokens *TokenAuthority
	log    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, tokens *TokenAuthority, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log}
}

// Signup creates an account in the variant's collection and issues a token.
// A taken username fails with domain.ErrAccountExists.
func (s *AuthService) Signup(ctx context.Context, role, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(username, role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("username", username).Str("role", role).Msg("account created")

	return &ports.AuthResult{Message: signupMessage(role), Token: token}, nil
}

// Login authenticates against the stored hash and issues a fresh token.
// Unknown usernames and wrong passwords both fail with
// domain.ErrInvalidCredentials so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, role, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, role, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &ports.AuthResult{Message: loginMessage(role), Token: token}, nil
}

func signupMessage(role string) string {
	if role == domain.RoleAdmin {
		return "Admin created successfully!"
	}
	return "User created successfully"
}

func loginMessage(role string) string {
	if role == domain.RoleAdmin {
		return "Logged in successfully!"
	}
	return "Logged in successfully"
}
