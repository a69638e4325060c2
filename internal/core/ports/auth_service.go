package ports

import "context"

// AuthResult carries the outcome of a successful signup or login.
type AuthResult struct {
	Message string
	Token   string
}

// AuthService implements signup and login for both account variants.
type AuthService interface {
	Signup(ctx context.Context, role, username, password string) (*AuthResult, error)
	Login(ctx context.Context, role, username, password string) (*AuthResult, error)
}
