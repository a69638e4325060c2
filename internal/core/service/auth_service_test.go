package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/courseify/course-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts  map[string]*domain.Account // keyed by role + "/" + username
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func accountKey(role, username string) string {
	return role + "/" + username
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	clone.PurchasedCourses = append([]string(nil), a.PurchasedCourses...)
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	key := accountKey(account.Role, account.Username)
	if _, exists := r.accounts[key]; exists {
		return nil, domain.ErrAccountExists
	}
	stored := cloneAccount(account)
	stored.ID = account.Username
	r.accounts[key] = stored
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, role, username string) (*domain.Account, error) {
	a, ok := r.accounts[accountKey(role, username)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) AddPurchase(_ context.Context, username, courseID string) error {
	a, ok := r.accounts[accountKey(domain.RoleUser, username)]
	if !ok {
		return domain.ErrAccountNotFound
	}
	for _, id := range a.PurchasedCourses {
		if id == courseID {
			return nil
		}
	}
	a.PurchasedCourses = append(a.PurchasedCourses, courseID)
	return nil
}

var discardLogger = zerolog.Nop()

func newAuthService(repo *stubAccountRepo) *AuthService {
	return NewAuthService(repo, NewTokenAuthority("secret", time.Hour), discardLogger)
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	result, err := svc.Signup(context.Background(), domain.RoleUser, "alice", "p1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.Message != "User created successfully" {
		t.Errorf("unexpected message: %q", result.Message)
	}

	claims, err := NewTokenAuthority("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

// The original system stored passwords as given. Hashing here is a deliberate
// hardening: the stored secret must not equal the plaintext password.
func TestAuthService_Signup_StoresHashNotPlaintext(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), domain.RoleAdmin, "root", "hunter2"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	stored := repo.accounts[accountKey(domain.RoleAdmin, "root")]
	if stored.PasswordHash == "hunter2" {
		t.Fatal("password stored as plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), domain.RoleUser, "alice", "p1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), domain.RoleUser, "alice", "p2"); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

// Admins and users are distinct collections: the same username may exist in both.
func TestAuthService_Signup_SameUsernameAcrossVariants(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), domain.RoleAdmin, "alice", "p1"); err != nil {
		t.Fatalf("admin signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), domain.RoleUser, "alice", "p2"); err != nil {
		t.Fatalf("user signup with same username failed: %v", err)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	if _, err := svc.Signup(context.Background(), domain.RoleUser, "", "p1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "superuser", "alice", "p1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Signup(context.Background(), domain.RoleAdmin, "carol", "s3cret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), domain.RoleAdmin, "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := NewTokenAuthority("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("expected role %q, got %q", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Signup(context.Background(), domain.RoleUser, "dave", "goodpass")
	if _, err := svc.Login(context.Background(), domain.RoleUser, "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	if _, err := svc.Login(context.Background(), domain.RoleUser, "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// A user account must not satisfy an admin login even with the right password.
func TestAuthService_Login_VariantIsolation(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Signup(context.Background(), domain.RoleUser, "eve", "pass")
	if _, err := svc.Login(context.Background(), domain.RoleAdmin, "eve", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
