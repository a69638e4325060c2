package ports

import (
	"context"

	"github.com/courseify/course-api/internal/core/domain"
)

// AccountRepository persists admin and user accounts. The role passed to each
// method selects the backing collection (admins vs users).
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, role, username string) (*domain.Account, error)

	// AddPurchase adds courseID to the user's purchase set. The write is a
	// set-insert: recording the same course twice leaves a single entry.
	AddPurchase(ctx context.Context, username, courseID string) error
}
