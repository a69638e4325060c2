package ports

import (
	"context"

	"github.com/courseify/course-api/internal/core/domain"
)

// PurchaseService links user accounts to catalog courses.
type PurchaseService interface {
	// Purchase records courseID against the user's purchase set. The course
	// must exist (domain.ErrCourseNotFound) and so must the account
	// (domain.ErrAccountNotFound; the token alone does not guarantee the
	// account still exists).
	Purchase(ctx context.Context, username, courseID string) error
	// ListPurchased resolves the user's purchase set to full course records.
	// An empty purchase set yields an empty slice, not an error.
	ListPurchased(ctx context.Context, username string) ([]*domain.Course, error)
}
