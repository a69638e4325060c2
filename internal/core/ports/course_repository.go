package ports

import (
	"context"

	"github.com/courseify/course-api/internal/core/domain"
)

// CourseRepository defines persistence operations for catalog items.
type CourseRepository interface {
	// Create inserts the course and returns its generated id (ObjectID hex).
	Create(ctx context.Context, course *domain.Course) (string, error)
	// Update replaces the mutable fields of an existing course.
	Update(ctx context.Context, id string, course *domain.Course) error
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns all courses; when publishedOnly is set, only those with the
	// published flag.
	List(ctx context.Context, publishedOnly bool) ([]*domain.Course, error)
	// FindByIDs returns the courses whose id appears in ids. Missing ids are
	// skipped, not errors: course documents are never deleted by the API but a
	// purchase set may reference ids removed out of band.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error)
}
