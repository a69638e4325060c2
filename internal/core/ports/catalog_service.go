package ports

import (
	"context"

	"github.com/courseify/course-api/internal/core/domain"
)

// CourseInput carries the fields accepted when creating or updating a course.
type CourseInput struct {
	Title       string
	Description string
	Price       float64
	ImageLink   string
	Published   bool
}

// CatalogService defines use-case operations on the course catalog.
type CatalogService interface {
	Create(ctx context.Context, input CourseInput) (string, error)
	Update(ctx context.Context, courseID string, input CourseInput) error
	// ListAll returns every course, published or not (admin view).
	ListAll(ctx context.Context) ([]*domain.Course, error)
	// ListPublished returns only published courses (user view).
	ListPublished(ctx context.Context) ([]*domain.Course, error)
}
