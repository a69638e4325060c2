package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// CatalogCache abstracts the published-listing cache (Redis).
type CatalogCache interface {
	GetPublished(ctx context.Context) ([]*domain.Course, error)
	SetPublished(ctx context.Context, courses []*domain.Course) error
	Invalidate(ctx context.Context) error
}

// CatalogService implements course create/update/list operations.
type CatalogService struct {
	repo  ports.CourseRepository
	cache CatalogCache
	log   zerolog.Logger
}

// NewCatalogService returns a CatalogService. cache may be nil, in which case
// every published listing hits the repository.
func NewCatalogService(repo ports.CourseRepository, cache CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

// Create inserts a new course and returns its generated id.
func (s *CatalogService) Create(ctx context.Context, input ports.CourseInput) (string, error) {
	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageLink:   input.ImageLink,
		Published:   input.Published,
	}

	id, err := s.repo.Create(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create course")
		return "", err
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("course_id", id).Str("title", input.Title).Bool("published", input.Published).Msg("course created")

	return id, nil
}

// Update replaces the course's fields in place. An unknown or malformed id
// fails with domain.ErrCourseNotFound.
func (s *CatalogService) Update(ctx context.Context, courseID string, input ports.CourseInput) error {
	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageLink:   input.ImageLink,
		Published:   input.Published,
	}

	if err := s.repo.Update(ctx, courseID, course); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.log.Info().Str("course_id", courseID).Msg("course updated")

	return nil
}

// ListAll returns the full catalog, the admin view.
func (s *CatalogService) ListAll(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx, false)
}

// ListPublished returns only published courses, served from the cache when
// warm. Cache failures are logged and fall through to the repository.
func (s *CatalogService) ListPublished(ctx context.Context) ([]*domain.Course, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPublished(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	courses, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list published courses: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetPublished(ctx, courses); err != nil {
			s.log.Warn().Err(err).Msg("failed to warm catalog cache")
		}
	}

	return courses, nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}
