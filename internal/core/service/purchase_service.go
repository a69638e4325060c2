package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/courseify/course-api/internal/core/domain"
	"github.com/courseify/course-api/internal/core/ports"
)

// PurchaseService records course purchases against user accounts.
type PurchaseService struct {
	accounts ports.AccountRepository
	courses  ports.CourseRepository
	log      zerolog.Logger
}

func NewPurchaseService(accounts ports.AccountRepository, courses ports.CourseRepository, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{accounts: accounts, courses: courses, log: log}
}

// Purchase validates that both the course and the account exist, then adds
// the course id to the user's purchase set. The write is a set-insert, so a
// repeated purchase leaves exactly one entry. The existence check and the
// purchase write are separate operations; no delete route exists, so the gap
// between them cannot currently orphan a reference.
func (s *PurchaseService) Purchase(ctx context.Context, username, courseID string) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return fmt.Errorf("purchase course: %w", err)
	}

	if _, err := s.accounts.FindByUsername(ctx, domain.RoleUser, username); err != nil {
		return fmt.Errorf("purchase course: %w", err)
	}

	if err := s.accounts.AddPurchase(ctx, username, courseID); err != nil {
		s.log.Error().Err(err).Str("username", username).Str("course_id", courseID).Msg("failed to record purchase")
		return fmt.Errorf("purchase course: %w", err)
	}

	s.log.Info().Str("username", username).Str("course_id", courseID).Msg("course purchased")

	return nil
}

// ListPurchased resolves the user's purchase set to course records. Missing
// referenced courses are skipped; an empty set yields an empty slice.
func (s *PurchaseService) ListPurchased(ctx context.Context, username string) ([]*domain.Course, error) {
	account, err := s.accounts.FindByUsername(ctx, domain.RoleUser, username)
	if err != nil {
		return nil, fmt.Errorf("list purchased courses: %w", err)
	}

	if len(account.PurchasedCourses) == 0 {
		return []*domain.Course{}, nil
	}

	courses, err := s.courses.FindByIDs(ctx, account.PurchasedCourses)
	if err != nil {
		return nil, fmt.Errorf("list purchased courses: %w", err)
	}
	return courses, nil
}
