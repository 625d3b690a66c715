package service

import (
	"context"
	"fmt"

	"github.com/buenrollo/spots-admin/internal/domain"
)

const defaultSubmissionLimit = 50

type SubmissionRepository interface {
	FindRecent(ctx context.Context, limit int) ([]domain.Submission, error)
	FindBySectionID(ctx context.Context, sectionID uint, limit int) ([]domain.Submission, error)
}

// SubmissionService exposes the journal for the console's audit view.
type SubmissionService struct {
	repo SubmissionRepository
}

func NewSubmissionService(repo SubmissionRepository) *SubmissionService {
	return &SubmissionService{
		repo: repo,
	}
}

func (s *SubmissionService) GetRecent(ctx context.Context, limit int) ([]domain.Submission, error) {
	if limit <= 0 || limit > defaultSubmissionLimit {
		limit = defaultSubmissionLimit
	}

	submissions, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRecent -> %w", err)
	}

	return submissions, nil
}

func (s *SubmissionService) GetBySection(ctx context.Context, sectionID uint, limit int) ([]domain.Submission, error) {
	if limit <= 0 || limit > defaultSubmissionLimit {
		limit = defaultSubmissionLimit
	}

	submissions, err := s.repo.FindBySectionID(ctx, sectionID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySectionID -> %w", err)
	}

	return submissions, nil
}
