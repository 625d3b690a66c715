package repository

import (
	"context"
	"fmt"

	"github.com/buenrollo/spots-admin/internal/domain"
	"github.com/buenrollo/spots-admin/internal/repository/dao"
)

type SubmissionDAO interface {
	Insert(ctx context.Context, submission dao.Submission) (dao.Submission, error)
	FindRecent(ctx context.Context, limit int) ([]dao.Submission, error)
	FindBySectionID(ctx context.Context, sectionID uint, limit int) ([]dao.Submission, error)
}

type SubmissionRepository struct {
	dao SubmissionDAO
}

func NewSubmissionRepository(dao SubmissionDAO) *SubmissionRepository {
	return &SubmissionRepository{
		dao: dao,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	created, err := r.dao.Insert(ctx, dao.Submission{
		EditorEmail:  submission.EditorEmail,
		Action:       submission.Action,
		SpotID:       submission.SpotID,
		SpotName:     submission.SpotName,
		SectionID:    submission.SectionID,
		Outcome:      submission.Outcome,
		RemoteStatus: submission.RemoteStatus,
	})
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return toDomain(created), nil
}

func (r *SubmissionRepository) FindRecent(ctx context.Context, limit int) ([]domain.Submission, error) {
	found, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	submissions := make([]domain.Submission, 0, len(found))
	for _, s := range found {
		submissions = append(submissions, toDomain(s))
	}

	return submissions, nil
}

func (r *SubmissionRepository) FindBySectionID(ctx context.Context, sectionID uint, limit int) ([]domain.Submission, error) {
	found, err := r.dao.FindBySectionID(ctx, sectionID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySectionID -> %w", err)
	}

	submissions := make([]domain.Submission, 0, len(found))
	for _, s := range found {
		submissions = append(submissions, toDomain(s))
	}

	return submissions, nil
}

func toDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		ID:           s.ID,
		EditorEmail:  s.EditorEmail,
		Action:       s.Action,
		SpotID:       s.SpotID,
		SpotName:     s.SpotName,
		SectionID:    s.SectionID,
		Outcome:      s.Outcome,
		RemoteStatus: s.RemoteStatus,
		CreatedAt:    s.CreatedAt,
	}
}
