package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Submission struct {
	ID uint `gorm:"primaryKey"`

	EditorEmail  string `gorm:"not null;index"`
	Action       string `gorm:"not null"` // "create" or "update"
	SpotID       uint
	SpotName     string `gorm:"not null"`
	SectionID    uint   `gorm:"not null;index"`
	Outcome      string `gorm:"not null"` // "success" or "failure"
	RemoteStatus int

	CreatedAt time.Time `gorm:"not null"`
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

func (d *SubmissionDAO) Insert(ctx context.Context, submission Submission) (Submission, error) {
	result := d.db.WithContext(ctx).Create(&submission)
	if result.Error != nil {
		return Submission{}, result.Error
	}

	return submission, nil
}

func (d *SubmissionDAO) FindRecent(ctx context.Context, limit int) ([]Submission, error) {
	var submissions []Submission

	result := d.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

func (d *SubmissionDAO) FindBySectionID(ctx context.Context, sectionID uint, limit int) ([]Submission, error) {
	var submissions []Submission

	result := d.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}
