package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/buenrollo/spots-admin/internal/attachment"
	"github.com/buenrollo/spots-admin/internal/cache"
	"github.com/buenrollo/spots-admin/internal/domain"
	"github.com/buenrollo/spots-admin/internal/listings"
)

var (
	ErrSpotNotFound    = listings.ErrSpotNotFound
	ErrSectionNotFound = listings.ErrSectionNotFound

	ErrMissingSpotID      = errors.New("spot id not found")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)

type ListingsClient interface {
	CreateSpot(ctx context.Context, payload *listings.Payload) (domain.Spot, error)
	UpdateSpot(ctx context.Context, spotID uint, payload *listings.Payload) (domain.Spot, error)
	GetSpots(ctx context.Context, sectionID uint) ([]domain.Spot, error)
}

type SubmissionJournal interface {
	Create(ctx context.Context, submission domain.Submission) (domain.Submission, error)
}

type CollectionCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
}

// SpotService drives the editor's submission pipeline: resolve the logo
// reference, build the multipart payload, push it to the listings API,
// journal the outcome, and invalidate the cached spots collection on
// success so listing views re-fetch server truth.
type SpotService struct {
	client  ListingsClient
	journal SubmissionJournal
	cache   CollectionCache

	// inFlight rejects a re-entrant submit for the same editor key while
	// one is still running. The old console only disabled the submit
	// button; this guard does not trust the UI.
	inFlight sync.Map
}

func NewSpotService(client ListingsClient, journal SubmissionJournal, cache CollectionCache) *SpotService {
	return &SpotService{
		client:  client,
		journal: journal,
		cache:   cache,
	}
}

// CreateSpot submits a new spot. The draft must already be validated.
// The service owns the resolver for the rest of the submission and
// releases its staged file on every return path.
func (s *SpotService) CreateSpot(ctx context.Context, editorEmail string, draft domain.SpotDraft, resolver *attachment.Resolver) (domain.Spot, error) {
	defer func() { _ = resolver.Close() }()

	key := fmt.Sprintf("%v/create/%v", editorEmail, draft.SectionID)

	return s.submit(ctx, key, editorEmail, domain.SubmissionActionCreate, draft, resolver)
}

// UpdateSpot submits an edit of an existing spot. A draft without an
// identity fails locally before any network call. The resolver's staged
// file is released on every return path, rejections included.
func (s *SpotService) UpdateSpot(ctx context.Context, editorEmail string, draft domain.SpotDraft, resolver *attachment.Resolver) (domain.Spot, error) {
	defer func() { _ = resolver.Close() }()

	if draft.ID == 0 {
		return domain.Spot{}, ErrMissingSpotID
	}

	key := fmt.Sprintf("%v/update/%v", editorEmail, draft.ID)

	return s.submit(ctx, key, editorEmail, domain.SubmissionActionUpdate, draft, resolver)
}

func (s *SpotService) submit(ctx context.Context, key, editorEmail, action string, draft domain.SpotDraft, resolver *attachment.Resolver) (domain.Spot, error) {
	if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
		return domain.Spot{}, ErrSubmissionInFlight
	}
	defer s.inFlight.Delete(key)

	logo := resolver.Resolve(draft.LogoURL)

	payload, err := listings.BuildSpotPayload(draft, logo)
	if err != nil {
		return domain.Spot{}, fmt.Errorf("listings.BuildSpotPayload -> %w", err)
	}

	var spot domain.Spot
	if action == domain.SubmissionActionUpdate {
		spot, err = s.client.UpdateSpot(ctx, draft.ID, payload)
	} else {
		spot, err = s.client.CreateSpot(ctx, payload)
	}
	if err != nil {
		s.record(ctx, editorEmail, action, draft, domain.SubmissionOutcomeFailure, remoteStatus(err))

		return domain.Spot{}, fmt.Errorf("s.client submit -> %w", err)
	}

	s.record(ctx, editorEmail, action, draft, domain.SubmissionOutcomeSuccess, 0)

	// Invalidation follows success only; a failed or canceled submission
	// leaves the cached collections untouched.
	s.cache.Invalidate(cache.SpotsKey)

	return spot, nil
}

// GetSpots serves a section's listing through the collection cache.
func (s *SpotService) GetSpots(ctx context.Context, sectionID uint) ([]domain.Spot, error) {
	key := cache.SpotsSectionKey(sectionID)
	if cached, ok := s.cache.Get(key); ok {
		if spots, ok := cached.([]domain.Spot); ok {
			return spots, nil
		}
	}

	spots, err := s.client.GetSpots(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("s.client.GetSpots -> %w", err)
	}

	s.cache.Set(key, spots)

	return spots, nil
}

func (s *SpotService) record(ctx context.Context, editorEmail, action string, draft domain.SpotDraft, outcome string, remoteStatus int) {
	// Journal even when the editor's request was canceled mid-flight.
	ctx = context.WithoutCancel(ctx)

	_, err := s.journal.Create(ctx, domain.Submission{
		EditorEmail:  editorEmail,
		Action:       action,
		SpotID:       draft.ID,
		SpotName:     draft.Name,
		SectionID:    draft.SectionID,
		Outcome:      outcome,
		RemoteStatus: remoteStatus,
	})
	if err != nil {
		// The journal is an audit aid; a write failure must not fail the
		// submission itself.
		zap.L().Warn("failed to journal submission", zap.Error(err))
	}
}

func remoteStatus(err error) int {
	var remoteErr *listings.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}

	return 0
}
