package service

import (
	"context"
	"fmt"

	"github.com/buenrollo/spots-admin/internal/cache"
	"github.com/buenrollo/spots-admin/internal/domain"
)

type SectionsClient interface {
	GetSections(ctx context.Context) ([]domain.Section, error)
}

type SectionService struct {
	client SectionsClient
	cache  CollectionCache
}

func NewSectionService(client SectionsClient, cache CollectionCache) *SectionService {
	return &SectionService{
		client: client,
		cache:  cache,
	}
}

func (s *SectionService) GetSections(ctx context.Context) ([]domain.Section, error) {
	if cached, ok := s.cache.Get(cache.SectionsKey); ok {
		if sections, ok := cached.([]domain.Section); ok {
			return sections, nil
		}
	}

	sections, err := s.client.GetSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.client.GetSections -> %w", err)
	}

	s.cache.Set(cache.SectionsKey, sections)

	return sections, nil
}
