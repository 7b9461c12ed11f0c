package app

import (
	"context"
	"time"

	"mingle_onboarding/internal/domain"
)

const agencyCacheKey = "agencies:all"

// AgencyService serves the agency list the form's selection control is
// populated from, caching the upstream listing for a configurable TTL.
type AgencyService struct {
	api      domain.OnboardAPI
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewAgencyService(api domain.OnboardAPI, c domain.Cache, ttl time.Duration) *AgencyService {
	return &AgencyService{api: api, cache: c, cacheTTL: ttl}
}

func (s *AgencyService) List(ctx context.Context) ([]domain.Agency, error) {
	var cached []domain.Agency
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, agencyCacheKey, &cached); ok {
			return cached, nil
		}
	}

	as, err := s.api.ListAgencies(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, agencyCacheKey, as, int(s.cacheTTL.Seconds()))
	}
	return as, nil
}
