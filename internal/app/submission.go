package app

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"

	"mingle_onboarding/internal/domain"
)

// SubmissionService builds the fixed-schema payload from posted form fields
// and dispatches it to the onboarding API. Each call is independent: nothing
// is cached, retried, or persisted.
type SubmissionService struct {
	api      domain.OnboardAPI
	defaults domain.SubmissionDefaults
}

func NewSubmissionService(api domain.OnboardAPI) *SubmissionService {
	return &SubmissionService{api: api, defaults: domain.StandardDefaults()}
}

// Submit returns the raw upstream response body on success. On failure the
// error is suitable for Classify.
func (s *SubmissionService) Submit(ctx context.Context, form url.Values) (json.RawMessage, error) {
	p := BuildPayload(form, s.defaults)

	log.Debug().
		Str("profileName", p.ProfileName).
		Str("city", p.City).
		Str("language", p.Language).
		Str("agencyId", p.AgencyID).
		Msg("dispatching onboarding payload")

	raw, err := s.api.CreateHost(ctx, p)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
