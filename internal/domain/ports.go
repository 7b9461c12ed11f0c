package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

// UpstreamError is a non-2xx reply from the onboarding API. Body holds the
// raw response body (JSON or an HTML error page); the error classifier needs
// it to pick a user-facing message.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d", e.Status)
}

type OnboardAPI interface {
	// CreateHost posts one onboarding payload and returns the raw upstream
	// response body on success. Non-2xx responses come back as errors that
	// still carry the response body so the caller can classify them.
	CreateHost(ctx context.Context, p OnboardingPayload) (json.RawMessage, error)

	// ListAgencies fetches the full agency list.
	ListAgencies(ctx context.Context) ([]Agency, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
