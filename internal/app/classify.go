package app

import (
	"encoding/json"
	"errors"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"mingle_onboarding/internal/domain"
)

// Canned user-facing messages for recognized upstream failures.
const (
	MsgMissingRequired  = "Required fields are missing. Please fill in all mandatory fields."
	MsgBadHobbies       = "Data format error. Please try again with properly formatted hobbies."
	MsgBadLanguages     = "Data format error. Please try again with properly formatted languages."
	MsgServerValidation = "Server validation error. Please check your data and try again."
	MsgFallback         = "Registration failed. Please try again."
)

// Known marker substrings inside upstream HTML error pages. The onboarding
// API answers some validation failures with a rendered error page instead of
// JSON; these are the phrases it is known to emit.
const (
	htmlMarker           = "<!DOCTYPE html>"
	markerMissingFields  = "phoneNumber, name, profileName, city &amp; hostType are required"
	markerHobbiesSplit   = "hobbies.split is not a function"
	markerLanguagesSplit = "language.split is not a function"
)

// Classification is the outcome of mapping a heterogeneous upstream failure
// to one user-facing message. Kind is a stable label used for metrics.
type Classification struct {
	Kind    string
	Message string
}

// stripMarkup removes any markup from upstream-provided text before it is
// placed in the page's error slot.
var stripMarkup = bluemonday.StrictPolicy()

// Classify maps a failed dispatch to exactly one user-facing message.
// Priority order: HTML-page markers first, then structured JSON attributes,
// then connection-level failures, then a generic fallback.
func Classify(err error) Classification {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		body := string(ue.Body)

		if strings.Contains(body, htmlMarker) {
			switch {
			case strings.Contains(body, markerMissingFields):
				return Classification{Kind: "missing_required", Message: MsgMissingRequired}
			case strings.Contains(body, markerHobbiesSplit):
				return Classification{Kind: "bad_hobbies", Message: MsgBadHobbies}
			case strings.Contains(body, markerLanguagesSplit):
				return Classification{Kind: "bad_languages", Message: MsgBadLanguages}
			default:
				return Classification{Kind: "server_validation", Message: MsgServerValidation}
			}
		}

		var structured struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(ue.Body, &structured) == nil {
			if structured.Message != "" {
				return Classification{Kind: "upstream_message", Message: cleanUpstreamText(structured.Message)}
			}
			if structured.Error != "" {
				return Classification{Kind: "upstream_error", Message: cleanUpstreamText(structured.Error)}
			}
		}
		return Classification{Kind: "unclassified", Message: MsgFallback}
	}

	if err != nil {
		// no response at all: connection-level failure
		return Classification{Kind: "network", Message: "Network error: " + cleanUpstreamText(err.Error())}
	}
	return Classification{Kind: "unclassified", Message: MsgFallback}
}

// cleanUpstreamText strips tags and re-resolves entities so plain text passes
// through verbatim.
func cleanUpstreamText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripMarkup.Sanitize(s)))
}
