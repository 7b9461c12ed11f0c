package domain

import "strings"

// OnboardingPayload is the fixed-schema JSON body sent to the external
// partner-creation endpoint. Field names must match the upstream API exactly.
type OnboardingPayload struct {
	PhoneNumber        string `json:"phoneNumber"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	ProfileName        string `json:"profileName"`
	HostType           string `json:"hostType"`
	City               string `json:"city"`
	State              string `json:"state"`
	Country            string `json:"country"`
	Age                int    `json:"age"`
	DOB                string `json:"dob"`
	Gender             string `json:"gender"`
	Hobbies            string `json:"hobbies"`
	HostingExperiences string `json:"hostingExperiences"`
	Language           string `json:"language"`
	Availability       string `json:"availability"`
	Bio                string `json:"bio"`
	Occupation         string `json:"occupation"`
	EducationLevel     string `json:"educationLevel"`
	AgencyID           string `json:"agencyId"`
	ProfilePhoto       string `json:"profilePhoto"`
}

// SubmissionDefaults holds every value the gateway fills in on its own:
// attributes the form has no UI for, plus fallbacks for optional fields.
// Kept in one place so the mapper stays free of magic constants.
type SubmissionDefaults struct {
	HostType           string
	Gender             string
	Hobbies            string
	HostingExperiences string
	Availability       string
	Bio                string
	ProfilePhoto       string
	AgencyID           string
}

// StandardDefaults returns the fixed values the upstream API expects for
// fields the form intentionally omits.
func StandardDefaults() SubmissionDefaults {
	return SubmissionDefaults{
		HostType:           "solo",
		Gender:             "Female",
		Hobbies:            "General interests",
		HostingExperiences: "New to hosting",
		Availability:       "Flexible timing",
		Bio:                "Enthusiastic host ready to connect with people",
		ProfilePhoto:       "https://your-cdn.com/images/default_profile.jpg",
		AgencyID:           "674fa0e81234abcd56789abd",
	}
}

// LanguageInput is the language field exactly as posted: depending on how the
// form serialized the multi-select it is either one comma-joined value or
// repeated values. Normalize at the boundary via Join instead of branching
// on shape at use sites.
type LanguageInput []string

// Join renders the wire representation: a single value passes through
// unchanged, multiple values are joined with ", ", none yields "".
func (l LanguageInput) Join() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0]
	default:
		return strings.Join(l, ", ")
	}
}

// Agency is an externally owned organization a partner may select. The id is
// opaque; the gateway never validates a submitted agencyId against the list.
type Agency struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
