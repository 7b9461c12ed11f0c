package app

import (
	"net/url"
	"strconv"
	"strings"

	"mingle_onboarding/internal/domain"
)

// BuildPayload shapes loosely-typed form input into the fixed upstream
// schema. Fields the form has no UI for always get the values from d; gender
// and agencyId fall back to d only when the posted value is empty.
//
// No server-side re-validation happens here: age is parsed as-is (a failed
// parse becomes 0) and language may come out empty if the client-side gate
// was bypassed. The upstream API owns authoritative validation.
func BuildPayload(form url.Values, d domain.SubmissionDefaults) domain.OnboardingPayload {
	age, _ := strconv.Atoi(strings.TrimSpace(form.Get("age")))

	return domain.OnboardingPayload{
		PhoneNumber:        form.Get("phoneNumber"),
		Name:               form.Get("name"),
		Email:              form.Get("email"),
		ProfileName:        form.Get("profileName"),
		HostType:           d.HostType,
		City:               form.Get("city"),
		State:              form.Get("state"),
		Country:            form.Get("country"),
		Age:                age,
		DOB:                form.Get("dob"),
		Gender:             orDefault(form.Get("gender"), d.Gender),
		Hobbies:            d.Hobbies,
		HostingExperiences: d.HostingExperiences,
		Language:           domain.LanguageInput(form["language"]).Join(),
		Availability:       d.Availability,
		Bio:                d.Bio,
		Occupation:         form.Get("occupation"),
		EducationLevel:     form.Get("educationLevel"),
		AgencyID:           orDefault(form.Get("agencyId"), d.AgencyID),
		ProfilePhoto:       d.ProfilePhoto,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
