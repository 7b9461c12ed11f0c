package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	httpserver "mingle_onboarding/internal/adapters/http_server"
	"mingle_onboarding/internal/app"
	"mingle_onboarding/internal/domain"
)

type fakeAPI struct {
	onboardResp json.RawMessage
	onboardErr  error
	agencies    []domain.Agency
	agencyErr   error
	lastPayload domain.OnboardingPayload
}

func (f *fakeAPI) CreateHost(ctx context.Context, p domain.OnboardingPayload) (json.RawMessage, error) {
	f.lastPayload = p
	return f.onboardResp, f.onboardErr
}

func (f *fakeAPI) ListAgencies(ctx context.Context) ([]domain.Agency, error) {
	return f.agencies, f.agencyErr
}

func newTestServer(api *fakeAPI) http.Handler {
	s := httpserver.New()
	s.MountHandlers(&httpserver.Handlers{
		Sub: app.NewSubmissionService(api),
		Ag:  app.NewAgencyService(api, nil, time.Minute),
	})
	return s.Mux()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func registrationForm() url.Values {
	return url.Values{
		"phoneNumber": {"9876543210"},
		"name":        {"Asha Verma"},
		"profileName": {"asha_v"},
		"city":        {"Pune"},
		"age":         {"24"},
		"language":    {"English,Hindi"},
	}
}

func TestShowForm(t *testing.T) {
	rr := get(t, newTestServer(&fakeAPI{}), "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `action="/register"`) {
		t.Fatalf("form action missing:\n%s", body)
	}
	if !strings.Contains(body, "Mingle Partner Onboarding") {
		t.Fatalf("title missing")
	}
}

func TestStaticPages(t *testing.T) {
	h := newTestServer(&fakeAPI{})
	for path, want := range map[string]string{
		"/privacy-policy":   "Privacy Policy",
		"/terms-conditions": "Terms",
		"/delete-account":   "Delete your account",
	} {
		rr := get(t, h, path)
		if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), want) {
			t.Fatalf("%s: status=%d", path, rr.Code)
		}
	}
}

func TestFaviconNoContent(t *testing.T) {
	h := newTestServer(&fakeAPI{})
	for _, path := range []string{"/favicon.ico", "/favicon.png"} {
		rr := get(t, h, path)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("%s: status=%d", path, rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Fatalf("%s: expected empty body", path)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	h := newTestServer(&fakeAPI{})
	for _, path := range []string{"/static/css/app.css", "/static/js/app.js"} {
		if rr := get(t, h, path); rr.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, rr.Code)
		}
	}
}

func TestRegister_Success(t *testing.T) {
	api := &fakeAPI{onboardResp: json.RawMessage(`{"id":"abc"}`)}
	rr := postForm(t, newTestServer(api), "/register", registrationForm())

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Registration submitted successfully!") {
		t.Fatalf("success message missing:\n%s", body)
	}
	// raw upstream response passed through for inspection
	if !strings.Contains(body, `&#34;id&#34;: &#34;abc&#34;`) && !strings.Contains(body, `"id": "abc"`) {
		t.Fatalf("api response missing:\n%s", body)
	}
	// single comma-joined value passes through unchanged
	if api.lastPayload.Language != "English,Hindi" {
		t.Fatalf("language = %q", api.lastPayload.Language)
	}
}

func TestRegister_UpstreamHTMLError(t *testing.T) {
	page := "<!DOCTYPE html><html><body>Error: phoneNumber, name, profileName, city &amp; hostType are required</body></html>"
	api := &fakeAPI{onboardErr: &domain.UpstreamError{Status: 400, Body: []byte(page)}}
	rr := postForm(t, newTestServer(api), "/register", registrationForm())

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), app.MsgMissingRequired) {
		t.Fatalf("classified message missing:\n%s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "Registration submitted successfully!") {
		t.Fatalf("success slot must stay empty on failure")
	}
}

func TestRegister_NetworkError(t *testing.T) {
	api := &fakeAPI{onboardErr: errors.New("ECONNRESET")}
	rr := postForm(t, newTestServer(api), "/register", registrationForm())

	if !strings.Contains(rr.Body.String(), "Network error: ECONNRESET") {
		t.Fatalf("network message missing:\n%s", rr.Body.String())
	}
}

func TestListAgencies(t *testing.T) {
	api := &fakeAPI{agencies: []domain.Agency{{ID: "a1", Name: "Star Agency"}}}
	rr := get(t, newTestServer(api), "/api/agencies")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: %d", rr.Code)
	}
	var out struct {
		Success bool            `json:"success"`
		Data    []domain.Agency `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success || len(out.Data) != 1 || out.Data[0].ID != "a1" {
		t.Fatalf("unexpected listing: %+v", out)
	}
}

func TestListAgencies_UpstreamDown(t *testing.T) {
	api := &fakeAPI{agencyErr: errors.New("boom")}
	rr := get(t, newTestServer(api), "/api/agencies")

	var out struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Success {
		t.Fatalf("expected success=false")
	}
}
