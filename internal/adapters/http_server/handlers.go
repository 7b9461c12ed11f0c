// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"mingle_onboarding/internal/adapters/observability"
	"mingle_onboarding/internal/app"
	"mingle_onboarding/internal/domain"
)

const (
	onboardingTitle = "Mingle Partner Onboarding"
	successMessage  = "Registration submitted successfully! Your partner profile has been created."
)

type Handlers struct {
	Sub *app.SubmissionService
	Ag  *app.AgencyService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/", h.showForm)
	s.mux.Post("/register", h.register)

	s.mux.Get("/privacy-policy", staticPage("privacy_policy", "Privacy Policy - Mingle"))
	s.mux.Get("/terms-conditions", staticPage("terms_conditions", "Terms & Conditions - Mingle"))
	s.mux.Get("/delete-account", staticPage("delete_account", "Delete Account - Mingle"))

	// Browsers probe these; answer empty instead of 404.
	s.mux.Get("/favicon.ico", noContent)
	s.mux.Get("/favicon.png", noContent)

	s.mux.Get("/api/agencies", h.listAgencies)
	s.mux.Handle("/static/*", http.FileServer(http.FS(staticFS)))
}

func noContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func staticPage(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, http.StatusOK, name, pageData{Title: title})
	}
}

func (h *Handlers) showForm(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "partner_onboarding", pageData{Title: onboardingTitle})
}

// register accepts the posted form, forwards it upstream, and re-renders the
// form page with either the success slot or a classified error message
// filled. Every failure path ends in a rendered page, never a bare error.
func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("malformed registration form")
		render(w, http.StatusOK, "partner_onboarding", pageData{
			Title: onboardingTitle,
			Error: app.MsgFallback,
		})
		return
	}

	raw, err := h.Sub.Submit(r.Context(), r.PostForm)
	if err != nil {
		cl := app.Classify(err)
		observability.ObserveSubmission(cl.Kind)
		log.Warn().Err(err).Str("kind", cl.Kind).Msg("registration failed")
		render(w, http.StatusOK, "partner_onboarding", pageData{
			Title: onboardingTitle,
			Error: cl.Message,
		})
		return
	}

	observability.ObserveSubmission("success")
	render(w, http.StatusOK, "partner_onboarding", pageData{
		Title:       onboardingTitle,
		Success:     successMessage,
		APIResponse: prettyJSON(raw),
	})
}

// listAgencies feeds the form's agency selection control. The response keeps
// the upstream listing shape so the client script can consume either source.
func (h *Handlers) listAgencies(w http.ResponseWriter, r *http.Request) {
	type listing struct {
		Success bool            `json:"success"`
		Data    []domain.Agency `json:"data"`
	}

	w.Header().Set("Content-Type", "application/json")

	as, err := h.Ag.List(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("agency listing unavailable")
		_ = json.NewEncoder(w).Encode(listing{Success: false, Data: []domain.Agency{}})
		return
	}
	_ = json.NewEncoder(w).Encode(listing{Success: true, Data: as})
}
