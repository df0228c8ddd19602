package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
)

const maxContactBodySize = 64 * 1024

type handler struct {
	uc  interfaces.UseCase
	cfg *config
}

func (x *handler) page(projects *model.ProjectList, contact *model.ContactForm) *pageData {
	return &pageData{
		Profile:        x.cfg.profile,
		Skills:         x.cfg.skills,
		Certifications: x.cfg.certifications,
		Projects:       projects,
		Contact:        contact,
	}
}

// index renders the shell; the project grid starts in the loading state and is
// fetched by the browser from /projects.
func (x *handler) index(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "index", x.page(model.NewLoadingProjectList(), &model.ContactForm{}))
}

func (x *handler) projectsFragment(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "projects", &projectsSection{
		List:      x.uc.LoadProjects(r.Context()),
		GitHubURL: x.cfg.profile.GitHubURL,
	})
}

func (x *handler) projectsJSON(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, x.uc.LoadProjects(r.Context()))
}

// contactForm always answers 200 so that HTMX swaps the fragment; the outcome is carried
// by the notification in the body.
func (x *handler) contactForm(w http.ResponseWriter, r *http.Request) {
	form := &model.ContactForm{Submitting: true}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)
	if err := r.ParseForm(); err != nil {
		logging.From(r.Context()).Warn("fail to parse contact form", slog.Any("error", err))
		form.Fail(model.ContactInvalidMessage)
	} else {
		form.Input = model.ContactFormInput{
			Name:    r.PostForm.Get(model.FieldUserName),
			Email:   r.PostForm.Get(model.FieldUserEmail),
			Message: r.PostForm.Get(model.FieldMessage),
		}
		x.submit(r, form)
	}

	if r.Header.Get("HX-Request") == "true" {
		renderHTML(w, r, http.StatusOK, "contact", form)
		return
	}
	renderHTML(w, r, http.StatusOK, "index", x.page(model.NewLoadingProjectList(), form))
}

func (x *handler) contactJSON(w http.ResponseWriter, r *http.Request) {
	form := &model.ContactForm{Submitting: true}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)
	if err := json.NewDecoder(r.Body).Decode(&form.Input); err != nil {
		logging.From(r.Context()).Warn("fail to decode contact request", slog.Any("error", err))
		form.Fail(model.ContactInvalidMessage)
		renderJSON(w, r, http.StatusBadRequest, form.Notification)
		return
	}

	code := x.submit(r, form)
	renderJSON(w, r, code, form.Notification)
}

// submit dispatches the form on a context detached from the request so that a client
// going away does not abort a send in flight. It returns the HTTP status of the outcome.
func (x *handler) submit(r *http.Request, form *model.ContactForm) int {
	input := form.Input
	err := x.uc.SubmitContact(logging.Detach(r.Context()), &input)

	switch {
	case err == nil:
		form.Succeed()
		return http.StatusOK

	case errors.Is(err, types.ErrSendFailed):
		form.Fail(model.ContactFailedMessage)
		return http.StatusBadGateway

	case errors.Is(err, types.ErrValidationFailed):
		form.Fail(model.ContactInvalidMessage)
		return http.StatusBadRequest

	case errors.Is(err, types.ErrSubmissionInFlight):
		form.Fail(model.ContactInFlightMessage)
		return http.StatusConflict

	default:
		form.Fail(model.ContactFailedMessage)
		return http.StatusBadGateway
	}
}
