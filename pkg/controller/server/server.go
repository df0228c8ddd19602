package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/interfaces"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: HTML bodies are produced by html/template, others are static or JSON encoded
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	profile        model.Profile
	skills         []model.SkillCategory
	certifications []string
}

type Option func(*config)

func WithProfile(profile model.Profile) Option {
	return func(cfg *config) {
		cfg.profile = profile
	}
}

func WithSkills(skills []model.SkillCategory, certifications []string) Option {
	return func(cfg *config) {
		cfg.skills = skills
		cfg.certifications = certifications
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		skills:         model.DefaultSkills(),
		certifications: model.DefaultCertifications(),
	}
	for _, opt := range options {
		opt(cfg)
	}

	h := &handler{uc: uc, cfg: cfg}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/", h.index)
	r.Get("/projects", h.projectsFragment)
	r.Post("/contact", h.contactForm)
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.projectsJSON)
		r.Post("/contact", h.contactJSON)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
