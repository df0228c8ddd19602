package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sujeeth-infosec/portfolio/pkg/controller/server"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/mock"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/types"
)

var testProfile = model.Profile{
	Name:        "Test Person",
	Email:       "me@example.com",
	Phone:       "+1 555 0100",
	Location:    "Somewhere",
	GitHubURL:   "https://github.com/octocat",
	LinkedInURL: "https://www.linkedin.com/in/octocat",
}

func contactValues(name, email, message string) url.Values {
	return url.Values{
		"user_name":  {name},
		"user_email": {email},
		"message":    {message},
	}
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("GET / renders the shell with projects loading", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc, server.WithProfile(testProfile))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Header().Get("Content-Type")).Contains("text/html")
		gt.S(t, body).Contains("Loading projects...")
		gt.S(t, body).Contains(`hx-get="/projects"`)
		gt.S(t, body).Contains("Programming Languages")
		gt.S(t, body).Contains("Cisco: Ethical Hacker")
		gt.S(t, body).Contains(`href="mailto:me@example.com"`)
		gt.S(t, body).Contains(`href="tel:`)
		gt.S(t, body).Contains("15550100")
		gt.S(t, body).NotContains("ZgotmplZ")
		gt.S(t, body).Contains(`name="user_name"`)
		gt.S(t, body).Contains(`name="user_email"`)
		gt.S(t, body).Contains(`name="message"`)
		gt.S(t, body).Contains("Send Message")
		gt.A(t, uc.LoadProjectsCalls()).Length(0)
	})
}

func TestProjects(t *testing.T) {
	t.Run("fragment renders cards", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadProjectsFunc: func(ctx context.Context) *model.ProjectList {
				return model.NewProjectList([]*model.RepositorySummary{
					{Name: "my_cool-project", URL: "https://github.com/octocat/my_cool-project", Homepage: "https://cool.example.com"},
				})
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, body).Contains("my cool project")
		gt.S(t, body).Contains("No description available")
		gt.S(t, body).Contains("N/A")
		gt.S(t, body).Contains("https://cool.example.com")
		gt.S(t, body).NotContains("Loading projects...")
		gt.S(t, body).NotContains("hx-get")
		gt.A(t, uc.LoadProjectsCalls()).Length(1)
	})

	t.Run("fragment renders error state", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadProjectsFunc: func(ctx context.Context) *model.ProjectList {
				return model.NewFailedProjectList()
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, body).Contains("Failed to load projects. Please try again later.")
		gt.S(t, body).NotContains("Loading projects...")
		gt.S(t, body).NotContains("No projects found.")
	})

	t.Run("fragment renders empty state", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadProjectsFunc: func(ctx context.Context) *model.ProjectList {
				return model.NewProjectList(nil)
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.S(t, rec.Body.String()).Contains("No projects found.")
	})

	t.Run("profile link is rendered in every state", func(t *testing.T) {
		lists := map[string]*model.ProjectList{
			"success": model.NewProjectList([]*model.RepositorySummary{{Name: "repo"}}),
			"empty":   model.NewProjectList(nil),
			"error":   model.NewFailedProjectList(),
		}
		for name, list := range lists {
			t.Run(name, func(t *testing.T) {
				uc := &mock.UseCaseMock{
					LoadProjectsFunc: func(ctx context.Context) *model.ProjectList {
						return list
					},
				}
				srv := server.New(uc, server.WithProfile(testProfile))

				req := httptest.NewRequest(http.MethodGet, "/projects", nil)
				rec := httptest.NewRecorder()
				srv.Mux().ServeHTTP(rec, req)

				body := rec.Body.String()
				gt.S(t, body).Contains("View More on GitHub")
				gt.S(t, body).Contains(`href="https://github.com/octocat"`)
			})
		}
	})

	t.Run("profile link is rendered on the page shell", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{}, server.WithProfile(testProfile))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.S(t, rec.Body.String()).Contains("View More on GitHub")
	})

	t.Run("JSON API returns the list state", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			LoadProjectsFunc: func(ctx context.Context) *model.ProjectList {
				return model.NewProjectList([]*model.RepositorySummary{{Name: "a_b", Topics: []string{"go"}}})
			},
		}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")

		var resp model.ProjectList
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Status).Equal(model.ProjectListSuccess)
		gt.A(t, resp.Cards).Length(1)
		gt.V(t, resp.Cards[0].Title).Equal("a b")
		gt.V(t, resp.Cards[0].Technologies).Equal([]string{"go"})
	})
}

func TestContactForm(t *testing.T) {
	t.Run("success clears every field and shows success notification", func(t *testing.T) {
		var got *model.ContactFormInput
		uc := &mock.UseCaseMock{
			SubmitContactFunc: func(ctx context.Context, input *model.ContactFormInput) error {
				got = input
				return nil
			},
		}
		srv := server.New(uc)

		form := contactValues("Alice", "alice@example.com", "Hello there")
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, *got).Equal(model.ContactFormInput{Name: "Alice", Email: "alice@example.com", Message: "Hello there"})
		gt.S(t, body).Contains("Message sent successfully!")
		gt.S(t, body).Contains(`name="user_name" value=""`)
		gt.S(t, body).Contains(`name="user_email" value=""`)
		gt.S(t, body).NotContains("Hello there")
		gt.S(t, body).Contains("Send Message")
		gt.S(t, body).NotContains("disabled")
		gt.S(t, body).NotContains("<!DOCTYPE html>")
	})

	t.Run("failure keeps values and shows failure notification", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SubmitContactFunc: func(ctx context.Context, input *model.ContactFormInput) error {
				return goerr.Wrap(types.ErrSendFailed, "network down")
			},
		}
		srv := server.New(uc)

		form := contactValues("Alice", "alice@example.com", "Hello there")
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, body).Contains("Failed to send message. Please try again.")
		gt.S(t, body).Contains(`value="Alice"`)
		gt.S(t, body).Contains(`value="alice@example.com"`)
		gt.S(t, body).Contains("Hello there")
		gt.S(t, body).Contains("Send Message")
		gt.S(t, body).NotContains("disabled")
		gt.S(t, body).NotContains("network down")
	})

	t.Run("plain form post renders the full page", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			SubmitContactFunc: func(ctx context.Context, input *model.ContactFormInput) error {
				return nil
			},
		}
		srv := server.New(uc)

		form := contactValues("Alice", "alice@example.com", "Hello there")
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		body := rec.Body.String()
		gt.S(t, body).Contains("<!DOCTYPE html>")
		gt.S(t, body).Contains("Message sent successfully!")
	})

	t.Run("dispatch context outlives the request", func(t *testing.T) {
		var dispatchCtx context.Context
		uc := &mock.UseCaseMock{
			SubmitContactFunc: func(ctx context.Context, input *model.ContactFormInput) error {
				dispatchCtx = ctx
				return nil
			},
		}
		srv := server.New(uc)

		reqCtx, cancel := context.WithCancel(context.Background())
		form := contactValues("Alice", "alice@example.com", "Hello there")
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode())).WithContext(reqCtx)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		srv.Mux().ServeHTTP(httptest.NewRecorder(), req)

		cancel()
		gt.V(t, dispatchCtx.Err()).Equal(nil)
	})
}

func TestContactJSON(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    int
		status  model.NotificationKind
		message string
	}{
		{"success", nil, http.StatusOK, model.NotificationSuccess, "Message sent successfully!"},
		{"send failed", goerr.Wrap(types.ErrSendFailed, "relay 500"), http.StatusBadGateway, model.NotificationError, "Failed to send message. Please try again."},
		{"send failed with relay cause", goerr.Wrap(errors.Join(types.ErrSendFailed, types.ErrValidationFailed), "relay rejected"), http.StatusBadGateway, model.NotificationError, "Failed to send message. Please try again."},
		{"validation", goerr.Wrap(types.ErrValidationFailed, "email is malformed"), http.StatusBadRequest, model.NotificationError, model.ContactInvalidMessage},
		{"in flight", goerr.Wrap(types.ErrSubmissionInFlight, "busy"), http.StatusConflict, model.NotificationError, model.ContactInFlightMessage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mock.UseCaseMock{
				SubmitContactFunc: func(ctx context.Context, input *model.ContactFormInput) error {
					return tc.err
				},
			}
			srv := server.New(uc)

			body := []byte(`{"user_name":"Alice","user_email":"alice@example.com","message":"hi"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.Mux().ServeHTTP(rec, req)

			gt.V(t, rec.Code).Equal(tc.code)

			var resp model.Notification
			gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			gt.V(t, resp.Kind).Equal(tc.status)
			gt.V(t, resp.Message).Equal(tc.message)
		})
	}

	t.Run("malformed body is rejected", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.SubmitContactCalls()).Length(0)
	})
}
