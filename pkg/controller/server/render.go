package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeeth-infosec/portfolio/pkg/domain/model"
	"github.com/sujeeth-infosec/portfolio/pkg/utils/errutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Profile        model.Profile
	Skills         []model.SkillCategory
	Certifications []string
	Projects       *model.ProjectList
	Contact        *model.ContactForm
}

// projectsSection is the data of the "projects" template. The profile link is shown
// in every state, so it travels with the list.
type projectsSection struct {
	List      *model.ProjectList
	GitHubURL string
}

func (x *pageData) ProjectsSection() *projectsSection {
	return &projectsSection{List: x.Projects, GitHubURL: x.Profile.GitHubURL}
}

// TelURL marks the tel: link as safe; html/template only passes http, https and mailto.
func (x *pageData) TelURL() template.URL {
	return template.URL(x.Profile.TelURL()) // #nosec G203 digits and a leading plus only
}

func renderHTML(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		errutil.HandleError(r.Context(), "fail to render template",
			goerr.Wrap(err, "failed to execute template", goerr.V("name", name)))
		safeWrite(w, http.StatusInternalServerError, []byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, code, buf.Bytes())
}

func renderJSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to encode response",
			goerr.Wrap(err, "failed to marshal JSON response"))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"status":"error","message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}
