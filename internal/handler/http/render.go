package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/kashishbhadauriya/Careersphere/internal/app"
	"github.com/kashishbhadauriya/Careersphere/internal/logger"
	"github.com/kashishbhadauriya/Careersphere/models"
)

const (
	pageLogin      = "login.html"
	pageSignup     = "signup.html"
	pageDashboard  = "dashboard.html"
	pageAssessment = "assessment.html"
	pageResult     = "result.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("02 Jan 2006 15:04")
	},
}

// pages holds one template set per page, each combined with the layout.
var pages = mustParsePages(pageLogin, pageSignup, pageDashboard, pageAssessment, pageResult)

func mustParsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(
			template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name),
		)
	}
	return out
}

// authForm echoes submitted signup/login fields back into the form.
// The password is never echoed.
type authForm struct {
	Name        string
	Email       string
	Phone       string
	CollegeName string
	Course      string
}

// pageData is the view model shared by all pages.
type pageData struct {
	User  models.Claims
	Error string

	Form authForm

	Questions []models.Question
	Answers   models.Answers

	Assessments []models.Assessment
	Assessment  models.Assessment
}

// render executes the page into a buffer first so a template error never
// leaves a half written 200 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("failed to write page")
	}
}
