// Package view renders the HTML pages of the site from embedded templates.
package view

import (
	"crypto/md5"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/model"
)

//go:embed templates
var templateFS embed.FS

// Flash is a one-shot message shown at the top of the next rendered page.
type Flash struct {
	Kind    string // success|error|notice
	Message string
}

// Page carries what the layout needs. Every page's data embeds it.
type Page struct {
	Title   string
	Current *model.Account
	Flashes []Flash
	Errors  []string
}

// Renderer implements echo.Renderer. Each page template is parsed together
// with the layout and the shared partials.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page under templates/ once.
func NewRenderer(siteTitle string) (*Renderer, error) {
	funcs := Funcs(siteTitle)
	r := &Renderer{templates: make(map[string]*template.Template)}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		if path == "templates/layout.html" || strings.HasPrefix(path, "templates/shared/") {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/shared/*.html",
			path,
		)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.templates[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Funcs returns the helpers available to every template.
func Funcs(siteTitle string) template.FuncMap {
	return template.FuncMap{
		"fullTitle": func(title string) string { return FullTitle(siteTitle, title) },
		"gravatar":  GravatarURL,
		"pluralize": Pluralize,
		"timeAgo":   func(t time.Time) string { return TimeAgo(t, time.Now()) },
	}
}

// FullTitle appends the site title to a page title.
func FullTitle(siteTitle, title string) string {
	if title == "" {
		return siteTitle
	}
	return title + " | " + siteTitle
}

// GravatarURL returns the gravatar image for email at the given pixel size.
func GravatarURL(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://secure.gravatar.com/avatar/%x?s=%d", sum, size)
}

// Pluralize renders "1 error", "2 errors".
func Pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}

// TimeAgo describes the distance between t and now in words.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return Pluralize(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return Pluralize(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return Pluralize(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return Pluralize(int(d/(30*24*time.Hour)), "month")
	default:
		return Pluralize(int(d/(365*24*time.Hour)), "year")
	}
}
