// Package render turns a scan result into the icons viewer page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tympanix/iconview/internal/scan"
	"github.com/tympanix/iconview/internal/util"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

const (
	DefaultTitle   = "Icons viewer"
	DefaultColumns = 8
)

// Options controls the page chrome.
type Options struct {
	Title   string
	Theme   Theme
	Columns int
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Title:   DefaultTitle,
		Theme:   DefaultTheme,
		Columns: DefaultColumns,
	}
}

// Validate checks option values supplied by the user
func (o Options) Validate() error {
	if o.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", o.Columns)
	}
	if _, err := ParseTheme(string(o.Theme)); err != nil {
		return err
	}
	return nil
}

// Card is one grid cell.
type Card struct {
	Src   template.URL
	Label string
}

// Page is the data handed to the page template.
type Page struct {
	Title   string
	Theme   Theme
	Columns int
	Cards   []Card
}

// URLFunc maps an icon to the image source used by the page.
type URLFunc func(icon scan.Icon) string

// FileURL references icons by file:// URI, for pages opened straight from disk.
func FileURL(res *scan.Result) URLFunc {
	return func(icon scan.Icon) string {
		return util.FileURL(res.AbsPath(icon))
	}
}

// NewPage builds a page with one card per icon in scan order. Zero option
// values fall back to the defaults.
func NewPage(res *scan.Result, opts Options, url URLFunc) *Page {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Theme == "" {
		opts.Theme = DefaultTheme
	}
	if opts.Columns == 0 {
		opts.Columns = DefaultColumns
	}

	page := &Page{
		Title:   opts.Title,
		Theme:   opts.Theme,
		Columns: opts.Columns,
		Cards:   make([]Card, 0, len(res.Icons)),
	}
	for _, icon := range res.Icons {
		page.Cards = append(page.Cards, Card{
			// URLs come from FileURL or the viewer's escaped icon routes.
			Src:   template.URL(url(icon)),
			Label: icon.Label(),
		})
	}
	return page
}

// Render writes the HTML document for p.
func Render(w io.Writer, p *Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
