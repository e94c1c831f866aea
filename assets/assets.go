// Package assets embeds and renders the trail viewer page.
package assets

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var (
	//go:embed index.html.tpl
	indexTemplate string
	//go:embed style.css
	styleCSS string
	//go:embed script.js
	scriptJS string
)

// View holds the values injected into the page.
type View struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type pageData struct {
	View
	CSS string
	JS  string
}

// Build renders the page with inlined, minified CSS and JS.
func Build(v View) ([]byte, error) {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)

	cssMin, err := m.String("text/css", styleCSS)
	if err != nil {
		return nil, err
	}
	jsMin, err := m.String("text/javascript", scriptJS)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	if v.Title == "" {
		v.Title = "Hiking Trail Finder"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, pageData{View: v, CSS: cssMin, JS: jsMin}); err != nil {
		return nil, err
	}

	return m.Bytes("text/html", buf.Bytes())
}
