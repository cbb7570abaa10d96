// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page. Names are the file names, e.g. "catalogo.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"lower": strings.ToLower,
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
	}).ParseFS(files, "templates/*.html"))
}
