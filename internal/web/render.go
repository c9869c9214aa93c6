package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"rating": func(r *float64) string {
		if r == nil {
			return "-"
		}
		return fmt.Sprintf("%.1f", *r)
	},
	"oneDecimal": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"isTrue":     func(b *bool) bool { return b != nil && *b },
	"known":      func(b *bool) bool { return b != nil },
	"join":       strings.Join,
}

// Templates parses every embedded page and partial into one set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
