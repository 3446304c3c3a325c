// Package web embeds the HTML templates so handlers and their tests render
// the same markup no matter the working directory.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	// stars renders a shop's price level, one star per unit.
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		out := ""
		for i := 0; i < n; i++ {
			out += "★"
		}
		return out
	},
}

func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"),
	)
}
