package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
}

var (
	uploadTemplate = template.Must(template.New("upload.html").
			Funcs(templateFuncs).ParseFS(templateFS, "templates/upload.html"))
	reviewTemplate = template.Must(template.New("review.html").
			Funcs(templateFuncs).ParseFS(templateFS, "templates/review.html"))
)
