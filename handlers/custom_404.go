package handlers

import (
	"html/template"
	"net/http"

	"github.com/gobuffalo/plush"
)

func Custom404Handler(baseLayout, notFoundTemplate *plush.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := plush.NewContext()
		ctx.Set("path", r.URL.Path)
		ctx.Set("title", "Not found")

		// Execute the 404 template
		notFoundContent, err := notFoundTemplate.Exec(ctx)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Set the 404 content in the base layout context
		ctx.Set("yield", template.HTML(notFoundContent))

		page, err := baseLayout.Exec(ctx)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(page))
	}
}
