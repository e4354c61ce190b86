package config

import (
	"html/template"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

func isSiteNameFormat(name string) bool {
	return strings.Contains(name, "<%")
}

// formatSiteName resolves a site name written as a plush template, e.g.
// "Technology by <%= author %>". The author is inserted as data and is never
// evaluated itself.
func formatSiteName(name, author string) (string, error) {
	if !isSiteNameFormat(name) {
		return name, nil
	}

	ctx := plush.NewContext()
	// template.HTML keeps plush from escaping apostrophes in names.
	ctx.Set("author", template.HTML(author))

	tmpl, err := plush.Parse(name)
	if err != nil {
		return "", errors.Wrapf(err, "parsing sitename %q", name)
	}

	resolved, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "formatting sitename %q", name)
	}

	return resolved, nil
}
