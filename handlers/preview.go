package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/gorilla/mux"
	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/logging"
	"github.com/kpurdon/siteconf/pelican"
	"github.com/kpurdon/siteconf/utils"
	"github.com/pkg/errors"
)

//go:embed templates/*.plush.html
var templates embed.FS

// Catalog maps variant names to loaded sites.
type Catalog map[string]*config.Site

func (c Catalog) names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func SetupRouter(catalog Catalog) (*mux.Router, error) {
	baseLayout, err := parseTemplate("templates/base.plush.html")
	if err != nil {
		return nil, err
	}
	notFound, err := parseTemplate("templates/404.plush.html")
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router.Use(logRequests)

	router.NotFoundHandler = Custom404Handler(baseLayout, notFound)

	router.HandleFunc("/", IndexHandler(catalog, baseLayout)).Methods("GET")

	withSite := func(h func(w http.ResponseWriter, r *http.Request, name string, site *config.Site)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			name := mux.Vars(r)["variant"]
			site, ok := catalog[name]
			if !ok {
				router.NotFoundHandler.ServeHTTP(w, r)
				return
			}
			h(w, r, name, site)
		}
	}

	router.HandleFunc("/{variant}/pelicanconf.py", withSite(settingsModuleHandler)).Methods("GET")
	router.HandleFunc("/{variant}/settings.json", withSite(settingsJSONHandler)).Methods("GET")
	router.HandleFunc("/{variant}/sitemap.xml", withSite(sitemapHandler)).Methods("GET")
	router.HandleFunc("/{variant}", withSite(func(w http.ResponseWriter, r *http.Request, name string, site *config.Site) {
		renderPage(w, baseLayout, name, summaryMarkdown(name, site))
	})).Methods("GET")

	return router, nil
}

func IndexHandler(catalog Catalog, baseLayout *plush.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var md strings.Builder
		md.WriteString("# Site variants\n\n")
		for _, name := range catalog.names() {
			fmt.Fprintf(&md, "- [%s](/%s): %s\n", name, name, catalog[name].SiteName)
		}
		renderPage(w, baseLayout, "Site variants", md.String())
	}
}

func settingsModuleHandler(w http.ResponseWriter, r *http.Request, name string, site *config.Site) {
	var buf bytes.Buffer
	if err := pelican.Encode(&buf, site.Settings()); err != nil {
		http.Error(w, fmt.Sprintf("Error encoding settings: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/x-python; charset=utf-8")
	w.Write(buf.Bytes())
}

func settingsJSONHandler(w http.ResponseWriter, r *http.Request, name string, site *config.Site) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(site.SettingsMap()); err != nil {
		logger := logging.WithComponent("preview")
		logger.Error().Err(err).Str("variant", name).Msg("encoding settings")
	}
}

func sitemapHandler(w http.ResponseWriter, r *http.Request, name string, site *config.Site) {
	sitemap, err := utils.GenerateSitemapContent(site, time.Now())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error generating sitemap: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(sitemap))
}

// summaryMarkdown describes a site the way its navigation would appear.
func summaryMarkdown(name string, site *config.Site) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", site.SiteName)
	fmt.Fprintf(&md, "Variant `%s` by %s, published at <%s>.\n\n", name, site.Author, site.SiteURL)

	sections := []struct {
		title string
		links config.Links
	}{
		{"Menu", site.MenuItems},
		{"Social", site.Social},
		{"Blogroll", site.Links},
	}
	for _, section := range sections {
		if len(section.links) == 0 {
			continue
		}
		fmt.Fprintf(&md, "## %s\n\n", section.title)
		for _, link := range section.links {
			fmt.Fprintf(&md, "- [%s](%s)\n", link.Label, link.URL)
		}
		md.WriteString("\n")
	}

	md.WriteString("## Theme\n\n")
	fmt.Fprintf(&md, "- theme: `%s`\n", site.Theme)
	if site.BootstrapTheme != "" {
		fmt.Fprintf(&md, "- bootstrap theme: `%s`\n", site.BootstrapTheme)
	}
	if site.DefaultPagination != nil {
		fmt.Fprintf(&md, "- %d articles per page\n", *site.DefaultPagination)
	}

	fmt.Fprintf(&md, "\n[pelicanconf.py](/%s/pelicanconf.py) | [settings.json](/%s/settings.json) | [sitemap.xml](/%s/sitemap.xml)\n", name, name, name)
	return md.String()
}

func renderPage(w http.ResponseWriter, baseLayout *plush.Template, title, md string) {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	htmlContent := markdown.ToHTML([]byte(md), p, nil)

	ctx := plush.NewContext()
	ctx.Set("title", title)
	ctx.Set("yield", template.HTML(htmlContent))

	pageHtml, err := baseLayout.Exec(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error executing base layout: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(pageHtml))
}

func parseTemplate(name string) (*plush.Template, error) {
	content, err := templates.ReadFile(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	tmpl, err := plush.Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return tmpl, nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger := logging.WithComponent("preview")
		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
