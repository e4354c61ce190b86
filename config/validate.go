package config

import (
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
)

// ValidationError lists every problem found in a site.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid site configuration: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the declared values. It returns a *ValidationError or nil.
func (s *Site) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.SiteURL != "" {
		if err := checkURL(s.SiteURL); err != nil {
			add("siteurl: %v", err)
		}
	}

	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			add("timezone %q: %v", s.Timezone, err)
		}
	}

	lists := []struct {
		name  string
		links Links
	}{
		{"menuitems", s.MenuItems},
		{"social", s.Social},
		{"links", s.Links},
	}
	for _, list := range lists {
		for i, link := range list.links {
			if strings.TrimSpace(link.Label) == "" {
				add("%s[%d]: empty label", list.name, i)
			}
			if err := checkURL(link.URL); err != nil {
				add("%s[%d] %q: %v", list.name, i, link.Label, err)
			}
		}
	}

	if s.DefaultPagination != nil && *s.DefaultPagination <= 0 {
		add("default_pagination must be positive, got %d", *s.DefaultPagination)
	}

	if s.Feeds != nil && !s.Feeds.Enabled {
		for _, toggle := range s.Feeds.toggles() {
			if toggle.Value != nil {
				add("feeds: %s is set to %q but feeds are not enabled", toggle.Name, *toggle.Value)
			}
		}
	}

	// Sorted so the report is stable across map iteration.
	sources := make([]string, 0, len(s.ExtraPathMetadata))
	for src := range s.ExtraPathMetadata {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		if !s.isStatic(src) {
			add("extra_path_metadata: %q is not under static_paths", src)
		}
		if s.ExtraPathMetadata[src].Path == "" {
			add("extra_path_metadata: %q has no output path", src)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// isStatic reports whether p is one of the static paths or inside one.
func (s *Site) isStatic(p string) bool {
	p = path.Clean(p)
	for _, static := range s.StaticPaths {
		static = path.Clean(static)
		if p == static || strings.HasPrefix(p, static+"/") {
			return true
		}
	}
	return false
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
