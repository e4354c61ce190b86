package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config/yaml.go

type Site struct {
	Author       string `yaml:"author,omitempty"`
	SiteName     string `yaml:"sitename,omitempty"`
	HideSiteName *bool  `yaml:"hide_sitename,omitempty"`
	SiteURL      string `yaml:"siteurl,omitempty"`
	Timezone     string `yaml:"timezone,omitempty"`
	DefaultLang  string `yaml:"default_lang,omitempty"`

	Theme                      string `yaml:"theme,omitempty"`
	BootstrapTheme             string `yaml:"bootstrap_theme,omitempty"`
	DisplayCategoriesOnMenu    *bool  `yaml:"display_categories_on_menu,omitempty"`
	DisplayTagsOnSidebar       *bool  `yaml:"display_tags_on_sidebar,omitempty"`
	DisplayCategoriesOnSidebar *bool  `yaml:"display_categories_on_sidebar,omitempty"`
	DefaultPagination          *int   `yaml:"default_pagination,omitempty"`
	UsePager                   *bool  `yaml:"use_pager,omitempty"`
	CustomCSS                  string `yaml:"custom_css,omitempty"`

	MenuItems Links `yaml:"menuitems,omitempty"`
	Social    Links `yaml:"social,omitempty"`
	Links     Links `yaml:"links,omitempty"`

	Feeds *Feeds `yaml:"feeds,omitempty"`

	GoogleAnalytics string `yaml:"google_analytics,omitempty"`
	ShareWidget     *bool  `yaml:"share_widget,omitempty"`
	TwitterUsername string `yaml:"twitter_username,omitempty"`

	Path              string        `yaml:"path,omitempty"`
	StaticPaths       Paths         `yaml:"static_paths,omitempty"`
	ExtraPathMetadata PathOverrides `yaml:"extra_path_metadata,omitempty"`

	// siteNameFormat is the unresolved sitename, written back by MarshalYAML.
	siteNameFormat string
}

// Feeds holds the generator's feed toggles. A nil toggle is disabled.
type Feeds struct {
	Enabled         bool    `yaml:"enabled,omitempty"`
	AllAtom         *string `yaml:"all_atom"`
	CategoryAtom    *string `yaml:"category_atom"`
	TranslationAtom *string `yaml:"translation_atom"`
	AuthorAtom      *string `yaml:"author_atom"`
	AuthorRSS       *string `yaml:"author_rss"`
}

type PathMetadata struct {
	Path string `yaml:"path" json:"path"`
}

// Paths and PathOverrides follow the Links rule: nil is unset, empty is
// declared empty and replaces the generator default.
type Paths []string

func (p Paths) IsZero() bool {
	return p == nil
}

// PathOverrides maps a source path to its published metadata.
type PathOverrides map[string]PathMetadata

func (p PathOverrides) IsZero() bool {
	return p == nil
}

func Load(filename string) (*Site, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}

	return site, nil
}

// Parse decodes a site file and resolves the site name format.
func Parse(data []byte) (*Site, error) {
	var site Site
	err := yaml.UnmarshalStrict(data, &site)
	if err != nil {
		return nil, errors.Wrap(err, "parsing site file")
	}

	if isSiteNameFormat(site.SiteName) {
		name, err := formatSiteName(site.SiteName, site.Author)
		if err != nil {
			return nil, err
		}
		site.siteNameFormat = site.SiteName
		site.SiteName = name
	}

	return &site, nil
}

// MarshalYAML writes the sitename format rather than the resolved name, so a
// reload resolves it from the same inputs.
func (s Site) MarshalYAML() (interface{}, error) {
	type plain Site
	p := plain(s)
	if s.siteNameFormat != "" {
		p.SiteName = s.siteNameFormat
	}
	return p, nil
}

func (s *Site) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// toggles returns the feed toggles in the order the generator documents them.
func (f *Feeds) toggles() []struct {
	Name  string
	Value *string
} {
	return []struct {
		Name  string
		Value *string
	}{
		{"FEED_ALL_ATOM", f.AllAtom},
		{"CATEGORY_FEED_ATOM", f.CategoryAtom},
		{"TRANSLATION_FEED_ATOM", f.TranslationAtom},
		{"AUTHOR_FEED_ATOM", f.AuthorAtom},
		{"AUTHOR_FEED_RSS", f.AuthorRSS},
	}
}
