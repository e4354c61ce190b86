package config

// Setting is one generator setting. Value is nil (None), a string, bool, int,
// Links, Paths or PathOverrides.
type Setting struct {
	Name  string
	Value interface{}
}

// Settings maps the site onto the generator's setting names, in the order
// they are written to the settings module. Unset fields are left out so the
// generator applies its defaults.
func (s *Site) Settings() []Setting {
	var out []Setting
	str := func(name, v string) {
		if v != "" {
			out = append(out, Setting{name, v})
		}
	}
	flag := func(name string, v *bool) {
		if v != nil {
			out = append(out, Setting{name, *v})
		}
	}
	links := func(name string, v Links) {
		if v != nil {
			out = append(out, Setting{name, v})
		}
	}

	str("AUTHOR", s.Author)
	str("SITENAME", s.SiteName)
	flag("HIDE_SITENAME", s.HideSiteName)
	str("SITEURL", s.SiteURL)

	links("MENUITEMS", s.MenuItems)

	flag("DISPLAY_CATEGORIES_ON_MENU", s.DisplayCategoriesOnMenu)
	flag("DISPLAY_TAGS_ON_SIDEBAR", s.DisplayTagsOnSidebar)
	flag("DISPLAY_CATEGORIES_ON_SIDEBAR", s.DisplayCategoriesOnSidebar)

	str("THEME", s.Theme)
	str("BOOTSTRAP_THEME", s.BootstrapTheme)
	flag("USE_PAGER", s.UsePager)
	str("CUSTOM_CSS", s.CustomCSS)

	str("PATH", s.Path)
	if s.StaticPaths != nil {
		out = append(out, Setting{"STATIC_PATHS", s.StaticPaths})
	}
	if s.ExtraPathMetadata != nil {
		out = append(out, Setting{"EXTRA_PATH_METADATA", s.ExtraPathMetadata})
	}

	str("TIMEZONE", s.Timezone)
	str("DEFAULT_LANG", s.DefaultLang)

	if s.Feeds != nil {
		for _, toggle := range s.Feeds.toggles() {
			var v interface{}
			if toggle.Value != nil {
				v = *toggle.Value
			}
			out = append(out, Setting{toggle.Name, v})
		}
	}

	links("LINKS", s.Links)
	links("SOCIAL", s.Social)

	str("GOOGLE_ANALYTICS", s.GoogleAnalytics)
	flag("SHARIFF", s.ShareWidget)
	str("TWITTER_USERNAME", s.TwitterUsername)

	if s.DefaultPagination != nil {
		out = append(out, Setting{"DEFAULT_PAGINATION", *s.DefaultPagination})
	}

	return out
}

// SettingsMap is Settings keyed by name, for JSON output.
func (s *Site) SettingsMap() map[string]interface{} {
	settings := s.Settings()
	m := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		m[setting.Name] = setting.Value
	}
	return m
}
