package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func settingNames(settings []Setting) []string {
	names := make([]string, len(settings))
	for i, s := range settings {
		names[i] = s.Name
	}
	return names
}

func TestSettings_OmitsUnsetFields(t *testing.T) {
	pagination := 10
	site := &Site{Author: "someone", DefaultPagination: &pagination}

	assert.Equal(t, []Setting{
		{"AUTHOR", "someone"},
		{"DEFAULT_PAGINATION", 10},
	}, site.Settings())
}

func TestSettings_Order(t *testing.T) {
	site := validSite()
	yes, no := true, false
	site.HideSiteName = &yes
	site.UsePager = &yes
	site.DisplayCategoriesOnMenu = &no
	site.Theme = "pelican-bootstrap3"
	site.ShareWidget = &yes

	assert.Equal(t, []string{
		"AUTHOR", "SITENAME", "HIDE_SITENAME", "SITEURL",
		"MENUITEMS",
		"DISPLAY_CATEGORIES_ON_MENU",
		"THEME", "USE_PAGER",
		"STATIC_PATHS", "EXTRA_PATH_METADATA",
		"TIMEZONE",
		"FEED_ALL_ATOM", "CATEGORY_FEED_ATOM", "TRANSLATION_FEED_ATOM", "AUTHOR_FEED_ATOM", "AUTHOR_FEED_RSS",
		"LINKS", "SOCIAL",
		"SHARIFF",
		"DEFAULT_PAGINATION",
	}, settingNames(site.Settings()))
}

func TestSettings_FeedToggles(t *testing.T) {
	feed := "feeds/all.atom.xml"
	site := &Site{Feeds: &Feeds{Enabled: true, AllAtom: &feed}}

	m := site.SettingsMap()
	assert.Equal(t, "feeds/all.atom.xml", m["FEED_ALL_ATOM"])
	assert.Contains(t, m, "AUTHOR_FEED_RSS")
	assert.Nil(t, m["AUTHOR_FEED_RSS"])
}

func TestSettings_DeclaredEmptyLinks(t *testing.T) {
	site := &Site{Links: Links{}}

	m := site.SettingsMap()
	assert.Equal(t, Links{}, m["LINKS"])
	assert.NotContains(t, m, "SOCIAL")
}
