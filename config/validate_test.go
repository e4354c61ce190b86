package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSite() *Site {
	pagination := 5
	return &Site{
		Author:            "Kyle W. Purdon",
		SiteName:          "Kyle W. Purdon",
		SiteURL:           "http://kylepurdon.com/blog",
		Timezone:          "America/Denver",
		DefaultPagination: &pagination,
		MenuItems:         Links{{"Home", "http://kylepurdon.com"}},
		Social:            Links{{"Github", "https://github.com/kpurdon"}},
		Links:             Links{},
		Feeds:             &Feeds{},
		StaticPaths:       []string{"images", "extra/custom.css"},
		ExtraPathMetadata: map[string]PathMetadata{
			"extra/custom.css": {Path: "static/custom.css"},
		},
	}
}

func problems(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	return verr.Problems
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validSite().Validate())
	assert.NoError(t, (&Site{}).Validate())
}

func TestValidate_Links(t *testing.T) {
	site := validSite()
	site.MenuItems = Links{
		{"", "http://kylepurdon.com"},
		{"Blog", "kylepurdon.com/blog"},
		{"Mail", "mailto:someone@example.com"},
	}
	site.Links = Links{{"Ok", "https://example.com"}}

	got := problems(t, site.Validate())
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "menuitems[0]: empty label")
	assert.Contains(t, got[1], `menuitems[1] "Blog"`)
	assert.Contains(t, got[2], `menuitems[2] "Mail"`)
}

func TestValidate_Pagination(t *testing.T) {
	for _, n := range []int{0, -3} {
		site := validSite()
		n := n
		site.DefaultPagination = &n
		got := problems(t, site.Validate())
		assert.Len(t, got, 1)
		assert.Contains(t, got[0], "default_pagination must be positive")
	}
}

func TestValidate_Feeds(t *testing.T) {
	feed := "feeds/all.atom.xml"

	site := validSite()
	site.Feeds = &Feeds{AllAtom: &feed}
	got := problems(t, site.Validate())
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "FEED_ALL_ATOM")

	site.Feeds.Enabled = true
	assert.NoError(t, site.Validate())
}

func TestValidate_PathOverrides(t *testing.T) {
	site := validSite()
	site.StaticPaths = []string{"images", "extra"}
	site.ExtraPathMetadata = map[string]PathMetadata{
		"extra/custom.css": {Path: "static/custom.css"},
		"extra/robots.txt": {Path: "robots.txt"},
	}
	assert.NoError(t, site.Validate())

	site.ExtraPathMetadata["favicon.ico"] = PathMetadata{Path: "favicon.ico"}
	site.ExtraPathMetadata["images/logo.png"] = PathMetadata{}
	got := problems(t, site.Validate())
	assert.Equal(t, []string{
		`extra_path_metadata: "favicon.ico" is not under static_paths`,
		`extra_path_metadata: "images/logo.png" has no output path`,
	}, got)
}

func TestValidate_SiteURLAndTimezone(t *testing.T) {
	site := validSite()
	site.SiteURL = "/blog"
	site.Timezone = "Mars/Olympus_Mons"

	got := problems(t, site.Validate())
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "siteurl")
	assert.Contains(t, got[1], "timezone")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Problems: []string{"a", "b"}}
	assert.Equal(t, "invalid site configuration: a; b", err.Error())
}
