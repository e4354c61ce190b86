package utils

import (
	"encoding/xml"
	"net/url"
	"os"
	"time"

	"github.com/kpurdon/siteconf/config"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func GenerateSitemap(path string, site *config.Site) error {
	xmlOutput, err := GenerateSitemapContent(site, time.Now())
	if err != nil {
		return err
	}

	xmlFile, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer xmlFile.Close()

	if _, err := xmlFile.Write([]byte(xml.Header + xmlOutput)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(xmlFile.Close())
}

// GenerateSitemapContent lists the menu and blogroll URLs served from the
// site's own host, in declaration order and without duplicates.
func GenerateSitemapContent(site *config.Site, now time.Time) (string, error) {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	base, err := url.Parse(site.SiteURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing siteurl")
	}

	seen := make(map[string]bool)
	var candidates []config.Link
	candidates = append(candidates, site.MenuItems...)
	candidates = append(candidates, site.Links...)

	for _, link := range candidates {
		u, err := url.Parse(link.URL)
		if err != nil || u.Host == "" || u.Host != base.Host {
			continue
		}
		if seen[link.URL] {
			continue
		}
		seen[link.URL] = true

		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     link.URL,
			LastMod: now.Format("2006-01-02"),
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
