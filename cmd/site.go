package cmd

import (
	"path/filepath"
	"strings"

	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/sites"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addSiteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("variant", "v", "blog", "Embedded site variant to use")
	cmd.Flags().StringP("file", "f", "", "Site file to use instead of an embedded variant")
}

// loadSite returns the site selected by --file or --variant, and its name.
func loadSite(cmd *cobra.Command) (string, *config.Site, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		site, err := config.Load(file)
		if err != nil {
			return "", nil, err
		}
		return siteName(file), site, nil
	}

	variant, _ := cmd.Flags().GetString("variant")
	if variant == "" {
		return "", nil, errors.New("either --variant or --file is required")
	}
	site, err := sites.Load(variant)
	if err != nil {
		return "", nil, err
	}
	return variant, site, nil
}

func siteName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
