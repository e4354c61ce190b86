package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpurdon/siteconf/assets"
	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/logging"
	"github.com/kpurdon/siteconf/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the generator's settings files for a site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent("build")
			outDir, _ := cmd.Flags().GetString("out")
			contentDir, _ := cmd.Flags().GetString("content")

			name, site, err := loadSite(cmd)
			if err != nil {
				return err
			}
			if err := site.Validate(); err != nil {
				return errors.Wrapf(err, "site %s", name)
			}

			err = os.MkdirAll(outDir, os.ModePerm)
			if err != nil {
				return errors.WithStack(err)
			}

			formats := []struct {
				file   string
				format string
			}{
				{"pelicanconf.py", "py"},
				{"settings.json", "json"},
			}
			for _, f := range formats {
				path := filepath.Join(outDir, f.file)
				if err := writeRendered(path, site, f.format); err != nil {
					return err
				}
				log.Info().Str("site", name).Str("file", path).Msg("generated")
			}

			if site.SiteURL != "" {
				path := filepath.Join(outDir, "sitemap.xml")
				if err := utils.GenerateSitemap(path, site); err != nil {
					return errors.Wrap(err, "generating sitemap")
				}
				log.Info().Str("site", name).Str("file", path).Msg("generated")
			}

			if contentDir == "" {
				contentDir = site.Path
			}
			if _, err := os.Stat(contentDir); contentDir == "" || err != nil {
				log.Warn().Str("content", contentDir).Msg("content directory not found, skipping stylesheets")
			} else {
				written, err := assets.BundleStylesheets(contentDir, outDir, site)
				if err != nil {
					return err
				}
				for _, path := range written {
					log.Info().Str("site", name).Str("file", path).Msg("bundled stylesheet")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Settings for %s generated in %s\n", name, outDir)
			return nil
		},
	}

	addSiteFlags(buildCmd)
	buildCmd.Flags().StringP("out", "o", "output", "Directory to write settings into")
	buildCmd.Flags().String("content", "", "Content directory holding path overrides (defaults to the site's path)")

	return buildCmd
}

func writeRendered(path string, site *config.Site, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	if err := render(file, site, format); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.WithStack(file.Close())
}
