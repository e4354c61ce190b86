package cmd

import (
	"encoding/json"
	"io"

	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/pelican"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print a site's settings for the generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			_, site, err := loadSite(cmd)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), site, format)
		},
	}

	addSiteFlags(renderCmd)
	renderCmd.Flags().String("format", "py", "Output format: py, json or yaml")

	return renderCmd
}

func render(w io.Writer, site *config.Site, format string) error {
	switch format {
	case "py":
		return pelican.Encode(w, site.Settings())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(site.SettingsMap()))
	case "yaml":
		data, err := site.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return errors.WithStack(err)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
