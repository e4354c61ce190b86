package cmd

import (
	"fmt"

	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/logging"
	"github.com/kpurdon/siteconf/sites"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate [site files...]",
		Short: "Validate site files, or every embedded variant when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent("validate")

			type target struct {
				name string
				load func() (*config.Site, error)
			}
			var targets []target
			if len(args) == 0 {
				for _, name := range sites.Names() {
					name := name
					targets = append(targets, target{name, func() (*config.Site, error) { return sites.Load(name) }})
				}
			}
			for _, file := range args {
				file := file
				targets = append(targets, target{file, func() (*config.Site, error) { return config.Load(file) }})
			}

			failed := 0
			for _, t := range targets {
				site, err := t.load()
				if err == nil {
					err = site.Validate()
				}
				if err != nil {
					failed++
					log.Error().Err(err).Str("site", t.name).Msg("invalid")
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", t.name)
					var verr *config.ValidationError
					if errors.As(err, &verr) {
						for _, problem := range verr.Problems {
							fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", problem)
						}
					}
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", t.name)
			}

			if failed > 0 {
				return errors.Errorf("%d of %d site(s) failed validation", failed, len(targets))
			}
			return nil
		},
	}

	return validateCmd
}
