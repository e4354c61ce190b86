package cmd

import (
	"fmt"
	"net/http"

	"github.com/kpurdon/siteconf/config"
	"github.com/kpurdon/siteconf/handlers"
	"github.com/kpurdon/siteconf/logging"
	"github.com/kpurdon/siteconf/sites"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve [site files...]",
		Short: "Preview site variants over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.WithComponent("serve")
			port, _ := cmd.Flags().GetString("port")

			catalog, err := buildCatalog(args)
			if err != nil {
				return err
			}

			router, err := handlers.SetupRouter(catalog)
			if err != nil {
				return errors.Wrap(err, "setting up router")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Starting server on port %s\n", port)
			log.Info().Str("port", port).Int("sites", len(catalog)).Msg("listening")
			return errors.WithStack(http.ListenAndServe(":"+port, router))
		},
	}

	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")

	return serveCmd
}

// buildCatalog adds site files to the embedded variants. A file is served
// under its base name, which must not shadow a variant or another file.
func buildCatalog(files []string) (handlers.Catalog, error) {
	catalog, err := sites.All()
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		name := siteName(file)
		if _, taken := catalog[name]; taken {
			return nil, errors.Errorf("site file %s: name %q is already served", file, name)
		}

		site, err := config.Load(file)
		if err != nil {
			return nil, err
		}
		catalog[name] = site
	}

	return handlers.Catalog(catalog), nil
}
