package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/kpurdon/siteconf/config"
	"github.com/pkg/errors"
)

// BundleStylesheets minifies every stylesheet named in the site's path
// overrides. Sources are read from contentDir and written to their
// published path under outDir. It returns the written paths.
func BundleStylesheets(contentDir, outDir string, site *config.Site) ([]string, error) {
	sources := make([]string, 0, len(site.ExtraPathMetadata))
	for src := range site.ExtraPathMetadata {
		if strings.EqualFold(filepath.Ext(src), ".css") {
			sources = append(sources, src)
		}
	}
	sort.Strings(sources)

	var written []string
	for _, src := range sources {
		dst := filepath.Join(outDir, filepath.FromSlash(site.ExtraPathMetadata[src].Path))

		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{filepath.Join(contentDir, filepath.FromSlash(src))},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines: []api.Engine{
				{Name: api.EngineChrome, Version: "100"},
				{Name: api.EngineFirefox, Version: "100"},
				{Name: api.EngineSafari, Version: "15"},
				{Name: api.EngineEdge, Version: "100"},
			},
			Write:   false,
			Outfile: dst,
		})

		if len(result.Errors) > 0 {
			return written, errors.Errorf("bundling %s: %s", src, result.Errors[0].Text)
		}

		for _, out := range result.OutputFiles {
			err := os.MkdirAll(filepath.Dir(out.Path), os.ModePerm)
			if err != nil {
				return written, errors.WithStack(err)
			}

			err = os.WriteFile(out.Path, out.Contents, 0644)
			if err != nil {
				return written, errors.WithStack(err)
			}
			written = append(written, out.Path)
		}
	}

	return written, nil
}
