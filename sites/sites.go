// Package sites embeds the declared site variants. The variants share one
// schema and are loaded as peers.
package sites

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/kpurdon/siteconf/config"
	"github.com/pkg/errors"
)

//go:embed *.yaml
var files embed.FS

// Names lists the embedded variants, sorted.
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func Load(name string) (*config.Site, error) {
	data, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, errors.Errorf("unknown site variant %q", name)
	}

	site, err := config.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "variant %s", name)
	}
	return site, nil
}

// All loads every variant keyed by name.
func All() (map[string]*config.Site, error) {
	all := make(map[string]*config.Site)
	for _, name := range Names() {
		site, err := Load(name)
		if err != nil {
			return nil, err
		}
		all[name] = site
	}
	return all, nil
}
