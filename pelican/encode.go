// Package pelican writes settings as a Python settings module, the file the
// generator imports at build time.
package pelican

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kpurdon/siteconf/config"
	"github.com/pkg/errors"
)

const header = `#!/usr/bin/env python
# -*- coding: utf-8 -*- #
from __future__ import unicode_literals

`

// Encode writes one assignment per setting.
func Encode(w io.Writer, settings []config.Setting) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)

	for _, setting := range settings {
		literal, err := Literal(setting.Value)
		if err != nil {
			return errors.Wrapf(err, "encoding %s", setting.Name)
		}
		fmt.Fprintf(bw, "%s = %s\n", setting.Name, literal)
	}

	return errors.WithStack(bw.Flush())
}

// Literal renders v as a Python literal.
func Literal(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "None", nil
	case string:
		return quote(v), nil
	case bool:
		if v {
			return "True", nil
		}
		return "False", nil
	case int:
		return strconv.Itoa(v), nil
	case config.Links:
		return links(v), nil
	case config.Paths:
		items := make([]string, len(v))
		for i, s := range v {
			items[i] = quote(s)
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	case config.PathOverrides:
		return pathMetadata(v), nil
	default:
		return "", errors.Errorf("unsupported value type %T", v)
	}
}

// links renders pairs as a tuple of tuples, one pair per line.
func links(v config.Links) string {
	if len(v) == 0 {
		return "()"
	}

	var b strings.Builder
	b.WriteString("(\n")
	for _, link := range v {
		fmt.Fprintf(&b, "    (%s, %s),\n", quote(link.Label), quote(link.URL))
	}
	b.WriteString(")")
	return b.String()
}

func pathMetadata(v config.PathOverrides) string {
	if len(v) == 0 {
		return "{}"
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s: {'path': %s},\n", quote(k), quote(v[k].Path))
	}
	b.WriteString("}")
	return b.String()
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
