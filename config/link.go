package config

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Link is a (label, URL) pair rendered by the generator as a navigation link.
// In site files it is written as a two-element sequence.
type Link struct {
	Label string
	URL   string
}

// Links keeps declaration order. A nil list is unset and falls back to the
// generator default; an empty, non-nil list is declared empty.
type Links []Link

func (l Links) IsZero() bool {
	return l == nil
}

func (l *Link) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []string
	if err := unmarshal(&pair); err != nil {
		return errors.Wrap(err, "link must be a [label, url] sequence")
	}
	if len(pair) != 2 {
		return errors.Errorf("link must have exactly 2 elements, got %d: %v", len(pair), pair)
	}
	l.Label, l.URL = pair[0], pair[1]
	return nil
}

func (l Link) MarshalYAML() (interface{}, error) {
	return []string{l.Label, l.URL}, nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{l.Label, l.URL})
}
