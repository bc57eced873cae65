package io

import (
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ganttline/pkg/errors"
)

type document struct {
	ViewMode string `json:"view_mode,omitempty" yaml:"view_mode,omitempty" toml:"view_mode,omitempty"`
	Tasks    []task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

type task struct {
	ID           string       `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name         string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type         string       `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Start        stamp        `json:"start" yaml:"start" toml:"start"`
	End          stamp        `json:"end" yaml:"end" toml:"end"`
	Progress     float64      `json:"progress,omitempty" yaml:"progress,omitempty" toml:"progress,omitempty"`
	DependsOn    []string     `json:"depends_on,omitempty" yaml:"depends_on,omitempty" toml:"depends_on,omitempty"`
	Dependencies []dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
}

type dependency struct {
	ID   string `json:"id" yaml:"id" toml:"id"`
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
}

// dateLayouts are tried in order; values without a zone are UTC.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// stamp is a task date as written in chart files. It wraps rather than
// embeds time.Time so the JSON methods of time.Time are not promoted.
type stamp struct{ at time.Time }

func parseStamp(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidInput, "invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
}

func (s stamp) MarshalText() ([]byte, error) {
	if s.at.Location() == time.UTC && s.at.Equal(s.at.Truncate(24*time.Hour)) {
		return []byte(s.at.Format("2006-01-02")), nil
	}
	return []byte(s.at.Format(time.RFC3339Nano)), nil
}

func (s *stamp) UnmarshalText(b []byte) error {
	t, err := parseStamp(string(b))
	if err != nil {
		return err
	}
	s.at = t
	return nil
}

func (s stamp) MarshalYAML() (any, error) {
	b, err := s.MarshalText()
	return string(b), err
}

func (s *stamp) UnmarshalYAML(n *yaml.Node) error {
	return s.UnmarshalText([]byte(n.Value))
}

// UnmarshalTOML accepts quoted strings as well as native TOML dates. Local
// dates and date-times carry no zone and are read as UTC.
func (s *stamp) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case time.Time:
		if _, offset := v.Zone(); offset == 0 {
			v = v.UTC()
		}
		s.at = v
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid date %v", v)
	}
}

var (
	_ toml.Unmarshaler = (*stamp)(nil)
	_ yaml.Unmarshaler = (*stamp)(nil)
	_ yaml.Marshaler   = stamp{}
)
