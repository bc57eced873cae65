package io

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
)

// WriteChart encodes c in the given format. The output reads back with
// [ReadChart] into an equal chart. Dependencies are always written in the
// object form so relation types survive.
func WriteChart(c *chart.Chart, w io.Writer, format Format) error {
	doc := fromChart(c)
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q (must be json, yaml or toml)", format)
	}
}

func fromChart(c *chart.Chart) document {
	doc := document{ViewMode: string(c.ViewMode), Tasks: make([]task, len(c.Tasks))}
	for i, t := range c.Tasks {
		dt := task{
			ID:       t.ID,
			Name:     t.Name,
			Type:     string(t.Type),
			Start:    stamp{t.Start},
			End:      stamp{t.End},
			Progress: t.Progress,
		}
		for _, d := range t.Dependencies {
			dep := dependency{ID: d.ID}
			if d.Type != chart.EndToStart {
				dep.Type = d.Type.String()
			}
			dt.Dependencies = append(dt.Dependencies, dep)
		}
		doc.Tasks[i] = dt
	}
	return doc
}
