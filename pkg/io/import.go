package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
)

// ReadChart decodes a chart in the given format from r and validates it.
//
// Tasks without an id get a name-based UUID derived from their position
// and name, so re-reading a file yields the same ids. Dependencies may be written as
// objects with an id and an optional relation type, or, for the default
// EndToStart relation, as a plain list of ids under depends_on.
//
// Decoding failures are reported as INVALID_INPUT, bad enumerations with
// their own codes, and integrity problems as returned by
// [chart.Chart.Validate]. ReadChart does not close r.
func ReadChart(r io.Reader, format Format) (*chart.Chart, error) {
	var doc document
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}

	c, err := doc.toChart()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ImportChart reads the chart file at path, picking the format from its
// extension.
func ImportChart(path string) (*chart.Chart, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := ReadChart(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decode(r io.Reader, format Format, doc *document) error {
	var err error
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
		if err == io.EOF {
			err = nil
		}
	case TOML:
		var md toml.MetaData
		md, err = toml.NewDecoder(r).Decode(doc)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown key %q", undecoded[0].String())
			}
		}
	default:
		_, err = ParseFormat(string(format))
		return err
	}

	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s chart", format)
	}
	return nil
}

func (d document) toChart() (*chart.Chart, error) {
	mode, err := chart.ParseViewMode(d.ViewMode)
	if err != nil {
		return nil, err
	}

	c := &chart.Chart{ViewMode: mode, Tasks: make([]chart.Task, len(d.Tasks))}
	for i, t := range d.Tasks {
		ct := chart.Task{
			ID:       t.ID,
			Name:     t.Name,
			Start:    t.Start.at,
			End:      t.End.at,
			Progress: t.Progress,
			Type:     chart.TaskType(t.Type),
		}
		if ct.ID == "" {
			ct.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprint(i, t.Name))).String()
		}
		if ct.Type == "" {
			ct.Type = chart.TypeTask
		}

		for _, id := range t.DependsOn {
			ct.Dependencies = append(ct.Dependencies, chart.Dependency{ID: id})
		}
		for _, dep := range t.Dependencies {
			rel, err := chart.ParseRelationType(dep.Type)
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", ct.ID, err)
			}
			ct.Dependencies = append(ct.Dependencies, chart.Dependency{ID: dep.ID, Type: rel})
		}
		c.Tasks[i] = ct
	}
	return c, nil
}
