package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/ganttline/pkg/errors"
)

// Format is a chart file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat accepts a format name or a file extension with or without
// the leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q (must be json, yaml or toml)", s)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell chart format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}
