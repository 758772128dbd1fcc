package model

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"kcfgc-gen/internal/diagnostic"
)

// Format identifies the serialization of an entry model file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for model files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrInvalidSchema is returned when the loaded model fails its checks.
	ErrInvalidSchema = errors.New("invalid entry model")
)

// FormatFromPath selects the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrUnsupportedFormat, "%s", path),
			"use a .yaml, .yml or .toml entry model")
	}
}

// LoadFile loads and checks an entry model from the given path. Warnings and
// notes are returned alongside the schema.
func LoadFile(path string) (*Schema, *diagnostic.Diagnostics, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read model file %s", path)
	}

	s, diags, err := Parse(data, format)
	if err != nil {
		return nil, diags, errors.Wrapf(err, "%s", path)
	}

	if s.File == "" {
		s.File = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, diags, nil
}

// Parse decodes an entry model, applies defaults, resolves signal references
// and checks the result.
func Parse(data []byte, format Format) (*Schema, *diagnostic.Diagnostics, error) {
	var s Schema

	// Format-level findings; Check's are merged in after decoding.
	diags := &diagnostic.Diagnostics{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&s); err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse model YAML")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to parse model TOML")
		}

		for _, key := range md.Undecoded() {
			diags.AddError("unknown_key", fmt.Sprintf("unknown model key %q", key.String()), "", key.String())
		}
	default:
		return nil, nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}

	applyDefaults(&s)

	diags.Merge(*Check(&s))

	if err := diags.Error(); err != nil {
		return nil, diags, errors.Mark(errors.Wrap(err, "entry model"), ErrInvalidSchema)
	}

	return &s, diags, nil
}

// applyDefaults fills in optional attributes.
func applyDefaults(s *Schema) {
	for _, e := range s.Entries {
		if e == nil || !e.Indexed() {
			continue
		}

		if e.ParamType == KindUnknown {
			e.ParamType = KindInt
		}

		if e.ParamName == "" {
			e.ParamName = e.Name + "$(" + e.Param + ")"
		}
	}
}
