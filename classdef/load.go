package classdef

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/classbuilder/errors"
)

// Format is the encoding of a definition file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf("unknown definition format %q (want toml or yaml)", s)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf("cannot infer definition format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Load reads and validates a definition file, choosing the decoder by extension
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads and validates a definition file in the given format
func LoadAs(path string, format Format) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read definition %s", path)
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load definition %s", path)
	}
	return def, nil
}

// Parse decodes and validates a definition. Unknown keys are rejected so
// typos do not silently drop options.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, errors.Wrap(invalid(err), "failed to parse TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			sort.Strings(keys)
			return nil, errors.NewInvalidDefinitionError("unknown keys: %s", strings.Join(keys, ", "))
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && err != io.EOF {
			return nil, errors.Wrap(invalid(err), "failed to parse YAML")
		}

	default:
		return nil, errors.Newf("unsupported definition format %q", format)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}
