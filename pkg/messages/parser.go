package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for catalogs.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile picks a format from the file extension.
func FormatForFile(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Parse decodes a catalog document. Nested maps are flattened into
// dot-separated keys; every leaf must be a string.
func Parse(ctx context.Context, content []byte, format Format) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	entries := make(map[string]string)
	if err := flatten("", data, entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(entries), nil
}

func flatten(prefix string, data map[string]any, out map[string]string) error {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: key %q holds %T", ErrInvalidMessage, key, v)
		}
	}
	return nil
}
