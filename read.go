package redischema

import (
	"context"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/redischema/source"
)

// ReadSchema builds a validated Model from one of three input shapes:
//
//   - map[string]any (or map[string]string): interpreted directly as the
//     model's field groups and content keys.
//   - string: a path to a schema file; the content is parsed as YAML
//     (which covers JSON documents too). A path that does not resolve to a
//     readable file fails with a *FormatError.
//   - []byte: inline schema text.
//
// Any other input fails with a *TypeError naming the received type.
// Validation errors from nested field construction propagate unchanged.
func ReadSchema(input any) (*Model, error) {
	switch v := input.(type) {
	case map[string]any:
		return readSchemaMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return readSchemaMap(m)
	case string:
		return ReadSchemaFile(v)
	case []byte:
		return ParseSchema(v)
	default:
		return nil, &TypeError{Input: input}
	}
}

// ReadSchemaFile reads and parses a schema file.
func ReadSchemaFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, cause: err}
	}
	return ParseSchema(data)
}

// ReadSchemaFrom reads the named schema document from src and parses it.
func ReadSchemaFrom(ctx context.Context, src source.Source, name string) (*Model, error) {
	r, err := src.Open(ctx, name)
	if err != nil {
		return nil, &FormatError{Path: name, cause: err}
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FormatError{Path: name, cause: err}
	}
	return ParseSchema(data)
}

// ParseSchema parses schema text into a validated Model. Malformed text
// fails with a *FormatError; validation failures propagate unchanged.
func ParseSchema(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, &FormatError{cause: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func readSchemaMap(groups map[string]any) (*Model, error) {
	// One decode path: re-encode the map so map- and file-loaded models are
	// validated identically, including vector variant selection.
	data, err := yaml.Marshal(groups)
	if err != nil {
		return nil, &FormatError{cause: err}
	}
	return ParseSchema(data)
}
