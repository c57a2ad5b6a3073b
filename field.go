package redischema

import (
	"strconv"
)

// FieldType is the kind tag of an index field descriptor.
type FieldType string

const (
	FieldTypeTag     FieldType = "TAG"
	FieldTypeText    FieldType = "TEXT"
	FieldTypeNumeric FieldType = "NUMERIC"
	FieldTypeGeo     FieldType = "GEO"
	FieldTypeVector  FieldType = "VECTOR"
)

// Field is the kind-tagged descriptor handed to the index-creation client.
// Options holds the kind-specific option struct (TextFieldOptions,
// TagFieldOptions, NumericFieldOptions, GeoFieldOptions or
// VectorFieldOptions).
type Field struct {
	Name    string
	Type    FieldType
	Options any
}

// TextFieldOptions are the options of a full-text field descriptor.
type TextFieldOptions struct {
	Weight          float64
	NoStem          bool
	PhoneticMatcher string
	WithSuffixTrie  bool
	Sortable        bool
}

// TagFieldOptions are the options of a tag (exact match) field descriptor.
type TagFieldOptions struct {
	Separator     string
	CaseSensitive bool
	Sortable      bool
}

// NumericFieldOptions are the options of a numeric range field descriptor.
type NumericFieldOptions struct {
	Sortable bool
}

// GeoFieldOptions are the options of a geo point field descriptor.
type GeoFieldOptions struct {
	Sortable bool
}

// VectorFieldOptions are the options of a vector field descriptor.
// Attributes is the algorithm parameter block with upper-case keys
// (TYPE, DIM, DISTANCE_METRIC, INITIAL_CAP, plus BLOCK_SIZE for FLAT or
// M, EF_CONSTRUCTION, EF_RUNTIME, EPSILON for HNSW).
type VectorFieldOptions struct {
	Algorithm  VectorAlgorithm
	Attributes map[string]any
}

// vectorAttrOrder is the canonical rendering order of vector attributes.
var vectorAttrOrder = []string{
	"TYPE", "DIM", "DISTANCE_METRIC", "INITIAL_CAP",
	"BLOCK_SIZE",
	"M", "EF_CONSTRUCTION", "EF_RUNTIME", "EPSILON",
}

// Args renders the descriptor as FT.CREATE schema arguments.
func (f Field) Args() []string {
	args := []string{f.Name, string(f.Type)}

	switch o := f.Options.(type) {
	case TextFieldOptions:
		args = append(args, "WEIGHT", formatArg(o.Weight))
		if o.NoStem {
			args = append(args, "NOSTEM")
		}
		if o.PhoneticMatcher != "" {
			args = append(args, "PHONETIC", o.PhoneticMatcher)
		}
		if o.WithSuffixTrie {
			args = append(args, "WITHSUFFIXTRIE")
		}
		if o.Sortable {
			args = append(args, "SORTABLE")
		}
	case TagFieldOptions:
		args = append(args, "SEPARATOR", o.Separator)
		if o.CaseSensitive {
			args = append(args, "CASESENSITIVE")
		}
		if o.Sortable {
			args = append(args, "SORTABLE")
		}
	case NumericFieldOptions:
		if o.Sortable {
			args = append(args, "SORTABLE")
		}
	case GeoFieldOptions:
		if o.Sortable {
			args = append(args, "SORTABLE")
		}
	case VectorFieldOptions:
		args = append(args, string(o.Algorithm), strconv.Itoa(2*len(o.Attributes)))
		for _, k := range vectorAttrOrder {
			if v, ok := o.Attributes[k]; ok {
				args = append(args, k, formatArg(v))
			}
		}
	}

	return args
}

func formatArg(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return ""
	}
}

// SchemaField is implemented by every field schema kind. The interface is
// sealed: the set of kinds is fixed by the index grammar.
type SchemaField interface {
	// FieldName returns the field name.
	FieldName() string
	// AsField renders the schema as an index field descriptor. It must only
	// be called on a validated schema.
	AsField() Field

	validate() error
}

var (
	_ SchemaField = (*TextFieldSchema)(nil)
	_ SchemaField = (*TagFieldSchema)(nil)
	_ SchemaField = (*NumericFieldSchema)(nil)
	_ SchemaField = (*GeoFieldSchema)(nil)
	_ SchemaField = (*VectorSchema)(nil)
)

// TextFieldSchema describes a full-text field.
type TextFieldSchema struct {
	Name            string  `yaml:"name"`
	Sortable        bool    `yaml:"sortable"`
	Weight          float64 `yaml:"weight"`
	NoStem          bool    `yaml:"no_stem"`
	PhoneticMatcher string  `yaml:"phonetic_matcher"`
	WithSuffixTrie  bool    `yaml:"withsuffixtrie"`
}

// FieldName returns the field name.
func (s *TextFieldSchema) FieldName() string { return s.Name }

func (s *TextFieldSchema) validate() error {
	if s.Name == "" {
		return &ValidationError{Kind: FieldTypeText, Attr: "name", Reason: "name is required"}
	}
	if s.Weight == 0 {
		s.Weight = 1.0
	}
	if s.Weight < 0 {
		return &ValidationError{
			Kind: FieldTypeText, Name: s.Name, Attr: "weight",
			Reason: "weight must be a positive number, got " + strconv.FormatFloat(s.Weight, 'g', -1, 64),
		}
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *TextFieldSchema) AsField() Field {
	return Field{
		Name: s.Name,
		Type: FieldTypeText,
		Options: TextFieldOptions{
			Weight:          s.Weight,
			NoStem:          s.NoStem,
			PhoneticMatcher: s.PhoneticMatcher,
			WithSuffixTrie:  s.WithSuffixTrie,
			Sortable:        s.Sortable,
		},
	}
}

// TagFieldSchema describes a tag (exact match) field.
type TagFieldSchema struct {
	Name          string `yaml:"name"`
	Sortable      bool   `yaml:"sortable"`
	Separator     string `yaml:"separator"`
	CaseSensitive bool   `yaml:"case_sensitive"`
}

// FieldName returns the field name.
func (s *TagFieldSchema) FieldName() string { return s.Name }

func (s *TagFieldSchema) validate() error {
	if s.Name == "" {
		return &ValidationError{Kind: FieldTypeTag, Attr: "name", Reason: "name is required"}
	}
	if s.Separator == "" {
		s.Separator = ","
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *TagFieldSchema) AsField() Field {
	return Field{
		Name: s.Name,
		Type: FieldTypeTag,
		Options: TagFieldOptions{
			Separator:     s.Separator,
			CaseSensitive: s.CaseSensitive,
			Sortable:      s.Sortable,
		},
	}
}

// NumericFieldSchema describes a numeric range field.
type NumericFieldSchema struct {
	Name     string `yaml:"name"`
	Sortable bool   `yaml:"sortable"`
}

// FieldName returns the field name.
func (s *NumericFieldSchema) FieldName() string { return s.Name }

func (s *NumericFieldSchema) validate() error {
	if s.Name == "" {
		return &ValidationError{Kind: FieldTypeNumeric, Attr: "name", Reason: "name is required"}
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *NumericFieldSchema) AsField() Field {
	return Field{Name: s.Name, Type: FieldTypeNumeric, Options: NumericFieldOptions{Sortable: s.Sortable}}
}

// GeoFieldSchema describes a geo point field.
type GeoFieldSchema struct {
	Name     string `yaml:"name"`
	Sortable bool   `yaml:"sortable"`
}

// FieldName returns the field name.
func (s *GeoFieldSchema) FieldName() string { return s.Name }

func (s *GeoFieldSchema) validate() error {
	if s.Name == "" {
		return &ValidationError{Kind: FieldTypeGeo, Attr: "name", Reason: "name is required"}
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *GeoFieldSchema) AsField() Field {
	return Field{Name: s.Name, Type: FieldTypeGeo, Options: GeoFieldOptions{Sortable: s.Sortable}}
}
