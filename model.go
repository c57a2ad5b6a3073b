package redischema

// Default content key names used by downstream retrieval logic.
const (
	DefaultContentKey       = "content"
	DefaultContentVectorKey = "content_vector"
)

// Model is the validated description of an index schema: five field groups
// plus the two content keys. A nil group means the group is absent; an
// empty slice means it was supplied empty, which is a different state (see
// IsEmpty).
//
// Construct a Model via ReadSchema or build it literally and call Validate.
// After Validate the model is immutable by contract and safe for concurrent
// readers.
type Model struct {
	Tag     []TagFieldSchema     `yaml:"tag"`
	Text    []TextFieldSchema    `yaml:"text"`
	Numeric []NumericFieldSchema `yaml:"numeric"`
	Geo     []GeoFieldSchema     `yaml:"geo"`
	Vector  []VectorSchema       `yaml:"vector"`

	// ContentKey names the text field holding primary content.
	ContentKey string `yaml:"content_key"`
	// ContentVectorKey names the vector field holding the primary embedding.
	ContentVectorKey string `yaml:"content_vector_key"`
}

// NewModel returns a model with the reference defaults: one text field
// named "content" and one FLAT vector field named "content_vector" with
// 1536 dimensions.
func NewModel() *Model {
	m := &Model{}
	if err := m.Validate(); err != nil {
		panic(err) // the default model is valid by construction
	}
	return m
}

func (m *Model) applyDefaults() {
	if m.Text == nil {
		m.Text = []TextFieldSchema{{Name: DefaultContentKey}}
	}
	if m.Vector == nil {
		m.Vector = []VectorSchema{NewFlatVector(FlatVectorSchema{
			Name: DefaultContentVectorKey,
			Dims: DefaultContentVectorDims,
		})}
	}
	if m.ContentKey == "" {
		m.ContentKey = DefaultContentKey
	}
	if m.ContentVectorKey == "" {
		m.ContentVectorKey = DefaultContentVectorKey
	}
}

// fieldGroup pairs a group with its fields. The groups slice fixes the
// group order as an explicit contract: tag, text, numeric, geo, vector.
type fieldGroup struct {
	name    string
	present bool
	fields  []SchemaField
}

func (m *Model) groups() []fieldGroup {
	tag := make([]SchemaField, len(m.Tag))
	for i := range m.Tag {
		tag[i] = &m.Tag[i]
	}
	text := make([]SchemaField, len(m.Text))
	for i := range m.Text {
		text[i] = &m.Text[i]
	}
	numeric := make([]SchemaField, len(m.Numeric))
	for i := range m.Numeric {
		numeric[i] = &m.Numeric[i]
	}
	geo := make([]SchemaField, len(m.Geo))
	for i := range m.Geo {
		geo[i] = &m.Geo[i]
	}
	vector := make([]SchemaField, len(m.Vector))
	for i := range m.Vector {
		vector[i] = &m.Vector[i]
	}

	return []fieldGroup{
		{name: "tag", present: m.Tag != nil, fields: tag},
		{name: "text", present: m.Text != nil, fields: text},
		{name: "numeric", present: m.Numeric != nil, fields: numeric},
		{name: "geo", present: m.Geo != nil, fields: geo},
		{name: "vector", present: m.Vector != nil, fields: vector},
	}
}

// Validate fills in group and scalar defaults, normalizes every nested
// field schema and validates it. Field names must be unique within their
// group; the same name may appear across groups.
//
// Construction is all-or-nothing: on error the model must be discarded, as
// normalization may have been partially applied.
func (m *Model) Validate() error {
	m.applyDefaults()

	for _, g := range m.groups() {
		seen := make(map[string]struct{}, len(g.fields))
		for _, f := range g.fields {
			if err := f.validate(); err != nil {
				return err
			}
			name := f.FieldName()
			if _, ok := seen[name]; ok {
				return &ValidationError{
					Kind: groupKind(g.name), Name: name, Attr: "name",
					Reason: "duplicate field name in " + g.name + " group",
				}
			}
			seen[name] = struct{}{}
		}
	}
	return nil
}

func groupKind(group string) FieldType {
	switch group {
	case "tag":
		return FieldTypeTag
	case "text":
		return FieldTypeText
	case "numeric":
		return FieldTypeNumeric
	case "geo":
		return FieldTypeGeo
	default:
		return FieldTypeVector
	}
}

// IsEmpty reports whether all five field groups are absent. A group that
// was supplied as an empty list is present, so the model is not empty.
func (m *Model) IsEmpty() bool {
	return m.Tag == nil && m.Text == nil && m.Numeric == nil && m.Geo == nil && m.Vector == nil
}

// GetFields returns the descriptors of every field across all groups, in
// group order (tag, text, numeric, geo, vector) with each group's insertion
// order preserved. It returns nil if the model is empty.
func (m *Model) GetFields() []Field {
	if m.IsEmpty() {
		return nil
	}

	var fields []Field
	for _, g := range m.groups() {
		for _, f := range g.fields {
			fields = append(fields, f.AsField())
		}
	}
	return fields
}

// Keys returns the names of every field across all groups in the same
// order as GetFields, skipping absent groups. It returns nil if the model
// is empty.
func (m *Model) Keys() []string {
	if m.IsEmpty() {
		return nil
	}

	var keys []string
	for _, g := range m.groups() {
		if !g.present {
			continue
		}
		for _, f := range g.fields {
			keys = append(keys, f.FieldName())
		}
	}
	return keys
}

// ContentVector returns the vector field whose name equals
// ContentVectorKey. When several entries share the name, the first wins.
// It returns ErrNoContentVector if no entry matches.
func (m *Model) ContentVector() (*VectorSchema, error) {
	for i := range m.Vector {
		if m.Vector[i].FieldName() == m.ContentVectorKey {
			return &m.Vector[i], nil
		}
	}
	return nil, ErrNoContentVector
}
