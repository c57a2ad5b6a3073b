package redischema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFieldSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  TextFieldSchema
		wantErr bool
	}{
		{name: "defaults", schema: TextFieldSchema{Name: "body"}},
		{name: "explicit weight", schema: TextFieldSchema{Name: "body", Weight: 2.5}},
		{name: "missing name", schema: TextFieldSchema{}, wantErr: true},
		{name: "negative weight", schema: TextFieldSchema{Name: "body", Weight: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.validate()
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, FieldTypeText, verr.Kind)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTextFieldSchemaDefaults(t *testing.T) {
	s := TextFieldSchema{Name: "body"}
	require.NoError(t, s.validate())
	assert.Equal(t, 1.0, s.Weight)

	f := s.AsField()
	assert.Equal(t, "body", f.Name)
	assert.Equal(t, FieldTypeText, f.Type)
	assert.Equal(t, TextFieldOptions{Weight: 1.0}, f.Options)
}

func TestTagFieldSchemaDefaults(t *testing.T) {
	s := TagFieldSchema{Name: "category"}
	require.NoError(t, s.validate())
	assert.Equal(t, ",", s.Separator)

	s = TagFieldSchema{Name: "category", Separator: "|", CaseSensitive: true}
	require.NoError(t, s.validate())

	f := s.AsField()
	assert.Equal(t, FieldTypeTag, f.Type)
	assert.Equal(t, TagFieldOptions{Separator: "|", CaseSensitive: true}, f.Options)
}

func TestBaseOnlyFieldSchemas(t *testing.T) {
	n := NumericFieldSchema{Name: "price", Sortable: true}
	require.NoError(t, n.validate())
	assert.Equal(t, Field{Name: "price", Type: FieldTypeNumeric, Options: NumericFieldOptions{Sortable: true}}, n.AsField())

	g := GeoFieldSchema{Name: "location"}
	require.NoError(t, g.validate())
	assert.Equal(t, Field{Name: "location", Type: FieldTypeGeo, Options: GeoFieldOptions{}}, g.AsField())

	missing := NumericFieldSchema{}
	var verr *ValidationError
	require.ErrorAs(t, missing.validate(), &verr)
	assert.Equal(t, "name", verr.Attr)
}

func TestFieldArgs(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		expected []string
	}{
		{
			name:     "text defaults",
			field:    (&TextFieldSchema{Name: "content", Weight: 1.0}).AsField(),
			expected: []string{"content", "TEXT", "WEIGHT", "1"},
		},
		{
			name: "text all options",
			field: (&TextFieldSchema{
				Name: "title", Weight: 2.5, NoStem: true,
				PhoneticMatcher: "dm:en", WithSuffixTrie: true, Sortable: true,
			}).AsField(),
			expected: []string{"title", "TEXT", "WEIGHT", "2.5", "NOSTEM", "PHONETIC", "dm:en", "WITHSUFFIXTRIE", "SORTABLE"},
		},
		{
			name:     "tag",
			field:    (&TagFieldSchema{Name: "category", Separator: ",", CaseSensitive: true}).AsField(),
			expected: []string{"category", "TAG", "SEPARATOR", ",", "CASESENSITIVE"},
		},
		{
			name:     "numeric sortable",
			field:    (&NumericFieldSchema{Name: "price", Sortable: true}).AsField(),
			expected: []string{"price", "NUMERIC", "SORTABLE"},
		},
		{
			name:     "geo",
			field:    (&GeoFieldSchema{Name: "location"}).AsField(),
			expected: []string{"location", "GEO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.field.Args())
		})
	}
}

func TestVectorFieldArgs(t *testing.T) {
	flat := FlatVectorSchema{Name: "embedding", Dims: 128}
	require.NoError(t, flat.validate())
	assert.Equal(t, []string{
		"embedding", "VECTOR", "FLAT", "10",
		"TYPE", "FLOAT32",
		"DIM", "128",
		"DISTANCE_METRIC", "COSINE",
		"INITIAL_CAP", "20000",
		"BLOCK_SIZE", "1000",
	}, flat.AsField().Args())

	hnsw := HNSWVectorSchema{Name: "embedding", Dims: 128, DistanceMetric: DistanceMetricL2}
	require.NoError(t, hnsw.validate())
	assert.Equal(t, []string{
		"embedding", "VECTOR", "HNSW", "16",
		"TYPE", "FLOAT32",
		"DIM", "128",
		"DISTANCE_METRIC", "L2",
		"INITIAL_CAP", "20000",
		"M", "16",
		"EF_CONSTRUCTION", "200",
		"EF_RUNTIME", "10",
		"EPSILON", "0.8",
	}, hnsw.AsField().Args())
}
