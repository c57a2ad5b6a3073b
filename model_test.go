package redischema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()

	require.Len(t, m.Text, 1)
	assert.Equal(t, "content", m.Text[0].Name)
	assert.Equal(t, 1.0, m.Text[0].Weight)

	require.Len(t, m.Vector, 1)
	require.NotNil(t, m.Vector[0].Flat)
	assert.Equal(t, "content_vector", m.Vector[0].FieldName())
	assert.Equal(t, 1536, m.Vector[0].Dims())
	assert.Equal(t, AlgorithmFlat, m.Vector[0].Algorithm())

	assert.Equal(t, "content", m.ContentKey)
	assert.Equal(t, "content_vector", m.ContentVectorKey)
}

func TestModelIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		model    Model
		expected bool
	}{
		{name: "all groups absent", model: Model{}, expected: true},
		{name: "empty but present tag list", model: Model{Tag: []TagFieldSchema{}}, expected: false},
		{name: "empty but present vector list", model: Model{Vector: []VectorSchema{}}, expected: false},
		{name: "populated", model: Model{Text: []TextFieldSchema{{Name: "body"}}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.model.IsEmpty())
		})
	}
}

func TestModelEmptyAccessors(t *testing.T) {
	m := Model{}
	assert.Empty(t, m.GetFields())
	assert.Empty(t, m.Keys())
}

func TestModelGetFieldsOrder(t *testing.T) {
	m := Model{
		Tag:     []TagFieldSchema{{Name: "category"}, {Name: "brand"}},
		Text:    []TextFieldSchema{{Name: "title"}, {Name: "body"}},
		Numeric: []NumericFieldSchema{{Name: "price"}},
		Geo:     []GeoFieldSchema{{Name: "location"}},
		Vector:  []VectorSchema{NewFlatVector(FlatVectorSchema{Name: "embedding", Dims: 128})},
	}
	require.NoError(t, m.Validate())

	fields := m.GetFields()
	require.Len(t, fields, 7)

	var got []string
	for _, f := range fields {
		got = append(got, f.Name+":"+string(f.Type))
	}
	assert.Equal(t, []string{
		"category:TAG", "brand:TAG",
		"title:TEXT", "body:TEXT",
		"price:NUMERIC",
		"location:GEO",
		"embedding:VECTOR",
	}, got)

	assert.Equal(t, []string{"category", "brand", "title", "body", "price", "location", "embedding"}, m.Keys())
}

func TestModelContentVector(t *testing.T) {
	m := Model{
		Vector: []VectorSchema{
			NewFlatVector(FlatVectorSchema{Name: "title_vector", Dims: 128}),
			NewHNSWVector(HNSWVectorSchema{Name: "content_vector", Dims: 768}),
		},
	}
	require.NoError(t, m.Validate())

	cv, err := m.ContentVector()
	require.NoError(t, err)
	assert.Equal(t, "content_vector", cv.FieldName())
	assert.Equal(t, AlgorithmHNSW, cv.Algorithm())

	m.ContentVectorKey = "missing_vector"
	_, err = m.ContentVector()
	assert.ErrorIs(t, err, ErrNoContentVector)
}

func TestModelContentVectorFirstMatchWins(t *testing.T) {
	m := Model{
		Vector: []VectorSchema{
			NewFlatVector(FlatVectorSchema{Name: "content_vector", Dims: 128}),
			NewHNSWVector(HNSWVectorSchema{Name: "other_vector", Dims: 768}),
		},
		ContentVectorKey: "content_vector",
	}

	cv, err := m.ContentVector()
	require.NoError(t, err)
	assert.Same(t, &m.Vector[0], cv)
}

func TestModelValidateDuplicateNames(t *testing.T) {
	m := Model{
		Tag: []TagFieldSchema{{Name: "category"}, {Name: "category"}},
	}
	var verr *ValidationError
	require.ErrorAs(t, m.Validate(), &verr)
	assert.Equal(t, FieldTypeTag, verr.Kind)
	assert.Equal(t, "category", verr.Name)
}

func TestModelValidateAcceptsCrossGroupNames(t *testing.T) {
	// The reference accepts the same name across groups.
	m := Model{
		Tag:     []TagFieldSchema{{Name: "score"}},
		Numeric: []NumericFieldSchema{{Name: "score"}},
	}
	require.NoError(t, m.Validate())
}

func TestModelValidatePropagatesFieldErrors(t *testing.T) {
	m := Model{
		Vector: []VectorSchema{NewFlatVector(FlatVectorSchema{Name: "v", Dims: 4, DistanceMetric: "XYZ"})},
	}
	var verr *ValidationError
	require.ErrorAs(t, m.Validate(), &verr)
	assert.Equal(t, "distance_metric", verr.Attr)
}

func TestModelExplicitEmptyVectorGroup(t *testing.T) {
	// An explicitly empty vector group overrides the default entry.
	m := Model{Vector: []VectorSchema{}}
	require.NoError(t, m.Validate())

	assert.Empty(t, m.Vector)
	_, err := m.ContentVector()
	assert.ErrorIs(t, err, ErrNoContentVector)
}
