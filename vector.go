package redischema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DistanceMetric is the distance function of a vector field. Values are
// stored upper-cased regardless of input case.
type DistanceMetric string

const (
	DistanceMetricL2     DistanceMetric = "L2"
	DistanceMetricCosine DistanceMetric = "COSINE"
	DistanceMetricIP     DistanceMetric = "IP"
)

// VectorAlgorithm is the index algorithm of a vector field. It doubles as
// the parse-time discriminator and the literal tag echoed into the
// descriptor.
type VectorAlgorithm string

const (
	AlgorithmFlat VectorAlgorithm = "FLAT"
	AlgorithmHNSW VectorAlgorithm = "HNSW"
)

const (
	// DefaultDatatype is the default vector component type.
	DefaultDatatype = "FLOAT32"

	// DefaultDistanceMetric is the default distance function.
	DefaultDistanceMetric = DistanceMetricCosine

	// DefaultInitialCap is the default initial index capacity.
	DefaultInitialCap = 20000

	// DefaultBlockSize is the default FLAT allocation block size.
	DefaultBlockSize = 1000

	// DefaultM is the default number of bidirectional HNSW links.
	DefaultM = 16

	// DefaultEFConstruction is the default HNSW build-time candidate list size.
	DefaultEFConstruction = 200

	// DefaultEFRuntime is the default HNSW query-time candidate list size.
	DefaultEFRuntime = 10

	// DefaultEpsilon is the default HNSW range query relaxation factor.
	DefaultEpsilon = 0.8

	// DefaultContentVectorDims is the dimension of the default content_vector
	// field (matches OpenAI text-embedding-ada-002 output).
	DefaultContentVectorDims = 1536
)

// FlatVectorSchema describes a brute-force (FLAT) vector field.
type FlatVectorSchema struct {
	Name           string         `yaml:"name"`
	Dims           int            `yaml:"dims"`
	Datatype       string         `yaml:"datatype"`
	DistanceMetric DistanceMetric `yaml:"distance_metric"`
	InitialCap     int            `yaml:"initial_cap"`
	BlockSize      int            `yaml:"block_size"`
}

func (s *FlatVectorSchema) validate() error {
	if err := validateVectorBase(s.Name, s.Dims, &s.Datatype, &s.DistanceMetric, &s.InitialCap); err != nil {
		return err
	}
	if s.BlockSize == 0 {
		s.BlockSize = DefaultBlockSize
	}
	if s.BlockSize < 0 {
		return &ValidationError{
			Kind: FieldTypeVector, Name: s.Name, Attr: "block_size",
			Reason: fmt.Sprintf("block_size must be a positive integer, got %d", s.BlockSize),
		}
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *FlatVectorSchema) AsField() Field {
	return Field{
		Name: s.Name,
		Type: FieldTypeVector,
		Options: VectorFieldOptions{
			Algorithm: AlgorithmFlat,
			Attributes: map[string]any{
				"TYPE":            s.Datatype,
				"DIM":             s.Dims,
				"DISTANCE_METRIC": string(s.DistanceMetric),
				"INITIAL_CAP":     s.InitialCap,
				"BLOCK_SIZE":      s.BlockSize,
			},
		},
	}
}

// HNSWVectorSchema describes a graph-based approximate nearest neighbor
// (HNSW) vector field.
type HNSWVectorSchema struct {
	Name           string         `yaml:"name"`
	Dims           int            `yaml:"dims"`
	Datatype       string         `yaml:"datatype"`
	DistanceMetric DistanceMetric `yaml:"distance_metric"`
	InitialCap     int            `yaml:"initial_cap"`
	M              int            `yaml:"m"`
	EFConstruction int            `yaml:"ef_construction"`
	EFRuntime      int            `yaml:"ef_runtime"`
	Epsilon        float64        `yaml:"epsilon"`
}

func (s *HNSWVectorSchema) validate() error {
	if err := validateVectorBase(s.Name, s.Dims, &s.Datatype, &s.DistanceMetric, &s.InitialCap); err != nil {
		return err
	}
	if s.M == 0 {
		s.M = DefaultM
	}
	if s.EFConstruction == 0 {
		s.EFConstruction = DefaultEFConstruction
	}
	if s.EFRuntime == 0 {
		s.EFRuntime = DefaultEFRuntime
	}
	if s.Epsilon == 0 {
		s.Epsilon = DefaultEpsilon
	}
	for _, p := range []struct {
		attr string
		val  int
	}{
		{"m", s.M},
		{"ef_construction", s.EFConstruction},
		{"ef_runtime", s.EFRuntime},
	} {
		if p.val < 0 {
			return &ValidationError{
				Kind: FieldTypeVector, Name: s.Name, Attr: p.attr,
				Reason: fmt.Sprintf("%s must be a positive integer, got %d", p.attr, p.val),
			}
		}
	}
	if s.Epsilon < 0 {
		return &ValidationError{
			Kind: FieldTypeVector, Name: s.Name, Attr: "epsilon",
			Reason: fmt.Sprintf("epsilon must be positive, got %g", s.Epsilon),
		}
	}
	return nil
}

// AsField renders the schema as an index field descriptor.
func (s *HNSWVectorSchema) AsField() Field {
	return Field{
		Name: s.Name,
		Type: FieldTypeVector,
		Options: VectorFieldOptions{
			Algorithm: AlgorithmHNSW,
			Attributes: map[string]any{
				"TYPE":            s.Datatype,
				"DIM":             s.Dims,
				"DISTANCE_METRIC": string(s.DistanceMetric),
				"INITIAL_CAP":     s.InitialCap,
				"M":               s.M,
				"EF_CONSTRUCTION": s.EFConstruction,
				"EF_RUNTIME":      s.EFRuntime,
				"EPSILON":         s.Epsilon,
			},
		},
	}
}

// validateVectorBase normalizes and validates the attributes shared by both
// vector variants. Datatype and distance metric are upper-cased before
// validation.
func validateVectorBase(name string, dims int, datatype *string, metric *DistanceMetric, initialCap *int) error {
	if name == "" {
		return &ValidationError{Kind: FieldTypeVector, Attr: "name", Reason: "name is required"}
	}
	if dims <= 0 {
		return &ValidationError{
			Kind: FieldTypeVector, Name: name, Attr: "dims",
			Reason: fmt.Sprintf("dims must be a positive integer, got %d", dims),
		}
	}

	if *datatype == "" {
		*datatype = DefaultDatatype
	} else {
		*datatype = strings.ToUpper(*datatype)
	}

	if *metric == "" {
		*metric = DefaultDistanceMetric
	} else {
		*metric = DistanceMetric(strings.ToUpper(string(*metric)))
	}
	switch *metric {
	case DistanceMetricL2, DistanceMetricCosine, DistanceMetricIP:
	default:
		return &ValidationError{
			Kind: FieldTypeVector, Name: name, Attr: "distance_metric",
			Reason: fmt.Sprintf("distance_metric must be one of L2, COSINE, IP; got %q", *metric),
		}
	}

	if *initialCap == 0 {
		*initialCap = DefaultInitialCap
	}
	if *initialCap < 0 {
		return &ValidationError{
			Kind: FieldTypeVector, Name: name, Attr: "initial_cap",
			Reason: fmt.Sprintf("initial_cap must be a positive integer, got %d", *initialCap),
		}
	}
	return nil
}

// VectorSchema is a tagged union over the supported vector field variants.
// Exactly one of Flat and HNSW is set; the variant is selected at parse
// time by the "algorithm" discriminator.
type VectorSchema struct {
	Flat *FlatVectorSchema
	HNSW *HNSWVectorSchema
}

// NewFlatVector wraps a FLAT schema as a VectorSchema.
func NewFlatVector(s FlatVectorSchema) VectorSchema {
	return VectorSchema{Flat: &s}
}

// NewHNSWVector wraps an HNSW schema as a VectorSchema.
func NewHNSWVector(s HNSWVectorSchema) VectorSchema {
	return VectorSchema{HNSW: &s}
}

// Algorithm returns the discriminator of the selected variant.
func (v *VectorSchema) Algorithm() VectorAlgorithm {
	if v.HNSW != nil {
		return AlgorithmHNSW
	}
	return AlgorithmFlat
}

// FieldName returns the field name of the selected variant.
func (v *VectorSchema) FieldName() string {
	switch {
	case v.Flat != nil:
		return v.Flat.Name
	case v.HNSW != nil:
		return v.HNSW.Name
	default:
		return ""
	}
}

// Dims returns the vector dimension of the selected variant.
func (v *VectorSchema) Dims() int {
	switch {
	case v.Flat != nil:
		return v.Flat.Dims
	case v.HNSW != nil:
		return v.HNSW.Dims
	default:
		return 0
	}
}

func (v *VectorSchema) validate() error {
	switch {
	case v.Flat != nil && v.HNSW == nil:
		return v.Flat.validate()
	case v.HNSW != nil && v.Flat == nil:
		return v.HNSW.validate()
	default:
		return &ValidationError{
			Kind: FieldTypeVector, Name: v.FieldName(), Attr: "algorithm",
			Reason: "exactly one of the FLAT and HNSW variants must be set",
		}
	}
}

// AsField renders the selected variant as an index field descriptor.
func (v *VectorSchema) AsField() Field {
	if v.HNSW != nil {
		return v.HNSW.AsField()
	}
	return v.Flat.AsField()
}

// UnmarshalYAML selects the variant by the "algorithm" discriminator and
// decodes the node into it. Discriminators other than FLAT and HNSW are
// rejected at parse time.
func (v *VectorSchema) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Name      string `yaml:"name"`
		Algorithm string `yaml:"algorithm"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	switch VectorAlgorithm(strings.ToUpper(head.Algorithm)) {
	case AlgorithmFlat:
		var s FlatVectorSchema
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.Flat = &s
	case AlgorithmHNSW:
		var s HNSWVectorSchema
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.HNSW = &s
	case "":
		return &ValidationError{
			Kind: FieldTypeVector, Name: head.Name, Attr: "algorithm",
			Reason: "algorithm is required (FLAT or HNSW)",
		}
	default:
		return &ValidationError{
			Kind: FieldTypeVector, Name: head.Name, Attr: "algorithm",
			Reason: fmt.Sprintf("algorithm must be FLAT or HNSW, got %q", head.Algorithm),
		}
	}
	return nil
}

// MarshalYAML emits the selected variant with its algorithm discriminator.
func (v VectorSchema) MarshalYAML() (any, error) {
	switch {
	case v.Flat != nil:
		return struct {
			Algorithm        VectorAlgorithm `yaml:"algorithm"`
			FlatVectorSchema `yaml:",inline"`
		}{AlgorithmFlat, *v.Flat}, nil
	case v.HNSW != nil:
		return struct {
			Algorithm        VectorAlgorithm `yaml:"algorithm"`
			HNSWVectorSchema `yaml:",inline"`
		}{AlgorithmHNSW, *v.HNSW}, nil
	default:
		return nil, &ValidationError{
			Kind: FieldTypeVector, Attr: "algorithm",
			Reason: "exactly one of the FLAT and HNSW variants must be set",
		}
	}
}
