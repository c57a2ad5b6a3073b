// Package redischema describes and validates RediSearch index schemas.
//
// A schema is an aggregate of field groups (tag, text, numeric, geo,
// vector) plus the two content keys that downstream retrieval logic uses
// to locate the primary text and embedding fields. The package validates
// and normalizes user-supplied definitions and renders them as field
// descriptors for an index-creation client; it performs no index calls
// itself.
//
// # Quick Start
//
// Load a schema from a YAML file, a map, or inline YAML:
//
//	model, _ := redischema.ReadSchema("schema.yaml")
//	model, _ := redischema.ReadSchema(map[string]any{
//	    "text": []any{map[string]any{"name": "body"}},
//	})
//	model, _ := redischema.ReadSchema([]byte("tag:\n  - name: category\n"))
//
// Hand the descriptors to the index client:
//
//	for _, f := range model.GetFields() {
//	    args = append(args, f.Args()...)
//	}
//
// Omitted groups get the reference defaults: one text field named
// "content" and one FLAT vector field named "content_vector" with 1536
// dimensions.
//
// Schema documents can also be fetched from object storage via the
// source subpackages:
//
//	src, _ := s3.New(ctx, "my-bucket")
//	model, _ := redischema.ReadSchemaFrom(ctx, src, "schemas/articles.yaml")
//
// A validated Model is immutable and safe for concurrent readers.
package redischema
