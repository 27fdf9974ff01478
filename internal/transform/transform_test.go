package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecordell/partialgen/internal/diag"
	"github.com/ecordell/partialgen/internal/options"
	"github.com/ecordell/partialgen/internal/schema"
)

func dataSchema(fields ...schema.FieldSchema) *schema.StructSchema {
	return &schema.StructSchema{
		Name:    "Data",
		Package: "testdata",
		Kind:    schema.KindStruct,
		Fields:  fields,
		Pos:     "input.go:3:6",
	}
}

func TestTransformBasic(t *testing.T) {
	result, diags := Transform(dataSchema(schema.FieldSchema{Name: "Value", Type: "string"}))
	require.Empty(t, diags)

	assert.Equal(t, MirroredStruct{
		Name:       "PartialData",
		Visibility: schema.Exported,
		Fields:     []MirroredField{{Name: "Value", Type: "*string"}},
	}, result.Struct)

	assert.Equal(t, MergeSpec{
		Base:    "Data",
		Partial: "PartialData",
		Crate:   DefaultCrate,
		Entries: []MergeEntry{{
			BaseField:    "Value",
			PartialField: "Value",
			BaseType:     "string",
			PartialType:  "*string",
			Presence:     Pointer,
			Conversion:   Identity,
		}},
	}, result.Merge)
}

func TestTransformStructOptions(t *testing.T) {
	s := dataSchema(schema.FieldSchema{Name: "Value", Type: "string"})
	s.Annotations = []schema.Annotation{
		"//derive:Old",
		`//partially:rename="OptData", derive(Stringer, Equal)`,
		"// Data is data.",
		"//easyjson:json",
		`//partially:attribute(go:generate stringer), crate="example.com/rt"`,
	}

	result, diags := Transform(s)
	require.Empty(t, diags)

	assert.Equal(t, "OptData", result.Struct.Name)
	assert.Equal(t, []schema.Annotation{
		"//derive:Stringer,Equal",
		"// Data is data.",
		"//easyjson:json",
		"//go:generate stringer",
	}, result.Struct.Annotations)
	assert.Equal(t, "OptData", result.Merge.Partial)
	assert.Equal(t, "example.com/rt", result.Merge.Crate)
}

func TestTransformSkipAttributes(t *testing.T) {
	s := dataSchema(schema.FieldSchema{Name: "Value", Type: "string"})
	s.Annotations = []schema.Annotation{
		"// Data is data.",
		"//partially:skip_attributes,attribute(easyjson:json)",
	}

	result, diags := Transform(s)
	require.Empty(t, diags)
	assert.Equal(t, []schema.Annotation{"//easyjson:json"}, result.Struct.Annotations)
}

func TestTransformFieldOptions(t *testing.T) {
	s := dataSchema(
		schema.FieldSchema{
			Name:        "Name",
			Type:        "string",
			Annotations: []schema.Annotation{"// Name is shown.", `//partially:rename="Title"`},
			Tag:         `json:"name" partially:"omit,rename=\"X\""`,
		},
	)
	_, diags := Transform(s)
	assert.Equal(t, []diag.Kind{diag.ConflictingOptions}, diags.Kinds())
	assert.Equal(t, "Data.Name", diags[0].Scope)

	s = dataSchema(
		schema.FieldSchema{
			Name:        "Name",
			Type:        "string",
			Annotations: []schema.Annotation{"// Name is shown.", `//partially:rename="Title"`},
			Tag:         `json:"name"`,
		},
		schema.FieldSchema{Name: "Port", Type: "int", Tag: `partially:"as_type=*int32" yaml:"port"`},
		schema.FieldSchema{Name: "TLS", Type: "*bool", Tag: `partially:"transparent"`},
		schema.FieldSchema{Name: "Labels", Type: "map[string]string", Tag: `partially:"transparent"`},
		schema.FieldSchema{Name: "cache", Type: "map[string]string", Tag: `partially:"omit"`},
		schema.FieldSchema{Type: "sync.Mutex", Tag: `partially:"omit"`},
		schema.FieldSchema{Name: "Weight", Type: "float64", Tag: `partially:"as_type=*float32"`},
		schema.FieldSchema{Name: "Parent", Type: "*Data"},
	)

	result, diags := Transform(s)
	require.Empty(t, diags)

	assert.Equal(t, []MirroredField{
		{Name: "Title", Type: "*string", Annotations: []schema.Annotation{"// Name is shown."}, Tag: `json:"name"`},
		{Name: "Port", Type: "*int32", Tag: `yaml:"port"`},
		{Name: "TLS", Type: "*bool"},
		{Name: "Labels", Type: "map[string]string"},
		{Name: "Weight", Type: "*float32"},
		{Name: "Parent", Type: "**Data"},
	}, result.Struct.Fields)

	type classified struct {
		base, partial string
		presence      Presence
		conversion    Conversion
	}
	var got []classified
	for _, e := range result.Merge.Entries {
		got = append(got, classified{e.BaseField, e.PartialField, e.Presence, e.Conversion})
	}
	assert.Equal(t, []classified{
		{"Name", "Title", Pointer, Identity},
		{"Port", "Port", Pointer, Convert},
		{"TLS", "TLS", Pointer, Rewrap},
		{"Labels", "Labels", Nilable, Identity},
		{"Weight", "Weight", Pointer, Convert},
		{"Parent", "Parent", Pointer, Identity},
	}, got)
}

func TestTransformGeneric(t *testing.T) {
	s := &schema.StructSchema{
		Name: "Pair",
		Kind: schema.KindStruct,
		TypeParams: []schema.TypeParam{
			{Name: "K", Constraint: "comparable"},
			{Name: "V", Constraint: "~int | ~string"},
		},
		Fields: []schema.FieldSchema{
			{Name: "Key", Type: "K"},
			{Name: "Value", Type: "V"},
		},
	}

	result, diags := Transform(s)
	require.Empty(t, diags)
	assert.Equal(t, s.TypeParams, result.Struct.TypeParams)
	assert.Equal(t, s.TypeParams, result.Merge.TypeParams)
	assert.True(t, result.Merge.Generic())
	assert.Equal(t, schema.TypeExpr("*K"), result.Struct.Fields[0].Type)
	assert.Equal(t, Identity, result.Merge.Entries[1].Conversion)
}

func TestTransformUnexported(t *testing.T) {
	s := dataSchema(schema.FieldSchema{Name: "value", Type: "int"})
	s.Name = "data"

	result, diags := Transform(s)
	require.Empty(t, diags)
	assert.Equal(t, "partialData", result.Struct.Name)
	assert.Equal(t, schema.Unexported, result.Struct.Visibility)
	assert.Equal(t, "value", result.Struct.Fields[0].Name)
}

func TestTransformErrors(t *testing.T) {
	tests := []struct {
		name      string
		schema    *schema.StructSchema
		wantKinds []diag.Kind
		wantScope []string
	}{
		{
			name:      "not a struct",
			schema:    &schema.StructSchema{Name: "Color", Kind: "int"},
			wantKinds: []diag.Kind{diag.UnsupportedShape},
			wantScope: []string{"Color"},
		},
		{
			name: "embedded field without a name",
			schema: dataSchema(
				schema.FieldSchema{Type: "time.Time"},
			),
			wantKinds: []diag.Kind{diag.MissingIdentifier},
			wantScope: []string{"Data.(embedded time.Time)"},
		},
		{
			name: "renamed embedded field",
			schema: dataSchema(
				schema.FieldSchema{Type: "io.Reader", Tag: `partially:"rename=\"Reader\""`},
				schema.FieldSchema{Name: "Value", Type: "string"},
			),
			wantKinds: []diag.Kind{diag.MissingIdentifier},
			wantScope: []string{"Data.(embedded io.Reader)"},
		},
		{
			name: "every field is checked",
			schema: dataSchema(
				schema.FieldSchema{Name: "A", Type: "int", Tag: `partially:"transparent,as_type=*int"`},
				schema.FieldSchema{Name: "B", Type: "int"},
				schema.FieldSchema{Name: "C", Type: "int", Tag: `partially:"frobnicate"`},
			),
			wantKinds: []diag.Kind{diag.ConflictingOptions, diag.UnsupportedArgument},
			wantScope: []string{"Data.A", "Data.C"},
		},
		{
			name: "struct and field problems together",
			schema: func() *schema.StructSchema {
				s := dataSchema(schema.FieldSchema{Name: "A", Type: "int", Tag: `partially:"derive(X)"`})
				s.Annotations = []schema.Annotation{`//partially:rename="\xff"`}
				return s
			}(),
			wantKinds: []diag.Kind{diag.MalformedLiteral, diag.UnsupportedArgument},
			wantScope: []string{"Data", "Data.A"},
		},
		{
			name: "transparent field that cannot be nil",
			schema: dataSchema(
				schema.FieldSchema{Name: "Count", Type: "int", Tag: `partially:"transparent"`},
			),
			wantKinds: []diag.Kind{diag.UnsupportedArgument},
			wantScope: []string{"Data.Count"},
		},
		{
			name: "unparsable type",
			schema: dataSchema(
				schema.FieldSchema{Name: "Count", Type: "map[int"},
			),
			wantKinds: []diag.Kind{diag.InvalidSyntax, diag.InvalidSyntax},
			wantScope: []string{"Data.Count", "Data.Count"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, diags := Transform(tt.schema)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantKinds, diags.Kinds())

			var scopes []string
			for _, d := range diags {
				scopes = append(scopes, d.Scope)
			}
			assert.Equal(t, tt.wantScope, scopes)
		})
	}
}

func TestTransformOmitEmbedded(t *testing.T) {
	result, diags := Transform(dataSchema(
		schema.FieldSchema{Type: "sync.Mutex", Tag: `partially:"omit"`},
		schema.FieldSchema{Name: "Value", Type: "string"},
	))
	require.Empty(t, diags)
	require.Len(t, result.Struct.Fields, 1)
	require.Len(t, result.Merge.Entries, 1)
	assert.Equal(t, "Value", result.Merge.Entries[0].BaseField)
}

func TestTransformAll(t *testing.T) {
	pkg := &schema.Package{Name: "testdata", Structs: []*schema.StructSchema{
		dataSchema(schema.FieldSchema{Name: "Value", Type: "string"}),
		{Name: "Color", Kind: "int"},
	}}

	results, diags := All(pkg)
	assert.Nil(t, results)
	assert.Equal(t, []diag.Kind{diag.UnsupportedShape}, diags.Kinds())

	pkg.Structs = pkg.Structs[:1]
	results, diags = All(pkg)
	require.Empty(t, diags)
	require.Len(t, results, 1)
	assert.Equal(t, "PartialData", results[0].Struct.Name)
}

func TestField(t *testing.T) {
	f := schema.FieldSchema{Name: "Value", Type: "[]byte", Tag: `partially:"omit"`}
	_, kept, diags := Field(f, options.FieldOps{Omit: true})
	assert.False(t, kept)
	assert.Empty(t, diags)

	mirrored, kept, diags := Field(schema.FieldSchema{Name: "Value", Type: "[]byte"}, options.FieldOps{Rename: "Bytes"})
	require.True(t, kept)
	assert.Empty(t, diags)
	assert.Equal(t, MirroredField{Name: "Bytes", Type: "*[]byte"}, mirrored)

	_, kept, diags = Field(schema.FieldSchema{Type: "io.Reader"}, options.FieldOps{Rename: "Reader"})
	assert.False(t, kept)
	assert.Equal(t, []diag.Kind{diag.MissingIdentifier}, diags.Kinds())
}

func TestPartialName(t *testing.T) {
	assert.Equal(t, "PartialConfig", PartialName("Config"))
	assert.Equal(t, "partialConfig", PartialName("config"))
	assert.Equal(t, "partialÉtat", PartialName("état"))
}
