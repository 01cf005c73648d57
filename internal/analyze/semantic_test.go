package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSemanticType_Primitives(t *testing.T) {
	tests := []struct {
		in   types.Type
		want SemanticType
	}{
		{types.Typ[types.Bool], SemanticType{Kind: KindBool}},
		{types.Typ[types.Int], SemanticType{Kind: KindInt}},
		{types.Typ[types.Int32], SemanticType{Kind: KindInt}},
		{types.Typ[types.Int64], SemanticType{Kind: KindLong}},
		{types.Typ[types.Float32], SemanticType{Kind: KindFloat}},
		{types.Typ[types.Float64], SemanticType{Kind: KindDouble}},
		{types.Typ[types.String], SemanticType{Kind: KindString}},
	}

	for _, tt := range tests {
		got, err := ResolveSemanticType(tt.in)
		require.NoError(t, err, "type %s", tt.in)
		assert.Equal(t, tt.want, got, "type %s", tt.in)
	}
}

func TestResolveSemanticType_NullableVariants(t *testing.T) {
	got, err := ResolveSemanticType(types.NewPointer(types.Typ[types.Int64]))
	require.NoError(t, err)
	assert.Equal(t, SemanticType{Kind: KindLong, Nullable: true}, got)

	got, err = ResolveSemanticType(types.NewPointer(types.Typ[types.String]))
	require.NoError(t, err)
	assert.Equal(t, SemanticType{Kind: KindString, Nullable: true}, got)
}

func TestResolveSemanticType_ByteArray(t *testing.T) {
	got, err := ResolveSemanticType(types.NewSlice(types.Typ[types.Uint8]))
	require.NoError(t, err)
	assert.Equal(t, SemanticType{Kind: KindByteArray, Nullable: true}, got)
}

func TestResolveSemanticType_Unsupported(t *testing.T) {
	pkg := types.NewPackage("example/models", "models")
	named := newNamedStruct(pkg, "Nested", nil, nil)

	unsupported := []types.Type{
		types.Typ[types.Uint64],
		types.Typ[types.Complex128],
		types.NewSlice(types.Typ[types.Int64]),
		types.NewMap(types.Typ[types.String], types.Typ[types.String]),
		types.NewChan(types.SendRecv, types.Typ[types.Int]),
		named,
		types.NewPointer(named),
	}

	for _, tt := range unsupported {
		_, err := ResolveSemanticType(tt)
		assert.Error(t, err, "type %s", tt)
	}
}

func TestSemanticTypeString(t *testing.T) {
	assert.Equal(t, "long?", SemanticType{Kind: KindLong, Nullable: true}.String())
	assert.Equal(t, "int", SemanticType{Kind: KindInt}.String())
	assert.Equal(t, "byte-array?", SemanticType{Kind: KindByteArray, Nullable: true}.String())
}
