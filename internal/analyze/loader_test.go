package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadExampleModels loads every sample package and indexes models by type name.
func loadExampleModels(t *testing.T) map[string]*TypeModel {
	t.Helper()

	analyzer := NewAnalyzer()
	models, diags, err := analyzer.ExtractModels(
		"putgen/examples/geo",
		"putgen/examples/blog",
		"putgen/examples/accounts",
		"putgen/examples/gallery",
	)
	require.NoError(t, err)
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Errors)

	byName := make(map[string]*TypeModel, len(models))
	for _, m := range models {
		byName[m.ID.Name] = m
	}

	return byName
}

func TestExtractModels_FindsAnnotatedTypes(t *testing.T) {
	models := loadExampleModels(t)

	require.Len(t, models, 4)
	assert.Contains(t, models, "Point")
	assert.Contains(t, models, "Post")
	assert.Contains(t, models, "Account")
	assert.Contains(t, models, "Photo")

	// Unannotated helper types must not produce models.
	assert.NotContains(t, models, "Origin")
}

func TestExtractModels_Point(t *testing.T) {
	point := loadExampleModels(t)["Point"]
	require.NotNil(t, point)

	assert.Equal(t, "points", point.Target)
	assert.Equal(t, "putgen/examples/geo", point.ID.PkgPath)
	assert.Equal(t, "geo", point.PkgName)
	assert.Equal(t, ConstructFields, point.Construction)

	require.Len(t, point.Columns, 2)

	x := point.Columns[0]
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, "X", x.FieldName)
	assert.Equal(t, SemanticType{Kind: KindInt, Nullable: true}, x.Type)
	assert.Equal(t, ReadDirectField, x.Read)
	assert.True(t, x.Key)

	y := point.Columns[1]
	assert.Equal(t, "y", y.Name)
	assert.Equal(t, SemanticType{Kind: KindInt}, y.Type)
	assert.False(t, y.Key)
}

func TestExtractModels_DeclarationOrderPreserved(t *testing.T) {
	post := loadExampleModels(t)["Post"]
	require.NotNil(t, post)

	var names []string
	for _, c := range post.Columns {
		names = append(names, c.Name)
	}

	assert.Equal(t,
		[]string{"author_id", "slug", "title", "body", "draft", "score", "view_count"},
		names)

	keys := post.KeyColumns()
	require.Len(t, keys, 2)
	assert.Equal(t, "author_id", keys[0].Name)
	assert.Equal(t, "slug", keys[1].Name)
}

func TestExtractModels_UntaggedFieldsSkipped(t *testing.T) {
	post := loadExampleModels(t)["Post"]
	require.NotNil(t, post)

	for _, c := range post.Columns {
		assert.NotEqual(t, "Scratch", c.FieldName)
	}
}

func TestExtractModels_SemanticTypes(t *testing.T) {
	post := loadExampleModels(t)["Post"]
	require.NotNil(t, post)

	byName := make(map[string]ColumnMember)
	for _, c := range post.Columns {
		byName[c.Name] = c
	}

	assert.Equal(t, SemanticType{Kind: KindLong}, byName["author_id"].Type)
	assert.Equal(t, SemanticType{Kind: KindString}, byName["slug"].Type)
	assert.Equal(t, SemanticType{Kind: KindByteArray, Nullable: true}, byName["body"].Type)
	assert.Equal(t, SemanticType{Kind: KindBool}, byName["draft"].Type)
	assert.Equal(t, SemanticType{Kind: KindDouble}, byName["score"].Type)
	assert.Equal(t, SemanticType{Kind: KindLong, Nullable: true}, byName["view_count"].Type)
}

func TestExtractModels_AccessorPair(t *testing.T) {
	account := loadExampleModels(t)["Account"]
	require.NotNil(t, account)

	assert.Equal(t, ConstructFactory, account.Construction)
	require.NotNil(t, account.Factory)
	assert.Equal(t, "NewAccount", account.Factory.Name)
	assert.Equal(t, []string{"id", "email", "balance"}, account.Factory.Params)

	require.Len(t, account.Columns, 3)

	id := account.Columns[0]
	assert.Equal(t, ReadAccessor, id.Read)
	assert.Equal(t, "ID", id.Getter)

	email := account.Columns[1]
	assert.Equal(t, ReadAccessor, email.Read)
	assert.Equal(t, "Email", email.Getter)

	// Get-prefixed getters are recognized too.
	balance := account.Columns[2]
	assert.Equal(t, ReadAccessor, balance.Read)
	assert.Equal(t, "GetBalance", balance.Getter)
}

func TestExtractModels_FactoryWithDirectFields(t *testing.T) {
	photo := loadExampleModels(t)["Photo"]
	require.NotNil(t, photo)

	// Per-column read strategy is independent of the per-type construction
	// strategy: Photo constructs via factory but reads exported fields.
	assert.Equal(t, ConstructFactory, photo.Construction)
	for _, c := range photo.Columns {
		assert.Equal(t, ReadDirectField, c.Read)
	}

	require.NotNil(t, photo.Factory)
	assert.Equal(t, "NewPhoto", photo.Factory.Name)
	assert.Equal(t, []string{"id", "uri", "takenAt"}, photo.Factory.Params)
}
