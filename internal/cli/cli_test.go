package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/coerce/internal/logging"
	"github.com/aretw0/coerce/internal/testutils"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/observability"
	"github.com/aretw0/coerce/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaFile = `
schemas:
  user/age: nat-int
  user/tags: "[keyword]"
  app/age:
    form: "@user/age"
    parent: user/age
`

func writeSchemas(t *testing.T) string {
	return testutils.WriteFile(t, "schemas.yaml", schemaFile)
}

func TestLoadSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		reg, err := LoadSource(ctx, Options{})
		require.NoError(t, err)
		assert.Empty(t, reg.IDs())
	})

	t.Run("File", func(t *testing.T) {
		reg, err := LoadSource(ctx, Options{SchemaFile: writeSchemas(t)})
		require.NoError(t, err)
		assert.Len(t, reg.IDs(), 3)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadSource(ctx, Options{SchemaFile: filepath.Join(t.TempDir(), "nope.yaml")})
		assert.Error(t, err)
	})

	t.Run("Redis Overrides File", func(t *testing.T) {
		mr, _ := testutils.SetupRedis(t)
		mr.HSet("coerce:schema:forms", "user/age", "float")
		mr.HSet("coerce:schema:forms", "remote/id", "uuid")

		reg, err := LoadSource(ctx, Options{SchemaFile: writeSchemas(t), RedisURL: testutils.RedisURL(mr)})
		require.NoError(t, err)

		form, ok := reg.FormOf(ident.MustKeyword("user/age"))
		require.True(t, ok)
		assert.Equal(t, schema.Pred("float"), form)
		assert.True(t, reg.IsRegistered(ident.MustKeyword("remote/id")))
		_, ok = reg.ParentOf(ident.MustKeyword("app/age"))
		assert.True(t, ok)
	})
}

func TestPushSchemas(t *testing.T) {
	ctx := context.Background()
	mr, _ := testutils.SetupRedis(t)
	opts := Options{SchemaFile: writeSchemas(t), RedisURL: testutils.RedisURL(mr), RedisPrefix: "cli:"}

	reg, err := LoadSource(ctx, Options{SchemaFile: opts.SchemaFile})
	require.NoError(t, err)
	require.NoError(t, PushSchemas(ctx, opts, reg))
	assert.Equal(t, "nat-int", mr.HGet("cli:forms", "user/age"))
	assert.Equal(t, "user/age", mr.HGet("cli:parents", "app/age"))

	assert.Error(t, PushSchemas(ctx, Options{}, reg))
}

func TestRunCommands(t *testing.T) {
	ctx := context.Background()
	opts := Options{SchemaFile: writeSchemas(t), Debug: true}
	metrics, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	c, err := NewCoercer(ctx, opts, logging.NewNop(), metrics)
	require.NoError(t, err)

	t.Run("Value By ID", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RunValue(c, "app/age", "42", false, &buf))
		assert.Equal(t, "42\n", buf.String())
	})

	t.Run("Value By Form", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RunValue(c, "?int", "nil", true, &buf))
		assert.Equal(t, "null\n", buf.String())
	})

	t.Run("Value Failure", func(t *testing.T) {
		assert.Error(t, RunValue(c, "user/age", "old", false, &bytes.Buffer{}))
		assert.Error(t, RunValue(c, "and(", "1", true, &bytes.Buffer{}))
	})

	t.Run("Walk", func(t *testing.T) {
		var buf bytes.Buffer
		in := strings.NewReader("user/age: \"7\"\nuser/tags: [a, \":b\"]\nnote: hi\n")
		require.NoError(t, RunWalk(c, in, &buf))
		assert.JSONEq(t, `{"user/age": 7, "user/tags": ["a", "b"], "note": "hi"}`, buf.String())
	})

	t.Run("Walk Empty Input", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RunWalk(c, strings.NewReader(""), &buf))
		assert.Equal(t, "null\n", buf.String())
	})

	t.Run("Schemas", func(t *testing.T) {
		reg, err := LoadSource(ctx, opts)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, RunSchemas(c, reg, &buf))
		out := buf.String()
		assert.Contains(t, out, "GOVERNING")
		assert.Contains(t, out, "[keyword]")
		assert.Contains(t, out, "@user/age")

		buf.Reset()
		require.NoError(t, ExportSchemas(reg, &buf))
		assert.Contains(t, buf.String(), "parent: user/age")
	})
}

func TestCreateLogger(t *testing.T) {
	_, err := CreateLogger(Options{})
	assert.NoError(t, err)

	_, err = CreateLogger(Options{LogLevel: "warn"})
	assert.NoError(t, err)

	_, err = CreateLogger(Options{LogLevel: "shout"})
	assert.Error(t, err)
}

func TestCheckSchemas(t *testing.T) {
	reg, err := LoadSource(context.Background(), Options{SchemaFile: writeSchemas(t)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, CheckSchemas(reg, &buf))
	assert.Equal(t, "ok: 3 schemas\n", buf.String())

	reg.MustDefine("app/broken", schema.NewRef("ghost/id"))
	assert.ErrorContains(t, CheckSchemas(reg, &buf), "ghost/id")
}
