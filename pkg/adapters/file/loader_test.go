package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/coerce/pkg/adapters/file"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
schemas:
  age: integer
  user/id: uuid
  user/age: and(nat-int, adult)
  user/tags: "[keyword]"
  app/owner:
    form: "@user/id"
    parent: user/id
`

func TestParse_YAML(t *testing.T) {
	reg, err := file.Parse([]byte(sampleYAML), file.FormatYAML)
	require.NoError(t, err)

	assert.Len(t, reg.IDs(), 5)

	form, ok := reg.FormOf(ident.MustKeyword("user/age"))
	require.True(t, ok)
	assert.Equal(t, "and(nat-int, adult)", form.String())

	form, ok = reg.FormOf(ident.Keyword{Name: "age"})
	require.True(t, ok)
	assert.Equal(t, schema.Pred("integer"), form)

	parent, ok := reg.ParentOf(ident.MustKeyword("app/owner"))
	require.True(t, ok)
	assert.Equal(t, ident.MustKeyword("user/id"), parent)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"schemas": {"http/port": "int", "app/port": {"form": "int", "parent": "http/port"}}}`)
	reg, err := file.Parse(data, file.FormatJSON)
	require.NoError(t, err)

	assert.True(t, reg.IsRegistered(ident.MustKeyword("http/port")))
	parent, ok := reg.ParentOf(ident.MustKeyword("app/port"))
	assert.True(t, ok)
	assert.Equal(t, "http/port", parent.String())
}

func TestParse_Errors(t *testing.T) {
	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := file.Parse([]byte("schemas: [unclosed"), file.FormatYAML)
		assert.Error(t, err)
	})

	t.Run("Bad Entries Are Aggregated", func(t *testing.T) {
		data := []byte(`
schemas:
  a/ok: int
  a/bad: "and("
  a/num: 5
  a/weird:
    form: [1, 2]
`)
		_, err := file.Parse(data, file.FormatYAML)
		require.Error(t, err)

		errs := schema.DefinitionErrors(err)
		require.Len(t, errs, 3)

		var defErr *schema.DefinitionError
		require.ErrorAs(t, errs[0], &defErr)
		assert.Equal(t, "a/bad", defErr.ID)

		var formErr *schema.FormError
		assert.ErrorAs(t, err, &formErr)
	})
}

func TestLoadAndEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	reg, err := file.Load(path)
	require.NoError(t, err)

	out, err := file.Encode(reg)
	require.NoError(t, err)

	again, err := file.Parse(out, file.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, reg.Schema(), again.Schema())
	assert.Equal(t, reg.Parents(), again.Parents())

	_, err = file.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
