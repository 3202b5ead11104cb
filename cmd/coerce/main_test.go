package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/coerce/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	path := testutils.WriteFile(t, "schemas.yaml", "schemas:\n  user/age: nat-int\n")

	out, err := run(t, "", "value", "-s", path, "user/age", "42")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = run(t, "", "value", "--form", "[int]", "1")
	require.NoError(t, err)
	assert.Equal(t, "\"1\"\n", out)

	out, err = run(t, `{"user/age": "5"}`, "walk", "-s", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user/age": 5}`, out)

	out, err = run(t, "", "schemas", "--check", "-s", path)
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 schemas\n", out)

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "coerce version "))

	_, err = run(t, "", "value", "--form=false", "-s", path, "user/age", "old")
	assert.Error(t, err)
}
