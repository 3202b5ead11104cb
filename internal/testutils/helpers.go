package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to name inside a fresh temp dir and returns the
// absolute path. It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0644), "Failed to write temp file")
	return absPath
}

// SetupRedis starts a miniredis server and a client connected to it.
// Both are closed when the test ends.
func SetupRedis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

// RedisURL returns the redis:// URL of mr.
func RedisURL(mr *miniredis.Miniredis) string {
	return "redis://" + mr.Addr()
}
