package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/coerce/internal/testutils"
	"github.com/aretw0/coerce/pkg/adapters/redis"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, client := testutils.SetupRedis(t)
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_SaveLoad(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	userID := ident.MustKeyword("user/id")
	owner := ident.MustKeyword("app/owner")

	require.NoError(t, store.Save(ctx, userID, schema.Pred("uuid")))
	require.NoError(t, store.Save(ctx, owner, schema.NewRef("user/id")))
	require.NoError(t, store.SaveParent(ctx, owner, userID))

	form, err := store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, schema.NewRef("user/id"), form)

	reg, err := store.Load(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []ident.Keyword{owner, userID}, reg.IDs())

	parent, ok := reg.ParentOf(owner)
	require.True(t, ok)
	assert.Equal(t, userID, parent)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	id := ident.MustKeyword("user/age")

	require.NoError(t, store.Save(ctx, id, schema.Pred("nat-int")))
	require.NoError(t, store.Delete(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, redis.ErrSchemaNotFound)
}

func TestRedisStore_Sync(t *testing.T) {
	store, mr := newStore(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	reg := schema.NewRegistry().
		MustDefine("http/port", schema.Pred("int")).
		MustDefine("app/tags", schema.CollOf{Elem: schema.Pred("keyword")})
	reg.DefineParent(ident.MustKeyword("app/port"), ident.MustKeyword("http/port"))

	require.NoError(t, store.Sync(ctx, reg))
	assert.True(t, mr.Exists("test:forms"))
	assert.Equal(t, "[keyword]", mr.HGet("test:forms", "app/tags"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg.Schema(), loaded.Schema())
	assert.Equal(t, reg.Parents(), loaded.Parents())
}

func TestRedisStore_LoadCorrupt(t *testing.T) {
	store, mr := newStore(t)
	mr.HSet("coerce:schema:forms", "user/age", "and(")

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.Len(t, schema.DefinitionErrors(err), 1)
}

func TestRedisStore_InvalidSave(t *testing.T) {
	store, _ := newStore(t)
	err := store.Save(context.Background(), ident.Keyword{}, schema.Pred("int"))
	assert.Error(t, err)
}

func TestRedisStore_NewFromURL(t *testing.T) {
	mr, _ := testutils.SetupRedis(t)

	store, err := redis.NewFromURL(testutils.RedisURL(mr) + "/0")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), ident.MustKeyword("a/b"), schema.Pred("int")))
	assert.Equal(t, "int", mr.HGet("coerce:schema:forms", "a/b"))

	_, err = redis.NewFromURL("://bad")
	assert.Error(t, err)
}
