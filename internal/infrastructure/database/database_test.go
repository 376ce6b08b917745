package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout(t *testing.T) {
	t.Run("zero leaves no deadline", func(t *testing.T) {
		ctx, cancel := withTimeout(context.Background(), 0)
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
		assert.NoError(t, ctx.Err())
	})

	t.Run("positive sets a deadline", func(t *testing.T) {
		ctx, cancel := withTimeout(context.Background(), time.Minute)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})

	t.Run("cancel still releases the context", func(t *testing.T) {
		ctx, cancel := withTimeout(context.Background(), 0)
		cancel()

		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}

func TestGetWithoutQueryTimeout(t *testing.T) {
	t.Parallel()

	uri, terminate := setupMongo(t)
	defer terminate()

	db, err := Connect(Config{
		URI:    uri,
		DBName: TestDBName,
	})
	require.NoError(t, err)
	defer func() { _ = db.Stop() }()

	_, err = db.Client.Database(TestDBName).Collection(StructureCollection).
		InsertOne(context.Background(), entry{Key: "structure_global", Value: `{"foo":1}`})
	require.NoError(t, err)

	got, err := NewStructureRetriever(db).Get(context.Background(), "structure_global")
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":1}`, string(got))
}
