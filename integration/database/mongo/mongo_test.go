package mongo_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/integration/database/mongo"
)

func TestSnapshotRoundTrip(t *testing.T) {
	c := forms.Industrial()
	snap := mongo.NewSnapshot(c)

	assert.Equal(t, c.Name(), snap.Catalog)
	assert.Equal(t, c.Checksum(), snap.Checksum)
	assert.Len(t, snap.Entries, c.Len())
	assert.Equal(t, c.Records(), snap.Records())
}

func TestNewRequiresURL(t *testing.T) {
	assert.False(t, mongo.Config{}.Enabled())
	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyURL)
}

// TestSnapshotRepository needs a disposable server in MONGODB_TEST_URL.
func TestSnapshotRepository(t *testing.T) {
	url := os.Getenv("MONGODB_TEST_URL")
	if url == "" {
		t.Skip("MONGODB_TEST_URL not set")
	}

	ctx := context.Background()
	db, err := mongo.NewWithDatabase(ctx, mongo.Config{URL: url, RetryAttempts: 1}, "formcatalog_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	repo := mongo.NewSnapshotRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))

	_, err = repo.Latest(ctx, forms.GeneralName)
	assert.ErrorIs(t, err, mongo.ErrSnapshotNotFound)

	first, added, err := repo.Save(ctx, forms.General())
	require.NoError(t, err)
	assert.True(t, added)
	assert.EqualValues(t, 1, first.Version)

	again, added, err := repo.Save(ctx, forms.General())
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, first.Version, again.Version)

	latest, err := repo.Latest(ctx, forms.GeneralName)
	require.NoError(t, err)
	assert.Equal(t, forms.General().Records(), latest.Records())
}
