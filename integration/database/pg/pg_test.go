package pg_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/integration/database/pg"
)

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("wrap: %w", pgx.ErrNoRows)))
	assert.True(t, pg.IsTxClosedError(pgx.ErrTxClosed))
	assert.True(t, pg.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, pg.IsForeignKeyViolationError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pg.IsDuplicateKeyError(errors.New("23505")))
}

func TestTxContext(t *testing.T) {
	_, ok := pg.TxFromContext(context.Background())
	assert.False(t, ok)

	ctx := pg.WithTx(context.Background(), nil)
	_, ok = pg.TxFromContext(ctx)
	assert.False(t, ok)
}

func TestConnectRequiresConnectionString(t *testing.T) {
	assert.False(t, pg.Config{}.Enabled())
	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
}

// TestEntryRepository needs a disposable database in PG_TEST_URL.
func TestEntryRepository(t *testing.T) {
	url := os.Getenv("PG_TEST_URL")
	if url == "" {
		t.Skip("PG_TEST_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{ConnectionString: url, RetryAttempts: 1, MigrationsTable: "schema_migrations"}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, cfg, logger.Discard()))
	require.NoError(t, pg.Healthcheck(pool)(ctx))

	repo := pg.NewEntryRepository(pool)
	c := forms.Apparel()

	for range 2 {
		n, err := repo.Replace(ctx, c.Name(), c.Checksum(), c.Records())
		require.NoError(t, err)
		assert.EqualValues(t, c.Len(), n)
	}

	got, err := repo.List(ctx, c.Name())
	require.NoError(t, err)
	assert.Equal(t, c.Records(), got)

	sum, err := repo.Checksum(ctx, c.Name())
	require.NoError(t, err)
	assert.Equal(t, c.Checksum(), sum)

	_, err = repo.Checksum(ctx, "never-synced")
	assert.ErrorIs(t, err, pg.ErrCatalogNotSynced)
}
