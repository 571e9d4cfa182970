package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

var entryColumns = []string{"catalog", "position", "key_path", "en", "hi", "ta", "te", "gu", "checksum"}

// EntryRepository mirrors flattened catalogs into the catalog_entries table
// for reporting and translation tooling.
type EntryRepository struct {
	db DB
}

// NewEntryRepository creates a repository on top of a pool.
func NewEntryRepository(db DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Replace swaps all rows of catalogName for records in a single transaction.
// Row positions follow the order of records.
func (r *EntryRepository) Replace(ctx context.Context, catalogName, checksum string, records []catalog.Record) (int64, error) {
	var copied int64
	err := InTx(ctx, r.db, func(ctx context.Context, q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM catalog_entries WHERE catalog = $1`, catalogName); err != nil {
			return fmt.Errorf("pg: clear %s: %w", catalogName, err)
		}

		n, err := q.CopyFrom(ctx, pgx.Identifier{"catalog_entries"}, entryColumns,
			pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
				rec := records[i]
				return []any{
					catalogName, i, rec.Path,
					rec.Text.EN, rec.Text.HI, rec.Text.TA, rec.Text.TE, rec.Text.GU,
					checksum,
				}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("pg: copy %s: %w", catalogName, err)
		}
		copied = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return copied, nil
}

// List returns the stored records of catalogName in declaration order.
func (r *EntryRepository) List(ctx context.Context, catalogName string) ([]catalog.Record, error) {
	rows, err := r.querier(ctx).Query(ctx,
		`SELECT key_path, en, hi, ta, te, gu FROM catalog_entries WHERE catalog = $1 ORDER BY position`,
		catalogName,
	)
	if err != nil {
		return nil, fmt.Errorf("pg: list %s: %w", catalogName, err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Record, error) {
		var rec catalog.Record
		err := row.Scan(&rec.Path, &rec.Text.EN, &rec.Text.HI, &rec.Text.TA, &rec.Text.TE, &rec.Text.GU)
		return rec, err
	})
}

// Checksum returns the checksum stored with the last sync of catalogName,
// or ErrCatalogNotSynced.
func (r *EntryRepository) Checksum(ctx context.Context, catalogName string) (string, error) {
	var sum string
	err := r.querier(ctx).QueryRow(ctx,
		`SELECT checksum FROM catalog_entries WHERE catalog = $1 LIMIT 1`,
		catalogName,
	).Scan(&sum)
	if IsNotFoundError(err) {
		return "", fmt.Errorf("%w: %s", ErrCatalogNotSynced, catalogName)
	}
	if err != nil {
		return "", fmt.Errorf("pg: checksum %s: %w", catalogName, err)
	}
	return sum, nil
}

func (r *EntryRepository) querier(ctx context.Context) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return r.db
}
