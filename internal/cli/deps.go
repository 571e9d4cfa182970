package cli

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formcatalog/core/health"
	"github.com/dmitrymomot/formcatalog/integration/database/mongo"
	"github.com/dmitrymomot/formcatalog/integration/database/pg"
	"github.com/dmitrymomot/formcatalog/integration/storage/s3"
	"github.com/dmitrymomot/formcatalog/pkg/catalogsync"
)

// sinks holds the external connections a command opened.
// Fields stay nil for sinks that are not configured.
type sinks struct {
	syncer  *catalogsync.Syncer
	checks  []health.Check
	closers []func()
}

func (s *sinks) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

type sinkSet uint8

const (
	sinkEntries sinkSet = 1 << iota
	sinkSnapshots
	sinkObjects
	sinkAll = sinkEntries | sinkSnapshots | sinkObjects
)

// openSinks connects to every configured sink in want. Postgres runs its
// migrations on connect.
func openSinks(ctx context.Context, cfg AppConfig, log *slog.Logger, want sinkSet) (*sinks, error) {
	s := &sinks{}
	opts := []catalogsync.Option{
		catalogsync.WithLogger(log),
		catalogsync.WithPrefix(cfg.PublishPrefix),
	}

	if want&sinkEntries != 0 && cfg.PG.Enabled() {
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
			s.Close()
			return nil, err
		}
		opts = append(opts, catalogsync.WithEntryStore(pg.NewEntryRepository(pool)))
		s.checks = append(s.checks, health.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})
	}

	if want&sinkSnapshots != 0 && cfg.Mongo.Enabled() {
		db, err := mongo.NewWithDatabase(ctx, cfg.Mongo, cfg.Mongo.Database)
		if err != nil {
			s.Close()
			return nil, err
		}
		client := db.Client()
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.WithoutCancel(ctx)) })

		repo := mongo.NewSnapshotRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			s.Close()
			return nil, err
		}
		opts = append(opts, catalogsync.WithSnapshotStore(repo))
		s.checks = append(s.checks, health.Check{Name: "mongo", Fn: mongo.Healthcheck(client)})
	}

	if want&sinkObjects != 0 && cfg.S3.Enabled() {
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			s.Close()
			return nil, err
		}
		opts = append(opts, catalogsync.WithObjectStore(store))
	}

	s.syncer = catalogsync.New(opts...)
	return s, nil
}
