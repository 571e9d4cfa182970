// Package pg mirrors the static catalogs into PostgreSQL for reporting and
// translation tooling.
//
// Connect opens a pgx pool with retry, Migrate applies the embedded goose
// migrations and Healthcheck plugs into the readiness endpoint:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//
//	repo := pg.NewEntryRepository(pool)
//	n, err := repo.Replace(ctx, c.Name(), c.Checksum(), c.Records())
//
// Replace runs in its own transaction unless the context already carries
// one (see WithTx), in which case it joins it.
//
// Configuration is read from PG_* environment variables; an empty
// PG_CONN_URL disables the database.
package pg
