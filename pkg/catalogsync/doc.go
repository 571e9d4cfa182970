// Package catalogsync copies the compiled-in catalogs to external sinks:
// the PostgreSQL entry mirror, the MongoDB snapshot history and an object
// store serving frontend bundles.
//
//	s := catalogsync.New(
//		catalogsync.WithEntryStore(pg.NewEntryRepository(pool)),
//		catalogsync.WithSnapshotStore(mongo.NewSnapshotRepository(db)),
//		catalogsync.WithObjectStore(store),
//		catalogsync.WithLogger(log),
//	)
//	if err := s.Run(ctx, forms.All()...); err != nil {
//		return err
//	}
//
// Every operation is idempotent: unchanged catalogs are detected by checksum.
package catalogsync
