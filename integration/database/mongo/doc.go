// Package mongo keeps a versioned history of catalog snapshots in MongoDB.
//
// New and NewWithDatabase retry the initial connection and ping, which
// covers Atlas cold starts and short network interruptions at startup.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "")
//	if err != nil {
//		return err
//	}
//
//	repo := mongo.NewSnapshotRepository(db)
//	snap, added, err := repo.Save(ctx, forms.General())
//
// Save only adds a version when the catalog checksum differs from the
// latest stored snapshot, so repeated runs are idempotent.
//
// Settings come from MONGODB_* variables. An empty MONGODB_URL disables
// snapshots. Healthcheck backs the readiness check of the HTTP API.
package mongo
