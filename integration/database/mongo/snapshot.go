package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

// SnapshotCollection is the default collection name.
const SnapshotCollection = "catalog_snapshots"

// Snapshot is one stored version of a catalog.
type Snapshot struct {
	ID          bson.ObjectID   `bson:"_id,omitempty"`
	Catalog     string          `bson:"catalog"`
	Version     int64           `bson:"version"`
	Checksum    string          `bson:"checksum"`
	Description string          `bson:"description,omitempty"`
	Entries     []SnapshotEntry `bson:"entries"`
	CreatedAt   time.Time       `bson:"created_at"`
}

// SnapshotEntry is one flattened leaf.
type SnapshotEntry struct {
	Key string `bson:"key"`
	EN  string `bson:"en"`
	HI  string `bson:"hi"`
	TA  string `bson:"ta"`
	TE  string `bson:"te"`
	GU  string `bson:"gu"`
}

// NewSnapshot flattens c into an unsaved snapshot.
func NewSnapshot(c *catalog.Catalog) Snapshot {
	records := c.Records()
	entries := make([]SnapshotEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, SnapshotEntry{
			Key: r.Path,
			EN:  r.Text.EN,
			HI:  r.Text.HI,
			TA:  r.Text.TA,
			TE:  r.Text.TE,
			GU:  r.Text.GU,
		})
	}
	return Snapshot{
		Catalog:     c.Name(),
		Checksum:    c.Checksum(),
		Description: c.Description(),
		Entries:     entries,
	}
}

// Records converts the snapshot back into catalog records.
func (s Snapshot) Records() []catalog.Record {
	out := make([]catalog.Record, 0, len(s.Entries))
	for _, e := range s.Entries {
		out = append(out, catalog.Record{
			Path: e.Key,
			Text: catalog.Entry(e.EN, e.HI, e.TA, e.TE, e.GU),
		})
	}
	return out
}

// SnapshotRepository keeps a versioned history of catalogs.
type SnapshotRepository struct {
	coll *driver.Collection
	now  func() time.Time
}

// NewSnapshotRepository uses the catalog_snapshots collection of db.
func NewSnapshotRepository(db *driver.Database) *SnapshotRepository {
	return &SnapshotRepository{coll: db.Collection(SnapshotCollection), now: time.Now}
}

// EnsureIndexes creates the unique (catalog, version) index.
func (r *SnapshotRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "catalog", Value: 1}, {Key: "version", Value: -1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo: create snapshot index: %w", err)
	}
	return nil
}

// Save stores c as a new version unless the latest snapshot has the same
// checksum. It returns the current snapshot and whether a version was added.
func (r *SnapshotRepository) Save(ctx context.Context, c *catalog.Catalog) (Snapshot, bool, error) {
	latest, err := r.Latest(ctx, c.Name())
	switch {
	case err == nil:
		if latest.Checksum == c.Checksum() {
			return latest, false, nil
		}
	case !errors.Is(err, ErrSnapshotNotFound):
		return Snapshot{}, false, err
	}

	snap := NewSnapshot(c)
	snap.Version = latest.Version + 1
	snap.CreatedAt = r.now().UTC()

	res, err := r.coll.InsertOne(ctx, snap)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("mongo: save snapshot %s v%d: %w", snap.Catalog, snap.Version, err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		snap.ID = id
	}
	return snap, true, nil
}

// Latest returns the highest version stored for catalogName.
func (r *SnapshotRepository) Latest(ctx context.Context, catalogName string) (Snapshot, error) {
	var snap Snapshot
	err := r.coll.FindOne(ctx,
		bson.D{{Key: "catalog", Value: catalogName}},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&snap)
	if errors.Is(err, driver.ErrNoDocuments) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, catalogName)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("mongo: latest snapshot %s: %w", catalogName, err)
	}
	return snap, nil
}
