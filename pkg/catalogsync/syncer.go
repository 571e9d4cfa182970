package catalogsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/core/logger"
	"github.com/dmitrymomot/formcatalog/integration/database/mongo"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

// ErrSinkNotConfigured is returned when an operation targets a sink the
// Syncer was built without.
var ErrSinkNotConfigured = errors.New("catalogsync: sink not configured")

// EntryStore is the relational mirror. *pg.EntryRepository satisfies it.
type EntryStore interface {
	Replace(ctx context.Context, catalogName, checksum string, records []catalog.Record) (int64, error)
	Checksum(ctx context.Context, catalogName string) (string, error)
}

// SnapshotStore keeps catalog versions. *mongo.SnapshotRepository satisfies it.
type SnapshotStore interface {
	Save(ctx context.Context, c *catalog.Catalog) (mongo.Snapshot, bool, error)
}

// ObjectStore receives published files. *s3.Storage satisfies it.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	URL(key string) string
}

// Result reports what happened to one catalog in one sink.
type Result struct {
	Catalog  string `json:"catalog"`
	Checksum string `json:"checksum"`
	Changed  bool   `json:"changed"`
	Count    int64  `json:"count,omitempty"`
	Version  int64  `json:"version,omitempty"`
}

// Manifest is written to <prefix>/<catalog>/latest.json on publish.
type Manifest struct {
	Catalog     string                    `json:"catalog"`
	Description string                    `json:"description,omitempty"`
	Checksum    string                    `json:"checksum"`
	Entries     int                       `json:"entries"`
	Bundles     map[catalog.Locale]string `json:"bundles"`
	CSV         string                    `json:"csv"`
	YAML        string                    `json:"yaml"`
	PublishedAt time.Time                 `json:"published_at"`
}

// Syncer copies the static catalogs into the configured sinks.
type Syncer struct {
	entries   EntryStore
	snapshots SnapshotStore
	objects   ObjectStore
	prefix    string
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithEntryStore enables SyncEntries.
func WithEntryStore(s EntryStore) Option {
	return func(sy *Syncer) { sy.entries = s }
}

// WithSnapshotStore enables SaveSnapshots.
func WithSnapshotStore(s SnapshotStore) Option {
	return func(sy *Syncer) { sy.snapshots = s }
}

// WithObjectStore enables Publish.
func WithObjectStore(s ObjectStore) Option {
	return func(sy *Syncer) { sy.objects = s }
}

// WithPrefix sets the object key prefix. Defaults to "catalogs".
func WithPrefix(prefix string) Option {
	return func(sy *Syncer) { sy.prefix = prefix }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(sy *Syncer) {
		if log != nil {
			sy.logger = log
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(sy *Syncer) { sy.now = now }
}

// New creates a Syncer. Sinks that are not passed stay disabled.
func New(opts ...Option) *Syncer {
	s := &Syncer{
		prefix: "catalogs",
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncEntries mirrors each catalog into the entry store.
// Catalogs whose stored checksum matches are left untouched.
func (s *Syncer) SyncEntries(ctx context.Context, cs ...*catalog.Catalog) ([]Result, error) {
	if s.entries == nil {
		return nil, fmt.Errorf("%w: entries", ErrSinkNotConfigured)
	}

	results := make([]Result, 0, len(cs))
	for _, c := range cs {
		res := Result{Catalog: c.Name(), Checksum: c.Checksum()}

		stored, err := s.entries.Checksum(ctx, c.Name())
		if err == nil && stored == c.Checksum() {
			s.logger.DebugContext(ctx, "entries up to date", logger.Catalog(c.Name()))
			results = append(results, res)
			continue
		}

		n, err := s.entries.Replace(ctx, c.Name(), c.Checksum(), c.Records())
		if err != nil {
			return results, fmt.Errorf("catalogsync: entries %s: %w", c.Name(), err)
		}
		res.Changed, res.Count = true, n
		s.logger.InfoContext(ctx, "entries synced", logger.Catalog(c.Name()), logger.Count("entries", int(n)))
		results = append(results, res)
	}
	return results, nil
}

// SaveSnapshots stores a new snapshot version for every changed catalog.
func (s *Syncer) SaveSnapshots(ctx context.Context, cs ...*catalog.Catalog) ([]Result, error) {
	if s.snapshots == nil {
		return nil, fmt.Errorf("%w: snapshots", ErrSinkNotConfigured)
	}

	results := make([]Result, 0, len(cs))
	for _, c := range cs {
		snap, added, err := s.snapshots.Save(ctx, c)
		if err != nil {
			return results, fmt.Errorf("catalogsync: snapshot %s: %w", c.Name(), err)
		}
		results = append(results, Result{
			Catalog:  c.Name(),
			Checksum: snap.Checksum,
			Changed:  added,
			Count:    int64(len(snap.Entries)),
			Version:  snap.Version,
		})
		s.logger.InfoContext(ctx, "snapshot saved",
			logger.Catalog(c.Name()),
			slog.Int64("version", snap.Version),
			slog.Bool("added", added),
		)
	}
	return results, nil
}

// Publish uploads, per catalog, one JSON bundle per locale plus CSV and
// YAML exports under <prefix>/<catalog>/<checksum>/, then points
// <prefix>/<catalog>/latest.json at them. The manifest goes last so
// readers never see a version whose files are incomplete.
func (s *Syncer) Publish(ctx context.Context, cs ...*catalog.Catalog) ([]Manifest, error) {
	if s.objects == nil {
		return nil, fmt.Errorf("%w: objects", ErrSinkNotConfigured)
	}

	manifests := make([]Manifest, 0, len(cs))
	for _, c := range cs {
		m, err := s.publish(ctx, c)
		if err != nil {
			return manifests, fmt.Errorf("catalogsync: publish %s: %w", c.Name(), err)
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

func (s *Syncer) publish(ctx context.Context, c *catalog.Catalog) (Manifest, error) {
	start := time.Now()
	dir := path.Join(s.prefix, c.Name(), c.Checksum())

	m := Manifest{
		Catalog:     c.Name(),
		Description: c.Description(),
		Checksum:    c.Checksum(),
		Entries:     c.Len(),
		Bundles:     make(map[catalog.Locale]string, len(catalog.Locales())),
		PublishedAt: s.now().UTC(),
	}

	for _, locale := range catalog.Locales() {
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, c, locale); err != nil {
			return m, err
		}
		key := path.Join(dir, locale.String()+".json")
		if err := s.objects.Put(ctx, key, "application/json; charset=utf-8", buf.Bytes()); err != nil {
			return m, err
		}
		m.Bundles[locale] = s.objects.URL(key)
	}

	var csvBuf bytes.Buffer
	if err := export.WriteCSV(&csvBuf, c); err != nil {
		return m, err
	}
	csvKey := path.Join(dir, "catalog.csv")
	if err := s.objects.Put(ctx, csvKey, "text/csv; charset=utf-8", csvBuf.Bytes()); err != nil {
		return m, err
	}
	m.CSV = s.objects.URL(csvKey)

	var yamlBuf bytes.Buffer
	if err := export.WriteYAML(&yamlBuf, c); err != nil {
		return m, err
	}
	yamlKey := path.Join(dir, "catalog.yaml")
	if err := s.objects.Put(ctx, yamlKey, "application/yaml; charset=utf-8", yamlBuf.Bytes()); err != nil {
		return m, err
	}
	m.YAML = s.objects.URL(yamlKey)

	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return m, err
	}
	if err := s.objects.Put(ctx, path.Join(s.prefix, c.Name(), "latest.json"), "application/json; charset=utf-8", body); err != nil {
		return m, err
	}

	s.logger.InfoContext(ctx, "catalog published",
		logger.Catalog(c.Name()),
		slog.String("checksum", c.Checksum()),
		logger.Elapsed(start),
	)
	return m, nil
}

// Run executes every configured sink in order: entries, snapshots, objects.
// Unconfigured sinks are skipped.
func (s *Syncer) Run(ctx context.Context, cs ...*catalog.Catalog) error {
	if s.entries != nil {
		if _, err := s.SyncEntries(ctx, cs...); err != nil {
			return err
		}
	}
	if s.snapshots != nil {
		if _, err := s.SaveSnapshots(ctx, cs...); err != nil {
			return err
		}
	}
	if s.objects != nil {
		if _, err := s.Publish(ctx, cs...); err != nil {
			return err
		}
	}
	return nil
}
