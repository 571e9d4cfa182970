package catalogsync_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcatalog/core/catalog"
	"github.com/dmitrymomot/formcatalog/forms"
	"github.com/dmitrymomot/formcatalog/integration/database/mongo"
	"github.com/dmitrymomot/formcatalog/pkg/catalogsync"
	"github.com/dmitrymomot/formcatalog/pkg/export"
)

type fakeEntries struct {
	checksums map[string]string
	records   map[string][]catalog.Record
	replaces  int
	err       error
}

func newFakeEntries() *fakeEntries {
	return &fakeEntries{checksums: map[string]string{}, records: map[string][]catalog.Record{}}
}

func (f *fakeEntries) Replace(_ context.Context, name, checksum string, records []catalog.Record) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.replaces++
	f.checksums[name] = checksum
	f.records[name] = records
	return int64(len(records)), nil
}

func (f *fakeEntries) Checksum(_ context.Context, name string) (string, error) {
	sum, ok := f.checksums[name]
	if !ok {
		return "", errors.New("not synced")
	}
	return sum, nil
}

type fakeSnapshots struct {
	latest map[string]mongo.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, c *catalog.Catalog) (mongo.Snapshot, bool, error) {
	prev, ok := f.latest[c.Name()]
	if ok && prev.Checksum == c.Checksum() {
		return prev, false, nil
	}
	snap := mongo.NewSnapshot(c)
	snap.Version = prev.Version + 1
	f.latest[c.Name()] = snap
	return snap, true, nil
}

type fakeObjects struct {
	objects map[string][]byte
	types   map[string]string
	order   []string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjects) Put(_ context.Context, key, contentType string, body []byte) error {
	f.objects[key] = body
	f.types[key] = contentType
	f.order = append(f.order, key)
	return nil
}

func (f *fakeObjects) URL(key string) string { return "https://cdn.example.com/" + key }

func TestUnconfiguredSinks(t *testing.T) {
	s := catalogsync.New()
	ctx := context.Background()

	_, err := s.SyncEntries(ctx, forms.General())
	assert.ErrorIs(t, err, catalogsync.ErrSinkNotConfigured)
	_, err = s.SaveSnapshots(ctx, forms.General())
	assert.ErrorIs(t, err, catalogsync.ErrSinkNotConfigured)
	_, err = s.Publish(ctx, forms.General())
	assert.ErrorIs(t, err, catalogsync.ErrSinkNotConfigured)

	assert.NoError(t, s.Run(ctx, forms.All()...))
}

func TestSyncEntries(t *testing.T) {
	ctx := context.Background()
	store := newFakeEntries()
	s := catalogsync.New(catalogsync.WithEntryStore(store))

	results, err := s.SyncEntries(ctx, forms.All()...)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, c := range forms.All() {
		assert.True(t, results[i].Changed)
		assert.EqualValues(t, c.Len(), results[i].Count)
		assert.Equal(t, c.Records(), store.records[c.Name()])
	}

	results, err = s.SyncEntries(ctx, forms.All()...)
	require.NoError(t, err)
	for _, r := range results {
		assert.False(t, r.Changed, r.Catalog)
	}
	assert.Equal(t, 3, store.replaces)

	store.checksums = map[string]string{}
	store.err = errors.New("db down")
	_, err = s.SyncEntries(ctx, forms.General())
	assert.ErrorContains(t, err, "db down")
}

func TestSaveSnapshots(t *testing.T) {
	ctx := context.Background()
	s := catalogsync.New(catalogsync.WithSnapshotStore(&fakeSnapshots{latest: map[string]mongo.Snapshot{}}))

	first, err := s.SaveSnapshots(ctx, forms.Apparel())
	require.NoError(t, err)
	assert.True(t, first[0].Changed)
	assert.EqualValues(t, 1, first[0].Version)

	again, err := s.SaveSnapshots(ctx, forms.Apparel())
	require.NoError(t, err)
	assert.False(t, again[0].Changed)
	assert.EqualValues(t, 1, again[0].Version)
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjects()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s := catalogsync.New(
		catalogsync.WithObjectStore(objects),
		catalogsync.WithPrefix("i18n"),
		catalogsync.WithClock(func() time.Time { return now }),
	)

	c := forms.General()
	manifests, err := s.Publish(ctx, c)
	require.NoError(t, err)
	require.Len(t, manifests, 1)

	dir := "i18n/general/" + c.Checksum() + "/"
	for _, locale := range catalog.Locales() {
		key := dir + locale.String() + ".json"
		body, ok := objects.objects[key]
		require.True(t, ok, key)
		assert.True(t, json.Valid(body))
		assert.Equal(t, "https://cdn.example.com/"+key, manifests[0].Bundles[locale])
	}

	csvBody := objects.objects[dir+"catalog.csv"]
	records, err := export.ReadCSV(strings.NewReader(string(csvBody)))
	require.NoError(t, err)
	assert.Equal(t, c.Records(), records)
	assert.Contains(t, objects.objects, dir+"catalog.yaml")

	latestKey := "i18n/general/latest.json"
	assert.Equal(t, latestKey, objects.order[len(objects.order)-1])

	var m catalogsync.Manifest
	require.NoError(t, json.Unmarshal(objects.objects[latestKey], &m))
	assert.Equal(t, c.Checksum(), m.Checksum)
	assert.Equal(t, c.Len(), m.Entries)
	assert.True(t, now.Equal(m.PublishedAt))
	assert.Len(t, m.Bundles, len(catalog.Locales()))
}

func TestRun(t *testing.T) {
	entries := newFakeEntries()
	objects := newFakeObjects()
	s := catalogsync.New(catalogsync.WithEntryStore(entries), catalogsync.WithObjectStore(objects))

	require.NoError(t, s.Run(context.Background(), forms.All()...))
	assert.Len(t, entries.records, 3)
	for _, name := range forms.Names() {
		assert.Contains(t, objects.objects, "catalogs/"+name+"/latest.json")
	}
}
