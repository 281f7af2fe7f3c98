package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacour/qando/internal/domain/dataset"
	"github.com/lacour/qando/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "qando.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []dataset.Record {
	return []dataset.Record{
		{WebcastID: "2547", Name: "SPANO", HasQuestion: true, Language: "fr",
			Question: "q1", CaseID: "001-1",
			Opinion: dataset.Opinion{Title: "DISSENTING OPINION", Text: "t"}, HasOpinion: true,
			OpinionType: dataset.OpinionDissenting},
		{WebcastID: "2547", Name: "KŪRIS", Language: "en", CaseID: "001-1"},
		{WebcastID: "2548", Name: "SPANO", HasQuestion: true, Language: "en",
			Question: "q2", CaseID: "001-2"},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveDataset(sampleRecords()))

	got, err := store.LoadDataset()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got, "stored order preserved")

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.LoadDataset()
	require.NoError(t, err)
	assert.Nil(t, got)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_SaveReplacesPrior(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveDataset(sampleRecords()))
	require.NoError(t, store.SaveDataset(sampleRecords()[:1]))

	got, err := store.LoadDataset()
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Stale index entries from the first save must be gone.
	hits, err := store.Query(ports.Filter{Name: "KŪRIS"})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_QueryByIndexes(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDataset(sampleRecords()))

	hits, err := store.Query(ports.Filter{WebcastID: "2547"})
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = store.Query(ports.Filter{CaseID: "001-2"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "SPANO", hits[0].Name)

	hits, err = store.Query(ports.Filter{Name: "SPANO"})
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = store.Query(ports.Filter{WebcastID: "9999"})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestStore_QueryResidualFilters(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDataset(sampleRecords()))

	no := false
	yes := true

	// Index lookup narrowed by a residual flag.
	hits, err := store.Query(ports.Filter{WebcastID: "2547", HasQuestion: &no})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "KŪRIS", hits[0].Name)

	// Full scan path (no indexed key).
	hits, err = store.Query(ports.Filter{HasOpinion: &yes})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, dataset.OpinionDissenting, hits[0].OpinionType)

	hits, err = store.Query(ports.Filter{Language: "fr"})
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = store.Query(ports.Filter{OpinionType: dataset.OpinionDissenting})
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestStore_Wipe(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveDataset(sampleRecords()))

	require.NoError(t, store.Wipe())

	got, err := store.LoadDataset()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Idempotent.
	require.NoError(t, store.Wipe())
}

func TestOrdinalKey_RoundTrip(t *testing.T) {
	for _, ord := range []uint64{0, 1, 255, 1 << 40} {
		assert.Equal(t, ord, ordinalFromKey(ordinalKey(ord)))
	}
	assert.Zero(t, ordinalFromKey([]byte("short")))
}
