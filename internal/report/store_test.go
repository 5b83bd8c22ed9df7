package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	products := []models.ProductRecord{
		record("A1", 1234.56),
		record("A2", 189.99),
	}
	rep := Build("ps4", products, testMeta)

	path, err := store.Write(rep)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "ps4.json", filepath.Base(path))

	loaded, err := store.Get("ps4")
	require.NoError(t, err)
	assert.Equal(t, rep, *loaded)
	assert.Equal(t, 1234.56, loaded.Products[0].Price)
}

func TestStoreWriteIsAtomic(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	_, err = store.Write(Build("ps4", nil, testMeta))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ps4.json", entries[0].Name())
}

func TestStoreList(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	titles, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, titles)

	_, err = store.Write(Build("ps4", nil, testMeta))
	require.NoError(t, err)
	_, err = store.Write(Build("xbox", nil, testMeta))
	require.NoError(t, err)

	titles, err = store.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ps4", "xbox"}, titles)
}

func TestStoreGetMissingReport(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("nope")
	assert.Error(t, err)
}

func TestStoreOverwritesPreviousRun(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Write(Build("ps4", []models.ProductRecord{record("A1", 100)}, testMeta))
	require.NoError(t, err)
	_, err = store.Write(Build("ps4", []models.ProductRecord{record("A2", 200)}, testMeta))
	require.NoError(t, err)

	loaded, err := store.Get("ps4")
	require.NoError(t, err)
	require.Len(t, loaded.Products, 1)
	assert.Equal(t, "A2", loaded.Products[0].ASIN)
}
