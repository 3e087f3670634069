package rxpdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/rxp.report/internal/rxp"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestImportRoundTrip(t *testing.T) {
	db := openTestDB(t)

	importID, err := db.RecordImport("data/scan.rxpm", true)
	require.NoError(t, err)
	require.NotEmpty(t, importID)

	samples := []rxp.InclinationSample{
		{Time: 1.0, Roll: -8.442, Pitch: -0.981},
		{Time: 2.0, Roll: -8.447, Pitch: -0.990},
	}
	points := []rxp.Point{
		{X: 1, Y: 2, Z: 3, Amplitude: 18.5, Reflectance: -1.25, Echo: rxp.EchoSingle, Time: 1.5},
	}
	require.NoError(t, db.InsertInclinations(importID, samples))
	require.NoError(t, db.InsertPoints(importID, points))

	summary, err := db.Summary(importID)
	require.NoError(t, err)
	assert.Equal(t, importID, summary.ImportID)
	assert.Equal(t, "data/scan.rxpm", summary.Source)
	assert.True(t, summary.SyncToPPS)
	assert.EqualValues(t, 1, summary.Points)
	assert.EqualValues(t, 2, summary.Inclinations)
}

func TestListImports(t *testing.T) {
	db := openTestDB(t)

	first, err := db.RecordImport("a.rxpm", false)
	require.NoError(t, err)
	_, err = db.RecordImport("b.rxpm", false)
	require.NoError(t, err)

	imports, err := db.ListImports()
	require.NoError(t, err)
	require.Len(t, imports, 2)

	ids := []string{imports[0].ImportID, imports[1].ImportID}
	assert.Contains(t, ids, first)
}

func TestInsertEmptySlices(t *testing.T) {
	db := openTestDB(t)

	importID, err := db.RecordImport("empty.rxpm", false)
	require.NoError(t, err)
	require.NoError(t, db.InsertInclinations(importID, nil))
	require.NoError(t, db.InsertPoints(importID, nil))

	summary, err := db.Summary(importID)
	require.NoError(t, err)
	assert.Zero(t, summary.Points)
	assert.Zero(t, summary.Inclinations)
}

func TestSummaryUnknownImport(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Summary("no-such-import")
	assert.Error(t, err)
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.MigrateUp("migrations"))
	version, dirty, err := db.MigrateVersion("migrations")
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.EqualValues(t, 2, version)

	require.NoError(t, db.MigrateDown("migrations"))
	version, dirty, err = db.MigrateVersion("migrations")
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.EqualValues(t, 1, version)
}
