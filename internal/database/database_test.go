package database

import (
	"path/filepath"
	"testing"

	"github.com/showquotes/transcript-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "session.sqlite")

	db, err := Open(dbPath, Options{})
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, dbPath)
	assert.NoError(t, db.HealthCheck())
}

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())

	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestMigrateEnforcesNaturalKeys(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	require.NoError(t, db.Create(&models.Season{Number: 1}).Error)
	err = db.Create(&models.Season{Number: 1}).Error
	assert.Error(t, err, "duplicate season number must violate the unique index")

	require.NoError(t, db.Create(&models.Speaker{Name: "Alice"}).Error)
	err = db.Create(&models.Speaker{Name: "Alice"}).Error
	assert.Error(t, err, "duplicate speaker name must violate the unique index")
}

func TestHealthCheckNilDB(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
