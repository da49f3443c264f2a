package sessions

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/showquotes/transcript-api/internal/database"
	"github.com/showquotes/transcript-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry(filepath.Join(t.TempDir(), "sessions"), database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = registry.Close() })
	return registry
}

func TestNewSessionCreatesMigratedDataset(t *testing.T) {
	registry := newTestRegistry(t)

	id, err := registry.NewSession()
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	db, err := registry.Get(id)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.Line{}))
}

func TestGetReturnsCachedHandle(t *testing.T) {
	registry := newTestRegistry(t)

	first, err := registry.Get("session-a")
	require.NoError(t, err)
	second, err := registry.Get("session-a")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSessionsAreIsolated(t *testing.T) {
	registry := newTestRegistry(t)

	dbA, err := registry.Get("session-a")
	require.NoError(t, err)
	dbB, err := registry.Get("session-b")
	require.NoError(t, err)

	require.NoError(t, dbA.Create(&models.Season{Number: 1}).Error)

	var countA, countB int64
	require.NoError(t, dbA.Model(&models.Season{}).Count(&countA).Error)
	require.NoError(t, dbB.Model(&models.Season{}).Count(&countB).Error)
	assert.EqualValues(t, 1, countA)
	assert.Zero(t, countB, "one session's writes must not leak into another")
}

func TestGetRejectsUnsafeIDs(t *testing.T) {
	registry := newTestRegistry(t)

	for _, id := range []string{"", "../escape", "a/b", "id with spaces"} {
		_, err := registry.Get(id)
		assert.ErrorIs(t, err, ErrInvalidSessionID, "id %q", id)
	}
}

func TestWithImportLockSerializes(t *testing.T) {
	registry := newTestRegistry(t)

	var active, maxActive int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := registry.WithImportLock("session-a", func(db *database.DB) error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(5 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "at most one import may hold a session's lock")
}

func TestTeardownRemovesDataset(t *testing.T) {
	registry := newTestRegistry(t)

	id, err := registry.NewSession()
	require.NoError(t, err)
	require.NoError(t, registry.Teardown(id))

	assert.NoFileExists(t, registry.dbPath(id))
	assert.ErrorIs(t, registry.Teardown(id), ErrSessionNotFound)
}

func TestResetWipesAllSessions(t *testing.T) {
	registry := newTestRegistry(t)

	idA, err := registry.NewSession()
	require.NoError(t, err)
	idB, err := registry.NewSession()
	require.NoError(t, err)

	require.NoError(t, registry.Reset())
	assert.NoFileExists(t, registry.dbPath(idA))
	assert.NoFileExists(t, registry.dbPath(idB))
}
