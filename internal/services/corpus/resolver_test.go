package corpus

import (
	"testing"

	"github.com/showquotes/transcript-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err)

	return db
}

func TestResolveSeasonIdempotent(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	first, err := resolver.ResolveSeason(3)
	require.NoError(t, err)
	assert.NotZero(t, first)

	second, err := resolver.ResolveSeason(3)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same natural key must resolve to the same id")

	other, err := resolver.ResolveSeason(4)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	var count int64
	require.NoError(t, db.Model(&models.Season{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestResolveEpisodeRefreshesTitle(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	seasonID, err := resolver.ResolveSeason(1)
	require.NoError(t, err)

	first, err := resolver.ResolveEpisode(seasonID, 1, "Original")
	require.NoError(t, err)

	second, err := resolver.ResolveEpisode(seasonID, 1, "Refreshed")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var episode models.Episode
	require.NoError(t, db.First(&episode, first).Error)
	assert.Equal(t, "Refreshed", episode.Title, "last writer wins for the title")

	var count int64
	require.NoError(t, db.Model(&models.Episode{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveEpisodeScopedBySeason(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	seasonOne, err := resolver.ResolveSeason(1)
	require.NoError(t, err)
	seasonTwo, err := resolver.ResolveSeason(2)
	require.NoError(t, err)

	first, err := resolver.ResolveEpisode(seasonOne, 1, "S1E1")
	require.NoError(t, err)
	second, err := resolver.ResolveEpisode(seasonTwo, 1, "S2E1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "episode number 1 differs per season")
}

func TestResolveSpeakerCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewResolver(db)

	alice, err := resolver.ResolveSpeaker("Alice")
	require.NoError(t, err)

	again, err := resolver.ResolveSpeaker("Alice")
	require.NoError(t, err)
	assert.Equal(t, alice, again)

	upper, err := resolver.ResolveSpeaker("ALICE")
	require.NoError(t, err)
	assert.NotEqual(t, alice, upper, "speaker names match exactly as written")
}

func TestResolveSurfacesStorageFault(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.Speaker{}))

	resolver := NewResolver(db)
	_, err := resolver.ResolveSpeaker("Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportFailed)
}
