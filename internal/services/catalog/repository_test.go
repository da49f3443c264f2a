package catalog

import (
	"context"
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

func TestListSeasonsOrdered(t *testing.T) {
	db := setupTestDB(t)
	for _, n := range []int{4, 1, 3} {
		require.NoError(t, db.Create(&models.Season{Number: n}).Error)
	}

	repo := NewRepository(db)
	seasons, err := repo.ListSeasons(context.Background())
	require.NoError(t, err)
	require.Len(t, seasons, 3)
	assert.Equal(t, 1, seasons[0].Number)
	assert.Equal(t, 3, seasons[1].Number)
	assert.Equal(t, 4, seasons[2].Number)
}

func TestListEpisodesOrdered(t *testing.T) {
	db := setupTestDB(t)
	season := models.Season{Number: 1}
	require.NoError(t, db.Create(&season).Error)
	other := models.Season{Number: 2}
	require.NoError(t, db.Create(&other).Error)

	for _, n := range []int{5, 2} {
		require.NoError(t, db.Create(&models.Episode{SeasonID: season.ID, Number: n}).Error)
	}
	require.NoError(t, db.Create(&models.Episode{SeasonID: other.ID, Number: 1}).Error)

	repo := NewRepository(db)
	episodes, err := repo.ListEpisodes(context.Background(), season.ID)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, 2, episodes[0].Number)
	assert.Equal(t, 5, episodes[1].Number)
}

func TestListEpisodesUnknownSeason(t *testing.T) {
	db := setupTestDB(t)

	repo := NewRepository(db)
	_, err := repo.ListEpisodes(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSeasonNotFound)
}

func TestListSpeakersOrdered(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"Zoe", "Alice", "Bob"} {
		require.NoError(t, db.Create(&models.Speaker{Name: name}).Error)
	}

	repo := NewRepository(db)
	speakers, err := repo.ListSpeakers(context.Background())
	require.NoError(t, err)
	require.Len(t, speakers, 3)
	assert.Equal(t, "Alice", speakers[0].Name)
	assert.Equal(t, "Zoe", speakers[2].Name)
}
