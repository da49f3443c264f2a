// Package catalog serves the plain listing reads over a session's
// dataset: seasons, episodes of a season, and speakers.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/showquotes/transcript-api/internal/models"
	"gorm.io/gorm"
)

// ErrSeasonNotFound reports a season id that does not exist in the
// dataset.
var ErrSeasonNotFound = errors.New("season not found")

// Reader lists the structural entities of one dataset.
type Reader interface {
	ListSeasons(ctx context.Context) ([]models.Season, error)
	ListEpisodes(ctx context.Context, seasonID uint) ([]models.Episode, error)
	ListSpeakers(ctx context.Context) ([]models.Speaker, error)
}

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements the Reader interface
var _ Reader = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	var seasons []models.Season
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&seasons).Error; err != nil {
		return nil, fmt.Errorf("listing seasons: %w", err)
	}
	return seasons, nil
}

func (r *Repository) ListEpisodes(ctx context.Context, seasonID uint) ([]models.Episode, error) {
	var season models.Season
	if err := r.db.WithContext(ctx).First(&season, seasonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("getting season: %w", err)
	}

	var episodes []models.Episode
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("number ASC").
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

func (r *Repository) ListSpeakers(ctx context.Context) ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&speakers).Error; err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}
	return speakers, nil
}
