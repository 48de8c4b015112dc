package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JohnBalawejder/watcha/internal/models"
	"github.com/JohnBalawejder/watcha/internal/omdb"
	"github.com/JohnBalawejder/watcha/internal/repository"

	"github.com/sirupsen/logrus"
)

// MetadataProvider is the slice of the OMDb client the services depend on.
type MetadataProvider interface {
	Search(ctx context.Context, query string) ([]omdb.SearchResult, error)
	Lookup(ctx context.Context, title string) (*omdb.Metadata, error)
}

type WatchlistService interface {
	AddWatched(ctx context.Context, userID uint, title, mediaType string, ranking int) (*models.WatchedMovie, error)
	ListWatched(ctx context.Context, userID uint) ([]models.WatchedMovie, error)
	DeleteWatched(ctx context.Context, userID, entryID uint) error
	RecordSwipe(ctx context.Context, userID uint, title, direction string) (*models.Swipe, error)
	ListSwipes(ctx context.Context, userID uint) ([]models.Swipe, error)
}

type watchlistService struct {
	watched  repository.WatchedRepository
	swipes   repository.SwipeRepository
	provider MetadataProvider
	logger   *logrus.Logger
}

func NewWatchlistService(watched repository.WatchedRepository, swipes repository.SwipeRepository, provider MetadataProvider, logger *logrus.Logger) WatchlistService {
	return &watchlistService{
		watched:  watched,
		swipes:   swipes,
		provider: provider,
		logger:   logger,
	}
}

// AddWatched enriches the title with OMDb metadata and records it on the
// user's watched list.
func (s *watchlistService) AddWatched(ctx context.Context, userID uint, title, mediaType string, ranking int) (*models.WatchedMovie, error) {
	meta, err := s.provider.Lookup(ctx, title)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}

	entry := &models.WatchedMovie{
		UserID:      userID,
		Title:       title,
		Type:        mediaType,
		Ranking:     ranking,
		Genre:       meta.Genre,
		Poster:      meta.Poster,
		ReleaseYear: meta.ReleaseYear,
	}

	if err := s.watched.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save watched movie: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   title,
	}).Info("Watched movie added")

	return entry, nil
}

func (s *watchlistService) ListWatched(ctx context.Context, userID uint) ([]models.WatchedMovie, error) {
	return s.watched.FindByUser(ctx, userID)
}

// DeleteWatched removes an entry owned by the user. Entries owned by other
// users are reported as not found, never as forbidden.
func (s *watchlistService) DeleteWatched(ctx context.Context, userID, entryID uint) error {
	entry, err := s.watched.FindByIDAndUser(ctx, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to look up watched movie: %w", err)
	}
	if entry == nil {
		return ErrWatchedNotFound
	}

	if err := s.watched.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete watched movie: %w", err)
	}
	return nil
}

func (s *watchlistService) RecordSwipe(ctx context.Context, userID uint, title, direction string) (*models.Swipe, error) {
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		return nil, ErrInvalidSwipe
	}

	swipe := &models.Swipe{
		UserID: userID,
		Title:  title,
		Swipe:  direction,
	}

	if err := s.swipes.Create(ctx, swipe); err != nil {
		return nil, fmt.Errorf("failed to save swipe: %w", err)
	}
	return swipe, nil
}

func (s *watchlistService) ListSwipes(ctx context.Context, userID uint) ([]models.Swipe, error) {
	return s.swipes.FindByUser(ctx, userID)
}
