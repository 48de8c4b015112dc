package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JohnBalawejder/watcha/internal/database"
	"github.com/JohnBalawejder/watcha/internal/models"

	"gorm.io/gorm"
)

type WatchedRepository interface {
	Create(ctx context.Context, entry *models.WatchedMovie) error
	FindByUser(ctx context.Context, userID uint) ([]models.WatchedMovie, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*models.WatchedMovie, error)
	Delete(ctx context.Context, id uint) error
}

type watchedRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewWatchedRepository(db *database.Database) WatchedRepository {
	return &watchedRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *watchedRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *watchedRepository) Create(ctx context.Context, entry *models.WatchedMovie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByUser returns the user's watched entries in storage order.
func (r *watchedRepository) FindByUser(ctx context.Context, userID uint) ([]models.WatchedMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.WatchedMovie
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *watchedRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*models.WatchedMovie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entry models.WatchedMovie
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *watchedRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.WatchedMovie{}, id).Error
}
