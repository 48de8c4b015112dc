package repository

import (
	"context"
	"time"

	"github.com/JohnBalawejder/watcha/internal/database"
	"github.com/JohnBalawejder/watcha/internal/models"
)

type SwipeRepository interface {
	Create(ctx context.Context, swipe *models.Swipe) error
	FindByUser(ctx context.Context, userID uint) ([]models.Swipe, error)
}

type swipeRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewSwipeRepository(db *database.Database) SwipeRepository {
	return &swipeRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *swipeRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *swipeRepository) Create(ctx context.Context, swipe *models.Swipe) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(swipe).Error
}

func (r *swipeRepository) FindByUser(ctx context.Context, userID uint) ([]models.Swipe, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var swipes []models.Swipe
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&swipes).Error
	if err != nil {
		return nil, err
	}
	return swipes, nil
}
