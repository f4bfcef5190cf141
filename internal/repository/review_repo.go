package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nexyatra/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListApproved returns publicly visible reviews, optionally scoped to one
// destination.
func (r *ReviewRepository) ListApproved(ctx context.Context, destination string) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Where("approved = ?", true)
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	var reviews []domain.Review
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reviews []domain.Review
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Update("approved", approved).Error
}

// AverageApprovedRating returns 0 when a destination has no approved reviews.
func (r *ReviewRepository) AverageApprovedRating(ctx context.Context, destination string) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("approved = ? AND destination = ?", true, destination).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}
