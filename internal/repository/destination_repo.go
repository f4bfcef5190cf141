package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nexyatra/internal/domain"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) Create(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DestinationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Destination, error) {
	var d domain.Destination
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List returns destinations featured-first, newest within each group.
func (r *DestinationRepository) List(ctx context.Context, category string) ([]domain.Destination, error) {
	q := r.db.WithContext(ctx).Model(&domain.Destination{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []domain.Destination
	if err := q.Order("featured DESC, created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DestinationRepository) Update(ctx context.Context, d *domain.Destination) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Destination{}, id).Error
}
