package repository

import (
	"context"

	"gorm.io/gorm"

	"nexyatra/internal/domain"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ContactMessageRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var msgs []domain.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset).Find(&msgs).Error; err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ContactMessage{}, id).Error
}
