package repository

import (
	"context"

	"pengasuh_backend/internal/model"

	"gorm.io/gorm"
)

type MediaRepository struct {
	DB *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{DB: db}
}

// ListByTopic returns the topic's media, optionally narrowed to one kind.
func (r *MediaRepository) ListByTopic(ctx context.Context, topic model.MediaTopic, kind model.MediaKind) ([]model.MediaContent, error) {
	var items []model.MediaContent
	query := r.DB.WithContext(ctx).Where("topic = ?", topic)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	err := query.Order("display_order asc, created_at asc").Find(&items).Error
	return items, err
}

func (r *MediaRepository) Create(ctx context.Context, item *model.MediaContent) error {
	return r.DB.WithContext(ctx).Create(item).Error
}
