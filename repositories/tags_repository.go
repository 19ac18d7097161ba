package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/studieren/compliments/models"
)

type TagsRepository struct {
	db *gorm.DB
}

func NewTagsRepository(db *gorm.DB) *TagsRepository {
	return &TagsRepository{db: db}
}

func (r *TagsRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

func (r *TagsRepository) FindByID(ctx context.Context, id string) (*models.Tag, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *TagsRepository) FindBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *TagsRepository) List(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

func (r *TagsRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where(query, arg).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding tag: %w", err)
	}
	return &tag, nil
}
