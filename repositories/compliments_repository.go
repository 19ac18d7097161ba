package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/studieren/compliments/models"
)

// complimentRelations 列表查询时预加载的关联
var complimentRelations = []string{"Sender", "Receiver", "Tag"}

type ComplimentsRepository struct {
	db *gorm.DB
}

func NewComplimentsRepository(db *gorm.DB) *ComplimentsRepository {
	return &ComplimentsRepository{db: db}
}

func (r *ComplimentsRepository) Create(ctx context.Context, compliment *models.Compliment) error {
	if err := r.db.WithContext(ctx).Omit(complimentRelations...).Create(compliment).Error; err != nil {
		return fmt.Errorf("creating compliment: %w", err)
	}
	return nil
}

func (r *ComplimentsRepository) ListByReceiver(ctx context.Context, userID string) ([]models.Compliment, error) {
	return r.listBy(ctx, "user_receiver = ?", userID)
}

func (r *ComplimentsRepository) ListBySender(ctx context.Context, userID string) ([]models.Compliment, error) {
	return r.listBy(ctx, "user_sender = ?", userID)
}

func (r *ComplimentsRepository) listBy(ctx context.Context, query string, userID string) ([]models.Compliment, error) {
	db := r.db.WithContext(ctx)
	for _, rel := range complimentRelations {
		db = db.Preload(rel)
	}

	compliments := []models.Compliment{}
	if err := db.Where(query, userID).Order("created_at").Find(&compliments).Error; err != nil {
		return nil, fmt.Errorf("listing compliments: %w", err)
	}
	return compliments, nil
}
