package services

import (
	"context"

	"github.com/studieren/compliments/models"
)

type ListUserSendComplimentsService struct {
	compliments ComplimentStore
}

func NewListUserSendComplimentsService(compliments ComplimentStore) *ListUserSendComplimentsService {
	return &ListUserSendComplimentsService{compliments: compliments}
}

func (s *ListUserSendComplimentsService) Execute(ctx context.Context, userID string) ([]models.Compliment, error) {
	return s.compliments.ListBySender(ctx, userID)
}

type ListUserReceiveComplimentsService struct {
	compliments ComplimentStore
}

func NewListUserReceiveComplimentsService(compliments ComplimentStore) *ListUserReceiveComplimentsService {
	return &ListUserReceiveComplimentsService{compliments: compliments}
}

func (s *ListUserReceiveComplimentsService) Execute(ctx context.Context, userID string) ([]models.Compliment, error) {
	return s.compliments.ListByReceiver(ctx, userID)
}
