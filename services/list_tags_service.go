package services

import (
	"context"

	"github.com/studieren/compliments/gormtool"
	"github.com/studieren/compliments/models"
)

func tagsCacheKey(tool *gormtool.CRUDTool) string {
	return tool.GenerateCacheKey(&models.Tag{}, "all")
}

type ListTagsService struct {
	tags TagStore
	tool *gormtool.CRUDTool
}

func NewListTagsService(tags TagStore, tool *gormtool.CRUDTool) *ListTagsService {
	return &ListTagsService{tags: tags, tool: tool}
}

func (s *ListTagsService) Execute(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.tool.Remember(ctx, tagsCacheKey(s.tool), &tags, func() error {
		var err error
		tags, err = s.tags.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}
