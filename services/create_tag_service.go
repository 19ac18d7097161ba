package services

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/gormtool"
	"github.com/studieren/compliments/models"
)

type CreateTagService struct {
	tags TagStore
	tool *gormtool.CRUDTool
}

func NewCreateTagService(tags TagStore, tool *gormtool.CRUDTool) *CreateTagService {
	return &CreateTagService{tags: tags, tool: tool}
}

// Execute 创建标签。归一化后 slug 相同的名称（"Team Work"、"team-work"）视为重复
func (s *CreateTagService) Execute(ctx context.Context, name string) (*models.Tag, error) {
	start := time.Now()
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.BadRequest("Incorrect name!")
	}
	tagSlug := tagSlugFor(name)

	existing, err := s.tags.FindBySlug(ctx, tagSlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BadRequest("Tag already exists!")
	}

	tag := &models.Tag{Name: name, Slug: tagSlug}
	err = s.tags.Create(ctx, tag)
	s.tool.LogOperation(ctx, "create_tag", tag, time.Since(start), err, map[string]interface{}{
		"slug": tagSlug,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.BadRequest("Tag already exists!")
	}
	if err != nil {
		return nil, err
	}

	if err := s.tool.DeleteFromCache(ctx, tagsCacheKey(s.tool)); err != nil {
		s.tool.Logger.Warn(ctx, "cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
	return tag, nil
}

// tagSlugFor 只含符号或 emoji 的名称 slug.Make 结果为空，退回名称的十六进制编码
func tagSlugFor(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return hex.EncodeToString([]byte(name))
}
