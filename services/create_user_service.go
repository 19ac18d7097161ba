package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/auth"
	"github.com/studieren/compliments/gormtool"
	"github.com/studieren/compliments/models"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
	Password string `json:"password"`
}

type CreateUserService struct {
	users UserStore
	tool  *gormtool.CRUDTool
}

func NewCreateUserService(users UserStore, tool *gormtool.CRUDTool) *CreateUserService {
	return &CreateUserService{users: users, tool: tool}
}

func (s *CreateUserService) Execute(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	start := time.Now()
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, apperr.BadRequest("Email incorrect")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BadRequest("User already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Admin:    req.Admin,
		Password: hash,
	}
	err = s.users.Create(ctx, user)
	s.tool.LogOperation(ctx, "create_user", user, time.Since(start), err, map[string]interface{}{
		"admin": user.Admin,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发注册同一邮箱时由唯一索引兜底
		return nil, apperr.BadRequest("User already exists")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
