package services

import (
	"context"

	"github.com/studieren/compliments/models"
)

type ListUsersService struct {
	users UserStore
}

func NewListUsersService(users UserStore) *ListUsersService {
	return &ListUsersService{users: users}
}

// Execute 列出全部用户，密码哈希不会出现在 JSON 中
func (s *ListUsersService) Execute(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
