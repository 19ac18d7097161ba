// Package services 每个类型对应一个用例：校验输入、调用仓储，客户端错误以 apperr 返回。
package services

import (
	"context"

	"github.com/studieren/compliments/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type TagStore interface {
	Create(ctx context.Context, tag *models.Tag) error
	FindByID(ctx context.Context, id string) (*models.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
}

type ComplimentStore interface {
	Create(ctx context.Context, compliment *models.Compliment) error
	ListByReceiver(ctx context.Context, userID string) ([]models.Compliment, error)
	ListBySender(ctx context.Context, userID string) ([]models.Compliment, error)
}

// TokenIssuer 为已认证用户签发访问令牌
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}
