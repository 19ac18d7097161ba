package services

import (
	"context"
	"strings"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/auth"
)

type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticateUserService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthenticateUserService(users UserStore, tokens TokenIssuer) *AuthenticateUserService {
	return &AuthenticateUserService{users: users, tokens: tokens}
}

// Execute 返回签名后的令牌。邮箱不存在与密码错误返回同一个错误
func (s *AuthenticateUserService) Execute(ctx context.Context, req AuthenticateRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return "", apperr.BadRequest("Email/Password incorrect")
	}
	return s.tokens.Issue(user.ID, user.Email)
}
