package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/gormtool"
	"github.com/studieren/compliments/models"
	"github.com/studieren/compliments/repositories"
)

type CreateComplimentRequest struct {
	TagID        string `json:"tag_id"`
	UserSender   string `json:"-"`
	UserReceiver string `json:"user_receiver"`
	Message      string `json:"message"`
}

// CreateComplimentService 在同一事务内校验接收者、标签并插入，仓储按事务句柄创建
type CreateComplimentService struct {
	tool *gormtool.CRUDTool
}

func NewCreateComplimentService(tool *gormtool.CRUDTool) *CreateComplimentService {
	return &CreateComplimentService{tool: tool}
}

func (s *CreateComplimentService) Execute(ctx context.Context, req CreateComplimentRequest) (*models.Compliment, error) {
	start := time.Now()
	if req.UserSender == req.UserReceiver {
		return nil, apperr.BadRequest("Incorrect User Receiver")
	}

	var compliment *models.Compliment
	err := s.tool.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		compliment, err = createCompliment(ctx,
			repositories.NewComplimentsRepository(tx),
			repositories.NewUsersRepository(tx),
			repositories.NewTagsRepository(tx),
			req)
		return err
	})
	s.tool.LogOperation(ctx, "create_compliment", compliment, time.Since(start), err, map[string]interface{}{
		"tag_id": req.TagID,
	})
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		// 接收者与标签已在事务内校验，剩下的只可能是发送者已被删除
		return nil, apperr.BadRequest("User Sender does not exists!")
	}
	if err != nil {
		return nil, err
	}
	return compliment, nil
}

func createCompliment(ctx context.Context, compliments ComplimentStore, users UserStore, tags TagStore, req CreateComplimentRequest) (*models.Compliment, error) {
	receiver, err := users.FindByID(ctx, req.UserReceiver)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, apperr.BadRequest("User Receiver does not exists!")
	}

	tag, err := tags.FindByID(ctx, req.TagID)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apperr.BadRequest("Tag does not exists!")
	}

	compliment := &models.Compliment{
		UserSender:   &req.UserSender,
		UserReceiver: &receiver.ID,
		TagID:        &tag.ID,
		Message:      req.Message,
	}
	if err := compliments.Create(ctx, compliment); err != nil {
		return nil, err
	}
	return compliment, nil
}
