package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/middleware"
	"github.com/studieren/compliments/services"
)

type CreateComplimentController struct {
	service *services.CreateComplimentService
}

func NewCreateComplimentController(service *services.CreateComplimentService) *CreateComplimentController {
	return &CreateComplimentController{service: service}
}

// Handle POST /compliments，发送者始终取当前登录用户
func (ctl *CreateComplimentController) Handle(c *gin.Context) {
	var req services.CreateComplimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest(err.Error()))
		return
	}
	req.UserSender = middleware.UserID(c)

	compliment, err := ctl.service.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, compliment)
}

type ListUserSendComplimentsController struct {
	service *services.ListUserSendComplimentsService
}

func NewListUserSendComplimentsController(service *services.ListUserSendComplimentsService) *ListUserSendComplimentsController {
	return &ListUserSendComplimentsController{service: service}
}

// Handle GET /users/compliments/send
func (ctl *ListUserSendComplimentsController) Handle(c *gin.Context) {
	compliments, err := ctl.service.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, compliments)
}

type ListUserReceiveComplimentsController struct {
	service *services.ListUserReceiveComplimentsService
}

func NewListUserReceiveComplimentsController(service *services.ListUserReceiveComplimentsService) *ListUserReceiveComplimentsController {
	return &ListUserReceiveComplimentsController{service: service}
}

// Handle GET /users/compliments/receive
func (ctl *ListUserReceiveComplimentsController) Handle(c *gin.Context) {
	compliments, err := ctl.service.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, compliments)
}
