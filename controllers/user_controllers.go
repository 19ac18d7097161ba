package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/services"
)

type CreateUserController struct {
	service *services.CreateUserService
}

func NewCreateUserController(service *services.CreateUserService) *CreateUserController {
	return &CreateUserController{service: service}
}

// Handle POST /users
func (ctl *CreateUserController) Handle(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest(err.Error()))
		return
	}

	user, err := ctl.service.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type AuthenticateUserController struct {
	service *services.AuthenticateUserService
}

func NewAuthenticateUserController(service *services.AuthenticateUserService) *AuthenticateUserController {
	return &AuthenticateUserController{service: service}
}

// Handle POST /login，响应体直接是令牌字符串
func (ctl *AuthenticateUserController) Handle(c *gin.Context) {
	var req services.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest(err.Error()))
		return
	}

	token, err := ctl.service.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, token)
}

type ListUsersController struct {
	service *services.ListUsersService
}

func NewListUsersController(service *services.ListUsersService) *ListUsersController {
	return &ListUsersController{service: service}
}

// Handle GET /users
func (ctl *ListUsersController) Handle(c *gin.Context) {
	users, err := ctl.service.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}
