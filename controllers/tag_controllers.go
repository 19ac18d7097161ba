package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studieren/compliments/apperr"
	"github.com/studieren/compliments/services"
)

type CreateTagController struct {
	service *services.CreateTagService
}

func NewCreateTagController(service *services.CreateTagService) *CreateTagController {
	return &CreateTagController{service: service}
}

// Handle POST /tags
func (ctl *CreateTagController) Handle(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest(err.Error()))
		return
	}

	tag, err := ctl.service.Execute(c.Request.Context(), req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

type ListTagsController struct {
	service *services.ListTagsService
}

func NewListTagsController(service *services.ListTagsService) *ListTagsController {
	return &ListTagsController{service: service}
}

// Handle GET /tags
func (ctl *ListTagsController) Handle(c *gin.Context) {
	tags, err := ctl.service.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tags)
}
