package handler

import (
	"skillshare/internal/pkg/response"
	"skillshare/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc: actionSvc,
	}
}

func (s *PostActionHandler) LikePost(c *gin.Context) {
	email := c.GetString("email")

	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.actionSvc.LikePost(c.Request.Context(), email, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostActionHandler) UnlikePost(c *gin.Context) {
	email := c.GetString("email")

	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.actionSvc.UnlikePost(c.Request.Context(), email, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
