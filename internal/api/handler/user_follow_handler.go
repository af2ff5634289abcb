package handler

import (
	"skillshare/internal/pkg/response"
	"skillshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followSvc service.UserFollowService
}

func NewUserFollowHandler(followSvc service.UserFollowService) *UserFollowHandler {
	return &UserFollowHandler{
		followSvc: followSvc,
	}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	followerID := c.GetUint64("user_id")

	followingID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.followSvc.Follow(c.Request.Context(), followerID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followerID := c.GetUint64("user_id")

	followingID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.followSvc.Unfollow(c.Request.Context(), followerID, followingID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
