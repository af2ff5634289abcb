package service

import (
	"errors"
	"skillshare/internal/api/dto"
	"skillshare/internal/model"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	return userDTO
}

func toPostDTO(post *model.Post, likeCount int64) *dto.PostDTO {
	postDTO := &dto.PostDTO{}
	_ = copier.Copy(postDTO, post)
	postDTO.Type = string(post.Type)
	postDTO.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	postDTO.UpdatedAt = post.UpdatedAt.Format(time.RFC3339)
	postDTO.LikeCount = likeCount

	if post.User.ID != 0 {
		postDTO.User = toUserDTO(&post.User)
	}

	postDTO.Media = make([]*dto.MediaFileDTO, 0, len(post.Media))
	for i := range post.Media {
		mediaDTO := &dto.MediaFileDTO{}
		_ = copier.Copy(mediaDTO, &post.Media[i])
		postDTO.Media = append(postDTO.Media, mediaDTO)
	}

	return postDTO
}
