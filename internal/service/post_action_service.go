package service

import (
	"context"
	"skillshare/internal/api/dto"
	"skillshare/internal/model"
	"skillshare/internal/repository"
	"time"
)

type PostActionService interface {
	LikePost(ctx context.Context, email string, postID uint64) (*dto.PostDTO, error)
	UnlikePost(ctx context.Context, email string, postID uint64) (*dto.PostDTO, error)
}

type postActionServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostActionService(likeRepo repository.LikeRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) PostActionService {
	return &postActionServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *postActionServiceImpl) LikePost(ctx context.Context, email string, postID uint64) (*dto.PostDTO, error) {
	return s.performAction(ctx, email, postID, func(userID uint64) error {
		err := s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()})
		// Likes form a set: liking twice is a no-op, not an error.
		if err != nil && !isDuplicateError(err) {
			return err
		}
		return nil
	})
}

func (s *postActionServiceImpl) UnlikePost(ctx context.Context, email string, postID uint64) (*dto.PostDTO, error) {
	return s.performAction(ctx, email, postID, func(userID uint64) error {
		// Removing an absent like deletes zero rows, which is fine.
		return s.likeRepo.DeleteLike(ctx, userID, postID)
	})
}

func (s *postActionServiceImpl) performAction(ctx context.Context, email string, postID uint64, repoFunc func(userID uint64) error) (*dto.PostDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityUnresolved
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err = repoFunc(user.ID); err != nil {
		return nil, err
	}

	likeCount, err := s.likeRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post, likeCount), nil
}
