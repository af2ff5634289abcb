package service

import (
	"context"
	"skillshare/internal/model"
	"skillshare/internal/repository"
	"time"
)

type UserFollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) error
	Unfollow(ctx context.Context, followerID, followingID uint64) error
}

type userFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &userFollowServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

func (s *userFollowServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) error {
	if followerID == followingID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	follow := &model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	if err = s.userFollowRepo.CreateUserFollow(ctx, follow); err != nil {
		if isDuplicateError(err) {
			return ErrFollowExists
		}
		return err
	}
	return nil
}

func (s *userFollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) error {
	return s.userFollowRepo.DeleteUserFollow(ctx, followerID, followingID)
}
