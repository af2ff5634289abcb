package repository

import (
	"context"
	"errors"
	"skillshare/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	AttachMedia(ctx context.Context, postID uint64, media []*model.MediaFile) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, int64, error)
	ListFeedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error)
	UpdatePostContent(ctx context.Context, id uint64, content string) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// AttachMedia inserts the media rows for a post in a single transaction, so
// either all of the uploaded files get their metadata or none do.
func (s *PostRepoImpl) AttachMedia(ctx context.Context, postID uint64, media []*model.MediaFile) error {
	if len(media) == 0 {
		return nil
	}
	for _, m := range media {
		m.PostID = postID
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(media).Error
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Media").
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Media").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return posts, total, nil
}

// ListFeedPosts returns posts authored by users the given user follows.
func (s *PostRepoImpl) ListFeedPosts(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error) {
	following := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Select("following_id").
		Where("follower_id = ?", userID)

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id IN (?)", following).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Media").
		Where("user_id IN (?)", following).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return posts, total, nil
}

func (s *PostRepoImpl) UpdatePostContent(ctx context.Context, id uint64, content string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("content", content).Error
}

// DeletePost removes the post together with its media rows and like rows.
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.MediaFile{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Like{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
