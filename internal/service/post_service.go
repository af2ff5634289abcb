package service

import (
	"context"
	"mime/multipart"
	"skillshare/internal/api/dto"
	"skillshare/internal/model"
	"skillshare/internal/pkg/storage"
	"skillshare/internal/repository"
)

// MediaStore is the slice of the local store the post flow needs.
type MediaStore interface {
	SavePostMedia(postID uint64, files []*multipart.FileHeader) ([]storage.StoredFile, error)
	Remove(paths []string)
	RemovePostDir(postID uint64) error
}

type PostService interface {
	ListPosts(ctx context.Context, query *dto.PageQuery) (*dto.PostPageDTO, error)
	ListFeed(ctx context.Context, email string, query *dto.PageQuery) (*dto.PostPageDTO, error)
	CreatePost(ctx context.Context, email string, req *dto.CreatePostDTO, files []*multipart.FileHeader) (*dto.PostDTO, error)
	UpdatePostContent(ctx context.Context, email string, postID uint64, content string) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, email string, postID uint64) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
	likeRepo repository.LikeRepo
	store    MediaStore
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo, likeRepo repository.LikeRepo, store MediaStore) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
		likeRepo: likeRepo,
		store:    store,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, query *dto.PageQuery) (*dto.PostPageDTO, error) {
	query.Normalize()
	posts, total, err := s.postRepo.ListPosts(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPage(ctx, posts, total, query), nil
}

func (s *postServiceImpl) ListFeed(ctx context.Context, email string, query *dto.PageQuery) (*dto.PostPageDTO, error) {
	user, err := s.resolveIdentity(ctx, email)
	if err != nil {
		return nil, err
	}

	query.Normalize()
	posts, total, err := s.postRepo.ListFeedPosts(ctx, user.ID, query.PageSize, query.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPage(ctx, posts, total, query), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, email string, req *dto.CreatePostDTO, files []*multipart.FileHeader) (*dto.PostDTO, error) {
	user, err := s.resolveIdentity(ctx, email)
	if err != nil {
		return nil, err
	}

	postType, ok := model.ParsePostType(req.Type)
	if !ok {
		return nil, ErrPostTypeInvalid
	}

	post := &model.Post{
		UserID:  user.ID,
		Content: req.Content,
		Type:    postType,
	}

	// The post is persisted first so the media files have an id to key their
	// storage directory on.
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		stored, err := s.store.SavePostMedia(post.ID, files)
		if err != nil {
			return nil, err
		}

		media := make([]*model.MediaFile, 0, len(stored))
		for _, f := range stored {
			media = append(media, &model.MediaFile{
				Filename:         f.Filename,
				OriginalFilename: f.OriginalFilename,
				ContentType:      f.ContentType,
				Size:             f.Size,
				FilePath:         f.FilePath,
			})
		}

		// Metadata is only committed once every file is on disk; if the
		// insert fails the staged files are removed again.
		if err = s.postRepo.AttachMedia(ctx, post.ID, media); err != nil {
			paths := make([]string, 0, len(stored))
			for _, f := range stored {
				paths = append(paths, f.FilePath)
			}
			s.store.Remove(paths)
			return nil, err
		}
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created, 0), nil
}

func (s *postServiceImpl) UpdatePostContent(ctx context.Context, email string, postID uint64, content string) (*dto.PostDTO, error) {
	post, err := s.ownedPost(ctx, email, postID, ErrPostUpdateDenied)
	if err != nil {
		return nil, err
	}

	if err = s.postRepo.UpdatePostContent(ctx, postID, content); err != nil {
		return nil, err
	}
	post.Content = content

	likeCount, err := s.likeRepo.GetLikeCountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post, likeCount), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, email string, postID uint64) error {
	if _, err := s.ownedPost(ctx, email, postID, ErrPostDeleteDenied); err != nil {
		return err
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}
	return s.store.RemovePostDir(postID)
}

// resolveIdentity maps the authenticated email to its user record. A token
// that survives its user is a distinct fault, not a generic server error.
func (s *postServiceImpl) resolveIdentity(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrIdentityUnresolved
	}
	return user, nil
}

// ownedPost fetches the post and enforces the ownership gate: the caller's
// email must equal the owner's email.
func (s *postServiceImpl) ownedPost(ctx context.Context, email string, postID uint64, denied error) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.User.Email != email {
		return nil, denied
	}
	return post, nil
}

func (s *postServiceImpl) toPage(ctx context.Context, posts []*model.Post, total int64, query *dto.PageQuery) *dto.PostPageDTO {
	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		likeCount, err := s.likeRepo.GetLikeCountByPostID(ctx, post.ID)
		if err != nil {
			likeCount = 0
		}
		items = append(items, toPostDTO(post, likeCount))
	}
	return &dto.PostPageDTO{
		Items:    items,
		Page:     query.Page,
		PageSize: query.PageSize,
		Total:    total,
	}
}
