package service

import (
	"context"
	"skillshare/internal/model"
	"sync"

	"github.com/go-sql-driver/mysql"
)

// In-memory repository fakes. They mimic the repository contract, including
// the (nil, nil) convention for not-found and MySQL duplicate-key errors on
// unique-constraint violations.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := f.GetUserByEmail(ctx, email)
	return u != nil, err
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakePostRepo struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*model.Post
	media  map[uint64][]*model.MediaFile

	attachErr error

	// authors whose posts show up in the fake feed
	feedAuthors map[uint64]struct{}
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts: make(map[uint64]*model.Post),
		media: make(map[uint64][]*model.MediaFile),
	}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	post.ID = f.nextID
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) AttachMedia(_ context.Context, postID uint64, media []*model.MediaFile) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range media {
		m.PostID = postID
	}
	f.media[postID] = append(f.media[postID], media...)
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	for _, m := range f.media[id] {
		cp.Media = append(cp.Media, *m)
	}
	return &cp, nil
}

func (f *fakePostRepo) ListPosts(_ context.Context, limit, offset int) ([]*model.Post, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		cp := *p
		all = append(all, &cp)
	}
	return page(all, limit, offset), int64(len(f.posts)), nil
}

func (f *fakePostRepo) ListFeedPosts(_ context.Context, userID uint64, limit, offset int) ([]*model.Post, int64, error) {
	// The fake has no follow graph; feed filtering is exercised against the
	// follows map wired in by individual tests.
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := make([]*model.Post, 0)
	for _, p := range f.posts {
		if f.feedAuthors == nil {
			continue
		}
		if _, ok := f.feedAuthors[p.UserID]; ok {
			cp := *p
			matched = append(matched, &cp)
		}
	}
	return page(matched, limit, offset), int64(len(matched)), nil
}

func (f *fakePostRepo) UpdatePostContent(_ context.Context, id uint64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		p.Content = content
	}
	return nil
}

func (f *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.posts, id)
	delete(f.media, id)
	return nil
}

func page(posts []*model.Post, limit, offset int) []*model.Post {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

type fakeLikeRepo struct {
	mu    sync.Mutex
	likes map[[2]uint64]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[[2]uint64]bool)}
}

func (f *fakeLikeRepo) CreateLike(_ context.Context, like *model.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint64{like.UserID, like.PostID}
	if f.likes[key] {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	f.likes[key] = true
	return nil
}

func (f *fakeLikeRepo) DeleteLike(_ context.Context, userID, postID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.likes, [2]uint64{userID, postID})
	return nil
}

func (f *fakeLikeRepo) CheckLikeExists(_ context.Context, userID, postID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likes[[2]uint64{userID, postID}], nil
}

func (f *fakeLikeRepo) GetLikeCountByPostID(_ context.Context, postID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for key := range f.likes {
		if key[1] == postID {
			count++
		}
	}
	return count, nil
}

type fakeUserFollowRepo struct {
	mu      sync.Mutex
	follows map[[2]uint64]bool
}

func newFakeUserFollowRepo() *fakeUserFollowRepo {
	return &fakeUserFollowRepo{follows: make(map[[2]uint64]bool)}
}

func (f *fakeUserFollowRepo) GetUserFollow(_ context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.follows[[2]uint64{followerID, followingID}] {
		return &model.UserFollow{FollowerID: followerID, FollowingID: followingID}, nil
	}
	return nil, nil
}

func (f *fakeUserFollowRepo) CreateUserFollow(_ context.Context, userFollow *model.UserFollow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := [2]uint64{userFollow.FollowerID, userFollow.FollowingID}
	if f.follows[key] {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	f.follows[key] = true
	return nil
}

func (f *fakeUserFollowRepo) DeleteUserFollow(_ context.Context, followerID, followingID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.follows, [2]uint64{followerID, followingID})
	return nil
}
