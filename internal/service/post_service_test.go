package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"skillshare/internal/api/dto"
	"skillshare/internal/model"
	"skillshare/internal/pkg/storage"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedFile struct {
	name string
	data []byte
}

// buildFileHeaders assembles real *multipart.FileHeader values the way gin
// receives them.
func buildFileHeaders(t *testing.T, files []namedFile) []*multipart.FileHeader {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for _, f := range files {
		fw, err := w.CreateFormFile("media", f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&b, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["media"]
}

type postServiceFixture struct {
	svc      PostService
	userRepo *fakeUserRepo
	postRepo *fakePostRepo
	likeRepo *fakeLikeRepo
	root     string
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	likeRepo := newFakeLikeRepo()
	root := t.TempDir()
	svc := NewPostService(postRepo, userRepo, likeRepo, storage.NewLocalStore(root))
	return &postServiceFixture{svc: svc, userRepo: userRepo, postRepo: postRepo, likeRepo: likeRepo, root: root}
}

func (f *postServiceFixture) addUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "x", Provider: model.ProviderLocal}
	require.NoError(t, f.userRepo.CreateUser(context.Background(), user))
	return user
}

func TestCreatePostOwnedByCaller(t *testing.T) {
	f := newPostServiceFixture(t)
	user := f.addUser(t, "A", "a@x.com")

	post, err := f.svc.CreatePost(context.Background(), "a@x.com",
		&dto.CreatePostDTO{Content: "hello", Type: "TEXT"}, nil)
	require.NoError(t, err)
	require.NotZero(t, post.ID)
	assert.Equal(t, "hello", post.Content)
	assert.Equal(t, "TEXT", post.Type)

	stored, err := f.postRepo.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestCreatePostInvalidType(t *testing.T) {
	f := newPostServiceFixture(t)
	f.addUser(t, "A", "a@x.com")

	_, err := f.svc.CreatePost(context.Background(), "a@x.com",
		&dto.CreatePostDTO{Content: "hello", Type: "POEM"}, nil)
	assert.ErrorIs(t, err, ErrPostTypeInvalid)
}

func TestCreatePostUnresolvedIdentity(t *testing.T) {
	f := newPostServiceFixture(t)

	_, err := f.svc.CreatePost(context.Background(), "ghost@x.com",
		&dto.CreatePostDTO{Content: "hello", Type: "TEXT"}, nil)
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
	assert.Equal(t, Unauthorized, ErrorMap[ErrIdentityUnresolved])
}

func TestCreatePostWithMedia(t *testing.T) {
	f := newPostServiceFixture(t)
	f.addUser(t, "A", "a@x.com")

	files := buildFileHeaders(t, []namedFile{
		{name: "photo.JPG", data: []byte("jpeg-bytes")},
		{name: "clip.mp4", data: []byte("mp4-bytes")},
		{name: "empty.png", data: nil},
	})

	post, err := f.svc.CreatePost(context.Background(), "a@x.com",
		&dto.CreatePostDTO{Content: "media post", Type: "IMAGE"}, files)
	require.NoError(t, err)

	// The empty file contributes no media record.
	require.Len(t, post.Media, 2)

	byOriginal := make(map[string]*dto.MediaFileDTO)
	for _, m := range post.Media {
		byOriginal[m.OriginalFilename] = m
	}

	photo := byOriginal["photo.JPG"]
	require.NotNil(t, photo)
	// The generated name keeps the original extension, case included.
	assert.True(t, strings.HasSuffix(photo.Filename, ".JPG"), "got %q", photo.Filename)
	assert.NotEqual(t, "photo.JPG", photo.Filename)
	assert.Equal(t, int64(len("jpeg-bytes")), photo.Size)

	clip := byOriginal["clip.mp4"]
	require.NotNil(t, clip)
	assert.True(t, strings.HasSuffix(clip.Filename, ".mp4"))

	// The bytes are on disk under the per-post directory at the recorded
	// relative path.
	for _, m := range post.Media {
		data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(m.FilePath)))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestCreatePostMetadataFailureCleansFiles(t *testing.T) {
	f := newPostServiceFixture(t)
	f.addUser(t, "A", "a@x.com")
	f.postRepo.attachErr = assert.AnError

	files := buildFileHeaders(t, []namedFile{
		{name: "a.png", data: []byte("a")},
		{name: "b.png", data: []byte("b")},
	})

	post, err := f.svc.CreatePost(context.Background(), "a@x.com",
		&dto.CreatePostDTO{Content: "media post", Type: "IMAGE"}, files)
	require.Error(t, err)
	require.Nil(t, post)

	// No staged file survives a failed metadata commit.
	entries, readErr := os.ReadDir(filepath.Join(f.root, "1"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	f := newPostServiceFixture(t)
	owner := f.addUser(t, "A", "a@x.com")
	f.addUser(t, "B", "b@x.com")

	post := &model.Post{UserID: owner.ID, Content: "orig", Type: model.PostTypeText, User: *owner}
	require.NoError(t, f.postRepo.CreatePost(context.Background(), post))

	_, err := f.svc.UpdatePostContent(context.Background(), "b@x.com", post.ID, "hijack")
	assert.ErrorIs(t, err, ErrPostUpdateDenied)

	updated, err := f.svc.UpdatePostContent(context.Background(), "a@x.com", post.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	stored, err := f.postRepo.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Content)
}

func TestUpdatePostNotFound(t *testing.T) {
	f := newPostServiceFixture(t)
	f.addUser(t, "A", "a@x.com")

	_, err := f.svc.UpdatePostContent(context.Background(), "a@x.com", 99, "edited")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	f := newPostServiceFixture(t)
	owner := f.addUser(t, "A", "a@x.com")
	f.addUser(t, "B", "b@x.com")

	post := &model.Post{UserID: owner.ID, Content: "orig", Type: model.PostTypeText, User: *owner}
	require.NoError(t, f.postRepo.CreatePost(context.Background(), post))

	err := f.svc.DeletePost(context.Background(), "b@x.com", post.ID)
	assert.ErrorIs(t, err, ErrPostDeleteDenied)

	require.NoError(t, f.svc.DeletePost(context.Background(), "a@x.com", post.ID))

	stored, err := f.postRepo.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestListFeedUnresolvedIdentity(t *testing.T) {
	f := newPostServiceFixture(t)

	_, err := f.svc.ListFeed(context.Background(), "ghost@x.com", &dto.PageQuery{})
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}

func TestListFeedOnlyFollowedAuthors(t *testing.T) {
	f := newPostServiceFixture(t)
	reader := f.addUser(t, "R", "r@x.com")
	followed := f.addUser(t, "F", "f@x.com")
	stranger := f.addUser(t, "S", "s@x.com")
	_ = reader

	require.NoError(t, f.postRepo.CreatePost(context.Background(),
		&model.Post{UserID: followed.ID, Content: "from followed", Type: model.PostTypeText}))
	require.NoError(t, f.postRepo.CreatePost(context.Background(),
		&model.Post{UserID: stranger.ID, Content: "from stranger", Type: model.PostTypeText}))

	f.postRepo.feedAuthors = map[uint64]struct{}{followed.ID: {}}

	pageDTO, err := f.svc.ListFeed(context.Background(), "r@x.com", &dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, pageDTO.Items, 1)
	assert.Equal(t, "from followed", pageDTO.Items[0].Content)
}
