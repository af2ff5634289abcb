package storage

import (
	"fmt"
	"io"
	log "log/slog"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// StoredFile describes one file written to disk. FilePath is relative to the
// store root so it can be persisted and served back unchanged.
type StoredFile struct {
	Filename         string
	OriginalFilename string
	ContentType      string
	Size             int64
	FilePath         string
}

// LocalStore writes uploaded media under a per-post directory inside root.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// SavePostMedia writes every non-empty file in files to the post's directory.
// Names are generated as <uuid><original extension>, so concurrent uploads
// never collide. The writes are staged: if any file fails, all files already
// written for this call are removed and the error is returned, leaving no
// partial state on disk. Empty files are skipped.
func (s *LocalStore) SavePostMedia(postID uint64, files []*multipart.FileHeader) ([]StoredFile, error) {
	stored := make([]StoredFile, 0, len(files))
	written := make([]string, 0, len(files))

	dir := filepath.Join(s.root, strconv.FormatUint(postID, 10))

	cleanup := func() {
		for _, p := range written {
			if err := os.Remove(p); err != nil {
				log.Warn("failed to remove staged media file", "path", p, "err", err)
			}
		}
	}

	for _, file := range files {
		if file == nil || file.Size == 0 {
			continue
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}

		ext := path.Ext(file.Filename)
		name := uuid.NewString() + ext
		dst := filepath.Join(dir, name)

		if err := s.writeFile(file, dst); err != nil {
			cleanup()
			return nil, err
		}
		written = append(written, dst)

		stored = append(stored, StoredFile{
			Filename:         name,
			OriginalFilename: file.Filename,
			ContentType:      file.Header.Get("Content-Type"),
			Size:             file.Size,
			FilePath:         path.Join(strconv.FormatUint(postID, 10), name),
		})
	}

	return stored, nil
}

// Remove deletes previously stored files, given their relative paths.
func (s *LocalStore) Remove(paths []string) {
	for _, p := range paths {
		if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(p))); err != nil {
			log.Warn("failed to remove media file", "path", p, "err", err)
		}
	}
}

// RemovePostDir deletes the post's entire media directory.
func (s *LocalStore) RemovePostDir(postID uint64) error {
	dir := filepath.Join(s.root, strconv.FormatUint(postID, 10))
	return os.RemoveAll(dir)
}

func (s *LocalStore) writeFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}

	if _, err = io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("failed to write media file: %w", err)
	}

	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to close media file: %w", err)
	}

	return nil
}
