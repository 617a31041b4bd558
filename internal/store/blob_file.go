package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/docvault/go-doc-share/internal/logger"
)

// fileBlobStore is the local file-system implementation of [BlobStore].
// Encrypted document blobs are stored as plain files under a base directory;
// the stored bytes are already ciphertext, so no file-level protection beyond
// standard permissions is applied.
type fileBlobStore struct {
	baseDir string
	logger  *logger.Logger
}

// NewFileBlobStore constructs a [BlobStore] rooted at baseDir. The directory
// is created if it does not exist.
func NewFileBlobStore(baseDir string, log *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		log.Err(err).Str("func", "NewFileBlobStore").Msg("failed to create blob directory")
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	log.Debug().Str("dir", baseDir).Msg("creating file blob store")

	return &fileBlobStore{
		baseDir: baseDir,
		logger:  log,
	}, nil
}

// Save writes the blob to path, creating parent directories as needed.
func (s *fileBlobStore) Save(ctx context.Context, path string, data io.Reader) error {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Save").Str("path", path).Msg("failed to create blob subdirectory")
		return fmt.Errorf("failed to create blob subdirectory: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Save").Str("path", path).Msg("failed to create blob file")
		return fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		log.Err(err).Str("func", "*fileBlobStore.Save").Str("path", path).Msg("failed to write blob file")
		return fmt.Errorf("failed to write blob file: %w", err)
	}

	return nil
}

// Open returns a reader over the blob at path.
//
// Returns [ErrBlobNotFound] when the file does not exist.
func (s *fileBlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		log.Err(err).Str("func", "*fileBlobStore.Open").Str("path", path).Msg("failed to open blob file")
		return nil, fmt.Errorf("failed to open blob file: %w", err)
	}

	return f, nil
}

// resolve joins path onto the base directory and rejects escapes. Stored
// paths come from the documents table, but the check keeps a corrupted or
// hostile record from reading outside the blob root.
func (s *fileBlobStore) resolve(path string) (string, error) {
	fullPath := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if !strings.HasPrefix(fullPath, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return "", ErrBlobNotFound
	}

	return fullPath, nil
}
