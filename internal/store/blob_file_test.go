package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlobStore(t *testing.T) BlobStore {
	t.Helper()

	store, err := NewFileBlobStore(t.TempDir(), logger.NewLogger("test"))
	require.NoError(t, err)
	return store
}

func TestFileBlobStore_SaveAndOpen(t *testing.T) {
	store := newTestBlobStore(t)
	ctx := context.Background()

	ciphertext := []byte("nonce-and-ciphertext-bytes")

	err := store.Save(ctx, "user-1/doc-1", bytes.NewReader(ciphertext))
	require.NoError(t, err)

	rc, err := store.Open(ctx, "user-1/doc-1")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ciphertext, got)
}

func TestFileBlobStore_OpenMissing(t *testing.T) {
	store := newTestBlobStore(t)

	_, err := store.Open(context.Background(), "no/such/blob")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlobNotFound))
}

func TestFileBlobStore_RejectsEscapingPath(t *testing.T) {
	store := newTestBlobStore(t)

	_, err := store.Open(context.Background(), "../../etc/passwd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBlobNotFound))
}

func TestFileBlobStore_OverwriteReplacesContent(t *testing.T) {
	store := newTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "doc", bytes.NewReader([]byte("first"))))
	require.NoError(t, store.Save(ctx, "doc", bytes.NewReader([]byte("second"))))

	rc, err := store.Open(ctx, "doc")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}
