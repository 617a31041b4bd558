package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/service"
	"github.com/docvault/go-doc-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockVaultKeyService implements service.VaultKeyService for unit tests.
type mockVaultKeyService struct {
	saveVaultKeysFn func(ctx context.Context, userID int64, material models.VaultKeyMaterial) error
	getVaultKeysFn  func(ctx context.Context, userID int64) (models.VaultKeyMaterial, bool, error)
}

func (m *mockVaultKeyService) SaveVaultKeys(ctx context.Context, userID int64, material models.VaultKeyMaterial) error {
	return m.saveVaultKeysFn(ctx, userID, material)
}

func (m *mockVaultKeyService) GetVaultKeys(ctx context.Context, userID int64) (models.VaultKeyMaterial, bool, error) {
	return m.getVaultKeysFn(ctx, userID)
}

func newHandlerWithVaultKeys(t *testing.T, keys service.VaultKeyService) *Handler {
	t.Helper()
	svcs := &service.Services{
		VaultKeyService: keys,
	}
	return NewHandler(svcs, logger.Nop())
}

func TestSaveVaultKeys_HTTP(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"saved", nil, http.StatusOK},
		{"incomplete material", service.ErrInvalidDataProvided, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := &mockVaultKeyService{
				saveVaultKeysFn: func(_ context.Context, userID int64, _ models.VaultKeyMaterial) error {
					assert.Equal(t, int64(7), userID)
					return tt.serviceErr
				},
			}

			h := newHandlerWithVaultKeys(t, keys)
			body := `{"kdf_salt":"s","kdf_params":{"time":1,"memory":65536,"threads":4,"key_len":32},"wrapped_mk":"w","wrapped_mk_with_recovery":"r","recovery_key_salt":"rs"}`
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/vault/keys", strings.NewReader(body)), 7)
			rec := httptest.NewRecorder()

			h.saveVaultKeys(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetVaultKeys_HTTP_Found(t *testing.T) {
	keys := &mockVaultKeyService{
		getVaultKeysFn: func(_ context.Context, userID int64) (models.VaultKeyMaterial, bool, error) {
			return models.VaultKeyMaterial{
				UserID:                   userID,
				KDFSalt:                  "salt",
				WrappedMasterKey:         "wrapped",
				WrappedMasterKeyRecovery: "wrapped-rec",
				RecoveryKeySalt:          "rec-salt",
			}, true, nil
		},
	}

	h := newHandlerWithVaultKeys(t, keys)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/vault/keys", nil), 7)
	rec := httptest.NewRecorder()

	h.getVaultKeys(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VaultKeysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	assert.Equal(t, "wrapped", resp.WrappedMasterKey)
}

func TestGetVaultKeys_HTTP_NotSetUp(t *testing.T) {
	keys := &mockVaultKeyService{
		getVaultKeysFn: func(_ context.Context, _ int64) (models.VaultKeyMaterial, bool, error) {
			return models.VaultKeyMaterial{}, false, nil
		},
	}

	h := newHandlerWithVaultKeys(t, keys)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/vault/keys", nil), 7)
	rec := httptest.NewRecorder()

	h.getVaultKeys(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VaultKeysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	assert.Empty(t, resp.WrappedMasterKey)
}
