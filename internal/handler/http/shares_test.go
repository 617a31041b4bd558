package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/service"
	"github.com/docvault/go-doc-share/internal/utils"
	"github.com/docvault/go-doc-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockShareService implements service.ShareService for unit tests.
// Each method field can be overridden per test case.
type mockShareService struct {
	issueShareFn         func(ctx context.Context, ownerID int64, req models.ShareCreateRequest) (models.ShareToken, error)
	revokeShareFn        func(ctx context.Context, callerID int64, shareID string) error
	listOwnerSharesFn    func(ctx context.Context, ownerID int64) ([]models.ShareToken, error)
	listReceivedSharesFn func(ctx context.Context, userID int64) ([]models.ReceivedShare, error)
	openSharedFileFn     func(ctx context.Context, userID int64, shareID string) (io.ReadCloser, error)
}

func (m *mockShareService) IssueShare(ctx context.Context, ownerID int64, req models.ShareCreateRequest) (models.ShareToken, error) {
	return m.issueShareFn(ctx, ownerID, req)
}

func (m *mockShareService) RevokeShare(ctx context.Context, callerID int64, shareID string) error {
	return m.revokeShareFn(ctx, callerID, shareID)
}

func (m *mockShareService) ListOwnerShares(ctx context.Context, ownerID int64) ([]models.ShareToken, error) {
	return m.listOwnerSharesFn(ctx, ownerID)
}

func (m *mockShareService) ListReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error) {
	return m.listReceivedSharesFn(ctx, userID)
}

func (m *mockShareService) OpenSharedFile(ctx context.Context, userID int64, shareID string) (io.ReadCloser, error) {
	return m.openSharedFileFn(ctx, userID, shareID)
}

// newHandlerWithShares builds a Handler with the given ShareService mock.
func newHandlerWithShares(t *testing.T, shares service.ShareService) *Handler {
	t.Helper()
	svcs := &service.Services{
		ShareService: shares,
	}
	return NewHandler(svcs, logger.Nop())
}

// asUser attaches an authenticated user ID to the request context, bypassing
// the auth middleware the way it would populate the context itself.
func asUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers reached outside a live router still see their URL params.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createShare
// ─────────────────────────────────────────────

func TestCreateShare_Success(t *testing.T) {
	shares := &mockShareService{
		issueShareFn: func(_ context.Context, ownerID int64, req models.ShareCreateRequest) (models.ShareToken, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, "doc-1", req.DocumentID)
			return models.ShareToken{ID: "share-1"}, nil
		},
	}

	h := newHandlerWithShares(t, shares)
	body := `{"document_id":"doc-1","trusted_person_id":"tp-1","wrapped_dek_for_tp":"d2RlawA"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/shares", strings.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	h.createShare(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ShareCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "share-1", resp.ID)
}

func TestCreateShare_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid permission", service.ErrInvalidPermission, http.StatusBadRequest},
		{"document not owned", service.ErrForbidden, http.StatusForbidden},
		{"recipient not eligible", service.ErrForbidden, http.StatusForbidden},
		{"recipient not linked", service.ErrRecipientNotLinked, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := &mockShareService{
				issueShareFn: func(_ context.Context, _ int64, _ models.ShareCreateRequest) (models.ShareToken, error) {
					return models.ShareToken{}, tt.serviceErr
				},
			}

			h := newHandlerWithShares(t, shares)
			body := `{"document_id":"doc-1","trusted_person_id":"tp-1","wrapped_dek_for_tp":"x"}`
			req := asUser(httptest.NewRequest(http.MethodPost, "/api/shares", strings.NewReader(body)), 1)
			rec := httptest.NewRecorder()

			h.createShare(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateShare_InvalidJSON(t *testing.T) {
	h := newHandlerWithShares(t, &mockShareService{})
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/shares", strings.NewReader("{broken")), 1)
	rec := httptest.NewRecorder()

	h.createShare(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// revokeShare
// ─────────────────────────────────────────────

func TestRevokeShare_HTTP(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"revoked", nil, http.StatusOK},
		{"missing id", service.ErrMissingID, http.StatusBadRequest},
		{"not the owner", service.ErrForbidden, http.StatusForbidden},
		{"unknown share", service.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := &mockShareService{
				revokeShareFn: func(_ context.Context, callerID int64, shareID string) error {
					assert.Equal(t, int64(1), callerID)
					return tt.serviceErr
				},
			}

			h := newHandlerWithShares(t, shares)
			req := asUser(httptest.NewRequest(http.MethodDelete, "/api/shares?id=share-1", nil), 1)
			rec := httptest.NewRecorder()

			h.revokeShare(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// listOwnerShares
// ─────────────────────────────────────────────

func TestListOwnerShares_Success(t *testing.T) {
	shares := &mockShareService{
		listOwnerSharesFn: func(_ context.Context, ownerID int64) ([]models.ShareToken, error) {
			return []models.ShareToken{{ID: "share-1", OwnerID: ownerID}}, nil
		},
	}

	h := newHandlerWithShares(t, shares)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/shares?ownerId=1", nil), 1)
	rec := httptest.NewRecorder()

	h.listOwnerShares(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.OwnerSharesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 1)
	assert.Equal(t, "share-1", resp.Tokens[0].ID)
}

func TestListOwnerShares_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"missing ownerId", "/api/shares"},
		{"non-numeric ownerId", "/api/shares?ownerId=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithShares(t, &mockShareService{})
			req := asUser(httptest.NewRequest(http.MethodGet, tt.target, nil), 1)
			rec := httptest.NewRecorder()

			h.listOwnerShares(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListOwnerShares_OtherUser(t *testing.T) {
	h := newHandlerWithShares(t, &mockShareService{})
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/shares?ownerId=9", nil), 1)
	rec := httptest.NewRecorder()

	h.listOwnerShares(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// listReceivedShares
// ─────────────────────────────────────────────

func TestListReceivedShares_EmptyIsNotNull(t *testing.T) {
	shares := &mockShareService{
		listReceivedSharesFn: func(_ context.Context, _ int64) ([]models.ReceivedShare, error) {
			return nil, nil
		},
	}

	h := newHandlerWithShares(t, shares)
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/shares/received", nil), 2)
	rec := httptest.NewRecorder()

	h.listReceivedShares(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shares":[]`)
}

// ─────────────────────────────────────────────
// downloadSharedFile
// ─────────────────────────────────────────────

func TestDownloadSharedFile_Success(t *testing.T) {
	shares := &mockShareService{
		openSharedFileFn: func(_ context.Context, userID int64, shareID string) (io.ReadCloser, error) {
			assert.Equal(t, int64(2), userID)
			assert.Equal(t, "share-1", shareID)
			return io.NopCloser(strings.NewReader("ciphertext-bytes")), nil
		},
	}

	h := newHandlerWithShares(t, shares)
	req := httptest.NewRequest(http.MethodGet, "/api/shares/share-1/file", nil)
	req = withURLParam(asUser(req, 2), "id", "share-1")
	rec := httptest.NewRecorder()

	h.downloadSharedFile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, `attachment; filename="encrypted"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "ciphertext-bytes", rec.Body.String())
}

func TestDownloadSharedFile_NotFound(t *testing.T) {
	shares := &mockShareService{
		openSharedFileFn: func(_ context.Context, _ int64, _ string) (io.ReadCloser, error) {
			return nil, service.ErrNotFound
		},
	}

	h := newHandlerWithShares(t, shares)
	req := httptest.NewRequest(http.MethodGet, "/api/shares/ghost/file", nil)
	req = withURLParam(asUser(req, 2), "id", "ghost")
	rec := httptest.NewRecorder()

	h.downloadSharedFile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}

func TestDownloadSharedFile_Unauthenticated(t *testing.T) {
	h := newHandlerWithShares(t, &mockShareService{})
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/shares/share-1/file", nil), "id", "share-1")
	rec := httptest.NewRecorder()

	h.downloadSharedFile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
