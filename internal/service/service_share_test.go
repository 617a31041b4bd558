package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/mock"
	"github.com/docvault/go-doc-share/internal/store"
	"github.com/docvault/go-doc-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestShareSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	ShareService,
	*mock.MockShareTokenRepository,
	*mock.MockDocumentRepository,
	*mock.MockTrustedPersonRepository,
	*mock.MockBlobStore,
) {
	t.Helper()
	mockShares := mock.NewMockShareTokenRepository(ctrl)
	mockDocs := mock.NewMockDocumentRepository(ctrl)
	mockPersons := mock.NewMockTrustedPersonRepository(ctrl)
	mockBlobs := mock.NewMockBlobStore(ctrl)

	svc := NewShareService(mockShares, mockDocs, mockPersons, mockBlobs, logger.Nop())

	return svc, mockShares, mockDocs, mockPersons, mockBlobs
}

func linkedPerson(id string, ownerID, linkedUserID int64) models.TrustedPerson {
	return models.TrustedPerson{
		ID:               id,
		OwnerID:          ownerID,
		Name:             "Recipient",
		InvitationStatus: models.InvitationAccepted,
		Active:           true,
		LinkedUserID:     &linkedUserID,
	}
}

// acceptedMembership is a trusted person record that authorizes retrieval:
// linked to the caller with an accepted invitation.
func acceptedMembership(id string) models.TrustedPerson {
	return models.TrustedPerson{ID: id, InvitationStatus: models.InvitationAccepted}
}

// ── IssueShare ───────────────────────────────────────────────────────────────

func TestIssueShare_Success_DefaultsPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, mockDocs, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	req := models.ShareCreateRequest{
		DocumentID:      "doc-1",
		TrustedPersonID: "tp-1",
		WrappedDEKForTP: "wrapped-dek",
		// Permission intentionally empty.
	}

	gomock.InOrder(
		mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{ID: "doc-1", OwnerID: 1}, nil),
		mockPersons.EXPECT().GetOwned(ctx, "tp-1", int64(1)).Return(linkedPerson("tp-1", 1, 2), nil),
		mockShares.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, token models.ShareToken) (models.ShareToken, error) {
				assert.Equal(t, models.PermissionView, token.Permission, "omitted permission must default to view")
				assert.Nil(t, token.ExpiresAt)
				assert.Equal(t, "wrapped-dek", token.WrappedDEKForTP)
				token.ID = "share-1"
				return token, nil
			},
		),
	)

	token, err := svc.IssueShare(ctx, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "share-1", token.ID)
}

func TestIssueShare_ExpiresAtStoredVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, mockDocs, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	// An instant already in the past: stored as-is, producing a share that
	// is born expired.
	past := time.Now().Add(-time.Hour)
	req := models.ShareCreateRequest{
		DocumentID:      "doc-1",
		TrustedPersonID: "tp-1",
		WrappedDEKForTP: "wrapped-dek",
		Permission:      models.PermissionDownload,
		ExpiresAt:       &past,
	}

	mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{ID: "doc-1"}, nil)
	mockPersons.EXPECT().GetOwned(ctx, "tp-1", int64(1)).Return(linkedPerson("tp-1", 1, 2), nil)
	mockShares.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, token models.ShareToken) (models.ShareToken, error) {
			require.NotNil(t, token.ExpiresAt)
			assert.True(t, token.ExpiresAt.Equal(past), "expires_at must not be clamped or rejected")
			return token, nil
		},
	)

	_, err := svc.IssueShare(ctx, 1, req)
	require.NoError(t, err)
}

func TestIssueShare_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestShareSvc(t, ctrl)

	tests := []struct {
		name string
		req  models.ShareCreateRequest
	}{
		{"no document", models.ShareCreateRequest{TrustedPersonID: "tp-1", WrappedDEKForTP: "w"}},
		{"no trusted person", models.ShareCreateRequest{DocumentID: "doc-1", WrappedDEKForTP: "w"}},
		{"no wrapped dek", models.ShareCreateRequest{DocumentID: "doc-1", TrustedPersonID: "tp-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.IssueShare(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestIssueShare_DocumentNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDocs, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	// A document that exists but belongs to someone else surfaces exactly
	// like a missing one: both are a 403, never a 404.
	mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{}, store.ErrDocumentNotFound)

	_, err := svc.IssueShare(ctx, 1, models.ShareCreateRequest{
		DocumentID: "doc-1", TrustedPersonID: "tp-1", WrappedDEKForTP: "w",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestIssueShare_TrustedPersonNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDocs, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{ID: "doc-1"}, nil)
	mockPersons.EXPECT().GetOwned(ctx, "tp-1", int64(1)).Return(models.TrustedPerson{}, store.ErrTrustedPersonNotFound)

	_, err := svc.IssueShare(ctx, 1, models.ShareCreateRequest{
		DocumentID: "doc-1", TrustedPersonID: "tp-1", WrappedDEKForTP: "w",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestIssueShare_RecipientNotEligible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDocs, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	linked := int64(2)
	tests := []struct {
		name    string
		person  models.TrustedPerson
		wantErr error
	}{
		{
			"invitation pending",
			models.TrustedPerson{ID: "tp-1", InvitationStatus: "pending", Active: true, LinkedUserID: &linked},
			ErrForbidden,
		},
		{
			"inactive",
			models.TrustedPerson{ID: "tp-1", InvitationStatus: models.InvitationAccepted, Active: false, LinkedUserID: &linked},
			ErrForbidden,
		},
		{
			"not linked",
			models.TrustedPerson{ID: "tp-1", InvitationStatus: models.InvitationAccepted, Active: true, LinkedUserID: nil},
			ErrRecipientNotLinked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{ID: "doc-1"}, nil)
			mockPersons.EXPECT().GetOwned(ctx, "tp-1", int64(1)).Return(tt.person, nil)

			_, err := svc.IssueShare(ctx, 1, models.ShareCreateRequest{
				DocumentID: "doc-1", TrustedPersonID: "tp-1", WrappedDEKForTP: "w",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIssueShare_InvalidPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDocs, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockDocs.EXPECT().GetOwned(ctx, "doc-1", int64(1)).Return(models.Document{ID: "doc-1"}, nil)
	mockPersons.EXPECT().GetOwned(ctx, "tp-1", int64(1)).Return(linkedPerson("tp-1", 1, 2), nil)

	_, err := svc.IssueShare(ctx, 1, models.ShareCreateRequest{
		DocumentID: "doc-1", TrustedPersonID: "tp-1", WrappedDEKForTP: "w",
		Permission: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidPermission)
}

// ── RevokeShare ──────────────────────────────────────────────────────────────

func TestRevokeShare_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{ID: "share-1", OwnerID: 1}, nil)
	mockShares.EXPECT().Revoke(ctx, "share-1", int64(1), gomock.Any()).Return(int64(1), nil)

	err := svc.RevokeShare(ctx, 1, "share-1")
	require.NoError(t, err)
}

func TestRevokeShare_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestShareSvc(t, ctrl)

	err := svc.RevokeShare(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestRevokeShare_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{ID: "share-1", OwnerID: 9}, nil)

	err := svc.RevokeShare(ctx, 1, "share-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRevokeShare_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockShares.EXPECT().GetByID(ctx, "missing").Return(models.ShareToken{}, store.ErrShareNotFound)

	err := svc.RevokeShare(ctx, 1, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevokeShare_AlreadyRevokedIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	revokedAt := time.Now().Add(-time.Hour)
	mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
		ID: "share-1", OwnerID: 1, RevokedAt: &revokedAt,
	}, nil)
	// Zero affected rows: the WHERE revoked_at IS NULL guard kept the
	// original timestamp.
	mockShares.EXPECT().Revoke(ctx, "share-1", int64(1), gomock.Any()).Return(int64(0), nil)

	err := svc.RevokeShare(ctx, 1, "share-1")
	require.NoError(t, err)
}

// ── Listings ─────────────────────────────────────────────────────────────────

func TestListReceivedShares_NoMemberships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockPersons.EXPECT().ListLinkedTo(ctx, int64(5)).Return([]models.TrustedPerson{}, nil)

	shares, err := svc.ListReceivedShares(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, shares)
	assert.NotNil(t, shares, "empty membership is an empty listing, not an error")
}

func TestListReceivedShares_CollectsAllMemberships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockPersons.EXPECT().ListLinkedTo(ctx, int64(5)).Return([]models.TrustedPerson{
		{ID: "tp-1"}, {ID: "tp-2"},
	}, nil)
	mockShares.EXPECT().ListReceived(ctx, []string{"tp-1", "tp-2"}).
		Return([]models.ReceivedShare{{ShareToken: models.ShareToken{ID: "share-1"}}}, nil)

	shares, err := svc.ListReceivedShares(ctx, 5)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "share-1", shares[0].ID)
}

func TestListReceivedShares_KeepsRevokedAndExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	// The listing shows the grant history as addressed; only file retrieval
	// checks revocation and expiry.
	revoked := time.Now().Add(-time.Hour)
	expired := time.Now().Add(-time.Minute)
	mockPersons.EXPECT().ListLinkedTo(ctx, int64(5)).Return([]models.TrustedPerson{{ID: "tp-1"}}, nil)
	mockShares.EXPECT().ListReceived(ctx, []string{"tp-1"}).Return([]models.ReceivedShare{
		{ShareToken: models.ShareToken{ID: "share-1", RevokedAt: &revoked}},
		{ShareToken: models.ShareToken{ID: "share-2", ExpiresAt: &expired}},
	}, nil)

	shares, err := svc.ListReceivedShares(ctx, 5)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.NotNil(t, shares[0].RevokedAt)
	assert.NotNil(t, shares[1].ExpiresAt)
}

func TestListOwnerShares_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, _, _, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockShares.EXPECT().ListByOwner(ctx, int64(1)).Return([]models.ShareToken{{ID: "share-1"}}, nil)

	tokens, err := svc.ListOwnerShares(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
}

// ── OpenSharedFile ───────────────────────────────────────────────────────────

func TestOpenSharedFile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, mockDocs, mockPersons, mockBlobs := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil),
		mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
			ID: "share-1", DocumentID: "doc-1", TrustedPersonID: "tp-1",
		}, nil),
		mockDocs.EXPECT().GetByID(ctx, "doc-1").Return(models.Document{
			ID: "doc-1", FilePath: "owner-1/doc-1",
		}, nil),
		mockBlobs.EXPECT().Open(ctx, "owner-1/doc-1").
			Return(io.NopCloser(strings.NewReader("ciphertext")), nil),
	)

	rc, err := svc.OpenSharedFile(ctx, 2, "share-1")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", string(data))
}

func TestOpenSharedFile_NotFoundMatrix(t *testing.T) {
	// Every denial on the retrieval path must be indistinguishable from a
	// missing share.
	t.Run("no trusted person memberships", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return(nil, nil)

		_, err := svc.OpenSharedFile(ctx, 2, "share-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("share does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
		mockShares.EXPECT().GetByID(ctx, "ghost").Return(models.ShareToken{}, store.ErrShareNotFound)

		_, err := svc.OpenSharedFile(ctx, 2, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("share addressed to someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
		mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
			ID: "share-1", TrustedPersonID: "tp-other",
		}, nil)

		_, err := svc.OpenSharedFile(ctx, 2, "share-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("share revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		revoked := time.Now().Add(-time.Minute)
		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
		mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
			ID: "share-1", TrustedPersonID: "tp-1", RevokedAt: &revoked,
		}, nil)

		_, err := svc.OpenSharedFile(ctx, 2, "share-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("share expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockShares, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		expired := time.Now().Add(-time.Minute)
		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
		mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
			ID: "share-1", TrustedPersonID: "tp-1", ExpiresAt: &expired,
		}, nil)

		_, err := svc.OpenSharedFile(ctx, 2, "share-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("membership no longer accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, mockPersons, _ := newTestShareSvc(t, ctrl)
		ctx := context.Background()

		// Still linked, but the invitation is not in the accepted state.
		// The share repository must not even be consulted.
		mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{
			{ID: "tp-1", InvitationStatus: "pending"},
		}, nil)

		_, err := svc.OpenSharedFile(ctx, 2, "share-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty share id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, _, _ := newTestShareSvc(t, ctrl)

		_, err := svc.OpenSharedFile(context.Background(), 2, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOpenSharedFile_PermissionAgnostic(t *testing.T) {
	// Both permission levels retrieve the same ciphertext; the server does
	// not branch on the level.
	for _, permission := range []models.Permission{models.PermissionView, models.PermissionDownload} {
		t.Run(string(permission), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockShares, mockDocs, mockPersons, mockBlobs := newTestShareSvc(t, ctrl)
			ctx := context.Background()

			mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
			mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
				ID: "share-1", DocumentID: "doc-1", TrustedPersonID: "tp-1", Permission: permission,
			}, nil)
			mockDocs.EXPECT().GetByID(ctx, "doc-1").Return(models.Document{ID: "doc-1", FilePath: "p"}, nil)
			mockBlobs.EXPECT().Open(ctx, "p").Return(io.NopCloser(strings.NewReader("x")), nil)

			rc, err := svc.OpenSharedFile(ctx, 2, "share-1")
			require.NoError(t, err)
			rc.Close()
		})
	}
}

func TestOpenSharedFile_BlobMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockShares, mockDocs, mockPersons, mockBlobs := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return([]models.TrustedPerson{acceptedMembership("tp-1")}, nil)
	mockShares.EXPECT().GetByID(ctx, "share-1").Return(models.ShareToken{
		ID: "share-1", DocumentID: "doc-1", TrustedPersonID: "tp-1",
	}, nil)
	mockDocs.EXPECT().GetByID(ctx, "doc-1").Return(models.Document{ID: "doc-1", FilePath: "p"}, nil)
	mockBlobs.EXPECT().Open(ctx, "p").Return(nil, store.ErrBlobNotFound)

	_, err := svc.OpenSharedFile(ctx, 2, "share-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenSharedFile_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockPersons, _ := newTestShareSvc(t, ctrl)
	ctx := context.Background()

	mockPersons.EXPECT().ListLinkedTo(ctx, int64(2)).Return(nil, errors.New("db down"))

	_, err := svc.OpenSharedFile(ctx, 2, "share-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "infrastructure failures must not masquerade as 404")
}
