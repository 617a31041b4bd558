package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/store"
	"github.com/docvault/go-doc-share/models"
)

// shareService is the concrete implementation of [ShareService]. It holds
// the full authorization logic for the sharing protocol; repositories below
// it only answer who-owns-what, and handlers above it only translate errors
// to status codes.
type shareService struct {
	shareRepository   store.ShareTokenRepository
	documentRepo      store.DocumentRepository
	trustedPersonRepo store.TrustedPersonRepository
	blobStore         store.BlobStore

	logger *logger.Logger
}

// NewShareService constructs a [ShareService] over the given repositories
// and blob store.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewShareService(
	shareRepository store.ShareTokenRepository,
	documentRepo store.DocumentRepository,
	trustedPersonRepo store.TrustedPersonRepository,
	blobStore store.BlobStore,
	logger *logger.Logger,
) ShareService {
	return &shareService{
		shareRepository:   shareRepository,
		documentRepo:      documentRepo,
		trustedPersonRepo: trustedPersonRepo,
		blobStore:         blobStore,
		logger:            logger,
	}
}

// IssueShare grants a trusted person access to one document.
//
// The validation sequence runs strictly in order:
//  1. the document must exist and belong to ownerID (else ErrForbidden; a
//     missing document and someone else's document are indistinguishable to
//     the caller),
//  2. the trusted person must exist and belong to ownerID (else ErrForbidden),
//  3. the recipient must have accepted the invitation and still be active
//     (else ErrForbidden) and be linked to a registered account
//     (else ErrRecipientNotLinked),
//  4. the permission defaults to "view" when omitted and must otherwise be a
//     known level (else ErrInvalidPermission).
//
// ExpiresAt is stored verbatim; an instant already in the past produces a
// share that is born expired, which the retrieval path treats like any other
// expired share.
//
// Sharing the same document with the same person again replaces the previous
// grant, including a revoked one: the upsert clears revoked_at.
func (s *shareService) IssueShare(ctx context.Context, ownerID int64, req models.ShareCreateRequest) (models.ShareToken, error) {
	log := logger.FromContext(ctx)

	if req.DocumentID == "" || req.TrustedPersonID == "" || req.WrappedDEKForTP == "" {
		log.Error().Int64("owner_id", ownerID).Msg("invalid share request data")
		return models.ShareToken{}, ErrInvalidDataProvided
	}

	if _, err := s.documentRepo.GetOwned(ctx, req.DocumentID, ownerID); err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.ShareToken{}, ErrForbidden
		}
		log.Err(err).Int64("owner_id", ownerID).Str("document_id", req.DocumentID).Msg("document lookup failed")
		return models.ShareToken{}, fmt.Errorf("document lookup failed: %w", err)
	}

	person, err := s.trustedPersonRepo.GetOwned(ctx, req.TrustedPersonID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrTrustedPersonNotFound) {
			return models.ShareToken{}, ErrForbidden
		}
		log.Err(err).Int64("owner_id", ownerID).Str("trusted_person_id", req.TrustedPersonID).Msg("trusted person lookup failed")
		return models.ShareToken{}, fmt.Errorf("trusted person lookup failed: %w", err)
	}

	if person.InvitationStatus != models.InvitationAccepted || !person.Active {
		log.Warn().
			Int64("owner_id", ownerID).
			Str("trusted_person_id", person.ID).
			Str("invitation_status", person.InvitationStatus).
			Bool("is_active", person.Active).
			Msg("share refused: recipient not eligible")
		return models.ShareToken{}, ErrForbidden
	}

	if !person.Linked() {
		log.Warn().
			Int64("owner_id", ownerID).
			Str("trusted_person_id", person.ID).
			Msg("share refused: recipient has no linked account")
		return models.ShareToken{}, ErrRecipientNotLinked
	}

	permission := req.Permission
	if permission == "" {
		permission = models.PermissionView
	}
	if !permission.Valid() {
		return models.ShareToken{}, ErrInvalidPermission
	}

	token, err := s.shareRepository.Upsert(ctx, models.ShareToken{
		DocumentID:      req.DocumentID,
		OwnerID:         ownerID,
		TrustedPersonID: req.TrustedPersonID,
		WrappedDEKForTP: req.WrappedDEKForTP,
		Permission:      permission,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		log.Err(err).
			Int64("owner_id", ownerID).
			Str("document_id", req.DocumentID).
			Str("trusted_person_id", req.TrustedPersonID).
			Msg("share upsert failed")
		return models.ShareToken{}, fmt.Errorf("share upsert failed: %w", err)
	}

	return token, nil
}

// RevokeShare stamps revoked_at on the share identified by shareID.
//
// Only the issuing owner may revoke: a caller that is party to the share as
// recipient still gets ErrForbidden. Revoking an already revoked share is a
// no-op success, and the original revocation timestamp stays in place.
func (s *shareService) RevokeShare(ctx context.Context, callerID int64, shareID string) error {
	log := logger.FromContext(ctx)

	if shareID == "" {
		return ErrMissingID
	}

	token, err := s.shareRepository.GetByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("share_id", shareID).Msg("share lookup failed")
		return fmt.Errorf("share lookup failed: %w", err)
	}

	if token.OwnerID != callerID {
		log.Warn().
			Int64("caller_id", callerID).
			Int64("owner_id", token.OwnerID).
			Str("share_id", shareID).
			Msg("revoke refused: caller is not the issuing owner")
		return ErrForbidden
	}

	affected, err := s.shareRepository.Revoke(ctx, shareID, callerID, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("share_id", shareID).Msg("share revocation failed")
		return fmt.Errorf("share revocation failed: %w", err)
	}

	// Zero affected rows means the token was revoked between the read above
	// and this write. The caller's goal is met either way.
	if affected == 0 {
		log.Debug().Str("share_id", shareID).Msg("share was already revoked")
	}

	return nil
}

// ListOwnerShares returns every share issued by ownerID, including revoked
// and expired ones: the owner's view is an audit trail.
func (s *shareService) ListOwnerShares(ctx context.Context, ownerID int64) ([]models.ShareToken, error) {
	log := logger.FromContext(ctx)

	tokens, err := s.shareRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("owner share listing failed")
		return nil, fmt.Errorf("owner share listing failed: %w", err)
	}

	return tokens, nil
}

// ListReceivedShares returns every share addressed to any trusted person
// record linked to userID, including revoked and expired ones; lifecycle
// state is enforced at file retrieval, not in the listing. A user that
// appears in nobody's directory gets an empty listing, not an error.
func (s *shareService) ListReceivedShares(ctx context.Context, userID int64) ([]models.ReceivedShare, error) {
	log := logger.FromContext(ctx)

	persons, err := s.trustedPersonRepo.ListLinkedTo(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("linked trusted persons lookup failed")
		return nil, fmt.Errorf("linked trusted persons lookup failed: %w", err)
	}

	if len(persons) == 0 {
		return []models.ReceivedShare{}, nil
	}

	ids := make([]string, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}

	shares, err := s.shareRepository.ListReceived(ctx, ids)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("received share listing failed")
		return nil, fmt.Errorf("received share listing failed: %w", err)
	}

	return shares, nil
}

// OpenSharedFile authorizes the caller against the share and streams the
// stored ciphertext.
//
// Every failure on this path collapses to ErrNotFound: a caller probing
// share identifiers cannot distinguish a share that never existed from one
// that exists but is revoked, expired, or addressed to someone else.
//
// The revocation state is read fresh from the database on every call. The
// permission level is deliberately not consulted here: both levels require
// the same ciphertext, and enforcement of view-only behavior happens in the
// recipient's client.
func (s *shareService) OpenSharedFile(ctx context.Context, userID int64, shareID string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	if shareID == "" {
		return nil, ErrNotFound
	}

	persons, err := s.trustedPersonRepo.ListLinkedTo(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("linked trusted persons lookup failed")
		return nil, fmt.Errorf("linked trusted persons lookup failed: %w", err)
	}

	// Only memberships with an accepted invitation authorize retrieval. A
	// record that is still linked but no longer accepted stays visible in
	// listings yet cannot open files.
	accepted := make([]models.TrustedPerson, 0, len(persons))
	for _, p := range persons {
		if p.InvitationStatus == models.InvitationAccepted {
			accepted = append(accepted, p)
		}
	}
	if len(accepted) == 0 {
		return nil, ErrNotFound
	}

	token, err := s.shareRepository.GetByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, store.ErrShareNotFound) {
			return nil, ErrNotFound
		}
		log.Err(err).Str("share_id", shareID).Msg("share lookup failed")
		return nil, fmt.Errorf("share lookup failed: %w", err)
	}

	addressedToCaller := false
	for _, p := range accepted {
		if p.ID == token.TrustedPersonID {
			addressedToCaller = true
			break
		}
	}
	if !addressedToCaller {
		return nil, ErrNotFound
	}

	if !token.Active(time.Now().UTC()) {
		return nil, ErrNotFound
	}

	doc, err := s.documentRepo.GetByID(ctx, token.DocumentID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, ErrNotFound
		}
		log.Err(err).Str("document_id", token.DocumentID).Msg("document lookup failed")
		return nil, fmt.Errorf("document lookup failed: %w", err)
	}

	blob, err := s.blobStore.Open(ctx, doc.FilePath)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return nil, ErrNotFound
		}
		log.Err(err).Str("document_id", doc.ID).Msg("blob open failed")
		return nil, fmt.Errorf("blob open failed: %w", err)
	}

	return blob, nil
}
