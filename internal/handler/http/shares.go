package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/utils"
	"github.com/docvault/go-doc-share/models"
)

func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ShareCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createShare").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.ShareService.IssueShare(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createShare").Msg("error issuing share")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ShareCreateResponse{ID: token.ID}, http.StatusOK)
}

func (h *Handler) revokeShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shareID := r.URL.Query().Get("id")

	if err := h.services.ShareService.RevokeShare(ctx, userID, shareID); err != nil {
		log.Err(err).Str("func", "*Handler.revokeShare").Str("share_id", shareID).Msg("error revoking share")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listOwnerShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ownerIDParam := r.URL.Query().Get("ownerId")
	if ownerIDParam == "" {
		http.Error(w, "ownerId query parameter is required", http.StatusBadRequest)
		return
	}

	ownerID, err := strconv.ParseInt(ownerIDParam, 10, 64)
	if err != nil {
		http.Error(w, "ownerId must be an integer", http.StatusBadRequest)
		return
	}

	// Owners can only list their own grants.
	if ownerID != userID {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	tokens, err := h.services.ShareService.ListOwnerShares(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOwnerShares").Msg("error listing owner shares")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if tokens == nil {
		tokens = []models.ShareToken{}
	}

	utils.WriteJSON(w, models.OwnerSharesResponse{Tokens: tokens}, http.StatusOK)
}

func (h *Handler) listReceivedShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shares, err := h.services.ShareService.ListReceivedShares(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReceivedShares").Msg("error listing received shares")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if shares == nil {
		shares = []models.ReceivedShare{}
	}

	utils.WriteJSON(w, models.ReceivedSharesResponse{Shares: shares}, http.StatusOK)
}

func (h *Handler) downloadSharedFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	shareID := chi.URLParam(r, "id")

	blob, err := h.services.ShareService.OpenSharedFile(ctx, userID, shareID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadSharedFile").Str("share_id", shareID).Msg("shared file open refused")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}
	defer blob.Close()

	// The payload is ciphertext; intermediaries must not keep a copy, and a
	// later revocation must not be serviced from a cache.
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Disposition", `attachment; filename="encrypted"`)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob); err != nil {
		log.Err(err).Str("func", "*Handler.downloadSharedFile").Str("share_id", shareID).Msg("error streaming shared file")
	}
}
