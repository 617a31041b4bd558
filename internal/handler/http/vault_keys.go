package http

import (
	"encoding/json"
	"net/http"

	"github.com/docvault/go-doc-share/internal/logger"
	"github.com/docvault/go-doc-share/internal/utils"
	"github.com/docvault/go-doc-share/models"
)

func (h *Handler) saveVaultKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var material models.VaultKeyMaterial
	if err := json.NewDecoder(r.Body).Decode(&material); err != nil {
		log.Err(err).Str("func", "*Handler.saveVaultKeys").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.VaultKeyService.SaveVaultKeys(ctx, userID, material); err != nil {
		log.Err(err).Str("func", "*Handler.saveVaultKeys").Msg("error saving vault key material")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getVaultKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	material, exists, err := h.services.VaultKeyService.GetVaultKeys(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVaultKeys").Msg("error loading vault key material")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultKeysResponse{Exists: exists, VaultKeyMaterial: material}, http.StatusOK)
}
