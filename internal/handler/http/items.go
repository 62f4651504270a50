// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-zk-vault/internal/app"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var fields models.VaultItemFields
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&fields); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createItem").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	item, err := h.services.VaultItemService.CreateItem(r.Context(), models.VaultItem{
		UserID:          userID,
		VaultItemFields: fields,
	})
	if err != nil {
		writeError(w, r, err, "error creating vault item")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.services.VaultItemService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error listing vault items")
		return
	}
	if items == nil {
		items = []models.VaultItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	item, err := h.services.VaultItemService.GetItem(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, r, err, "error getting vault item")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// updateItem applies a partial update; absent fields are left as stored.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	var update models.VaultItemUpdate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateItem").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	update.UserID = userID
	update.ItemID = itemID

	item, err := h.services.VaultItemService.UpdateItem(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "error updating vault item")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.VaultItemService.DeleteItem(r.Context(), userID, itemID); err != nil {
		writeError(w, r, err, "error deleting vault item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID <= 0 {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func itemIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || itemID <= 0 {
		http.Error(w, app.MsgInvalidItemID, http.StatusBadRequest)
		return 0, false
	}
	return itemID, true
}
