// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/utils"
	"github.com/MKhiriev/notes-board/models"
)

func (h *Handler) appendNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uid, ok := utils.GetUIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.appendNote").Msg("no uid in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.NewNoteRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.appendNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.FindAccount(ctx, uid)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendNote").Str("uid", uid).Msg("token account not found")
		writeError(w, err)
		return
	}

	note, err := h.services.NoteService.AppendNote(ctx, account, req.Text)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendNote").Msg("error appending note")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
