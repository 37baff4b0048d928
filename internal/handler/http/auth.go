package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/utils"
	"github.com/MKhiriev/notes-board/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	identity, err := h.services.AuthService.SignUp(ctx, credentials)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("sign up failed")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, identity, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("uid", account.UID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, account.Identity(), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// logout has nothing to revoke: tokens are stateless and the client drops
// its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
