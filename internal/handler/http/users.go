package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-chi/chi/v5"
)

const errMsgBodyShape = "expected json with fields 'nome', 'login' and 'senha' with a string value"

// userRequest mirrors the user JSON body with pointer fields so a missing or
// non-string field is detectable after decoding.
type userRequest struct {
	Nome  *string `json:"nome"`
	Login *string `json:"login"`
	Senha *string `json:"senha"`
}

// decodeUser parses the request body and checks that all three fields are
// present string values.
func decodeUser(r *http.Request) (models.User, bool) {
	var body userRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return models.User{}, false
	}
	if body.Nome == nil || body.Login == nil || body.Senha == nil {
		return models.User{}, false
	}

	return models.User{Nome: *body.Nome, Login: *body.Login, Senha: *body.Senha}, true
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	login := chi.URLParam(r, "login")

	row, err := h.services.UserService.GetUser(r.Context(), login)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			h.renderStatus(w, r, outcomeNotFound, "user not found", "")
		default:
			log.Err(err).Str("func", "*Handler.getUser").Msg("error fetching user")
			h.renderStatus(w, r, outcomeInternal, "could not retrieve user from database", "internal server error")
		}
		return
	}

	h.renderRow(w, r, row)
}

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rows, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			h.renderStatus(w, r, outcomeNotFound, "user not found", "")
		default:
			log.Err(err).Str("func", "*Handler.getAllUsers").Msg("error fetching users")
			h.renderStatus(w, r, outcomeInternal, "could not retrieve users from database", "internal server error")
		}
		return
	}

	h.renderRows(w, r, rows)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := decodeUser(r)
	if !ok {
		h.renderStatus(w, r, outcomeValidation, "could not create user", errMsgBodyShape)
		return
	}

	err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldTooLong):
			h.renderStatus(w, r, outcomeValidation, "could not create user", err.Error())
		case errors.Is(err, store.ErrLoginAlreadyExists):
			h.renderStatus(w, r, outcomeConflict, "could not create user", "login already in use, please try a different one")
		default:
			log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
			h.renderStatus(w, r, outcomeInternal, "could not create user", "internal server error")
		}
		return
	}

	h.renderStatus(w, r, outcomeSuccess, "user created successfully", "")
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	login := chi.URLParam(r, "login")

	user, ok := decodeUser(r)
	if !ok {
		h.renderStatus(w, r, outcomeValidation, "could not update user", errMsgBodyShape)
		return
	}

	err := h.services.UserService.UpdateUser(r.Context(), login, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldTooLong):
			h.renderStatus(w, r, outcomeValidation, "could not update user", err.Error())
		case errors.Is(err, store.ErrUserNotFound):
			h.renderStatus(w, r, outcomeNotFound, "could not update user", "user not found")
		case errors.Is(err, store.ErrLoginAlreadyExists):
			h.renderStatus(w, r, outcomeConflict, "could not update user", "login already in use, please try a different one")
		default:
			log.Err(err).Str("func", "*Handler.updateUser").Msg("error updating user")
			h.renderStatus(w, r, outcomeInternal, "could not update user", "internal server error")
		}
		return
	}

	h.renderStatus(w, r, outcomeSuccess, "user updated successfully", "")
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	login := chi.URLParam(r, "login")

	err := h.services.UserService.DeleteUser(r.Context(), login)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			h.renderStatus(w, r, outcomeNotFound, "could not delete user", "user not found")
		default:
			log.Err(err).Str("func", "*Handler.deleteUser").Msg("error deleting user")
			h.renderStatus(w, r, outcomeInternal, "could not delete user", "internal server error")
		}
		return
	}

	h.renderStatus(w, r, outcomeSuccess, "user deleted successfully", "")
}
