// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// outcome classifies a handler result so the HTTP status code is derived
// from the result kind rather than from matching sentinel strings in the
// response detail.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeValidation
	outcomeNotFound
	outcomeConflict
	outcomeInternal
)

// statusCode maps an outcome kind to its HTTP status code. The mapping is
// total: an unknown kind is reported as an internal error.
func (o outcome) statusCode() int {
	switch o {
	case outcomeSuccess:
		return http.StatusOK
	case outcomeValidation:
		return http.StatusBadRequest
	case outcomeNotFound:
		return http.StatusNotFound
	case outcomeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

const statusPage = `<!DOCTYPE html>
<html>
    <h1> %s </h1>
    <p> %s </p>
</html>
`

// wantsJSON reports whether the client asked for a JSON body. The check is a
// substring match on the Accept header; any other value selects HTML.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "json")
}

// renderStatus writes a status envelope in the client's negotiated format.
// The JSON shape is {"status_msg": ..., "error": ...} with error set to null
// when detail is empty; the HTML shape embeds the same two strings as a
// heading and a paragraph.
func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, kind outcome, statusMsg string, detail string) {
	statusCode := kind.statusCode()

	if wantsJSON(r) {
		response := models.StatusResponse{StatusMsg: statusMsg}
		if detail != "" {
			response.Error = &detail
		}

		if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.renderStatus").Msg("error writing JSON response")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, statusPage, statusMsg, detail)
}

// renderRow writes a single user row as a JSON User object or as an HTML
// column dump, depending on the Accept header.
func (h *Handler) renderRow(w http.ResponseWriter, r *http.Request, row store.Row) {
	if wantsJSON(r) {
		if _, err := utils.WriteJSON(w, userFromRow(row), http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.renderRow").Msg("error writing JSON response")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, statusPage, dumpRow(row), "")
}

// renderRows writes every row as a JSON array of User objects or as an HTML
// column dump with rows separated by an extra line break.
func (h *Handler) renderRows(w http.ResponseWriter, r *http.Request, rows []store.Row) {
	if wantsJSON(r) {
		users := make([]models.User, 0, len(rows))
		for _, row := range rows {
			users = append(users, userFromRow(row))
		}

		if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.renderRows").Msg("error writing JSON response")
		}
		return
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(dumpRow(row))
		sb.WriteString("<br>")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, statusPage, sb.String(), "")
}

// userFromRow projects a generic row onto the User model by column name.
func userFromRow(row store.Row) models.User {
	return models.User{
		Nome:  row.Get("nome"),
		Login: row.Get("login"),
		Senha: row.Get("senha"),
	}
}

// dumpRow lists every column name/value pair of the row in its native
// column order, one pair per line break.
func dumpRow(row store.Row) string {
	var sb strings.Builder
	for _, column := range row.Columns {
		sb.WriteString(column)
		sb.WriteString(": ")
		sb.WriteString(row.Get(column))
		sb.WriteString("<br>")
	}
	return sb.String()
}
