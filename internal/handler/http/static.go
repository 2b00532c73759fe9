package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

const rootPage = `<!DOCTYPE html>
<html>
    <h1> Hello, World! </h1>
</html>
`

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(rootPage))
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if wantsJSON(r) {
		if _, err := utils.WriteJSON(w, map[string]string{"hello": name}, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.hello").Msg("error writing JSON response")
		}
		return
	}

	name = utils.SanitizeQuotes(name)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, statusPage, "Hello, "+name, "")
}
