package http

import (
	"net/http"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.services.AppInfoService.Health(r.Context()))
}
