package http

import (
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/render"
)

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}

	token, err := h.services.AdminService.Login(r.Context(), clientIP(r), req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := models.AdminLoginResponse{Token: token.SignedString}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) adminListPasses(w http.ResponseWriter, r *http.Request) {
	passes, err := h.services.AdminService.ListPasses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if passes == nil {
		passes = []models.PassSummary{}
	}

	writeJSON(w, r, http.StatusOK, models.AdminPassesResponse{Passes: passes, Total: len(passes)})
}

func (h *Handler) adminDeletePass(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.AdminService.DeletePass(r.Context(), passParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.AdminDeletePassResponse{Success: true, DeletedEntries: deleted})
}

// clientIP expects RemoteAddr already rewritten by middleware.RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
