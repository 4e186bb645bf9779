package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/chi/v5"
)

// createPass ignores the request body; older clients post {"domain": ...}.
func (h *Handler) createPass(w http.ResponseWriter, r *http.Request) {
	stored, err := h.services.PassService.CreatePass(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.metrics.passesCreated.Inc()
	writeJSON(w, r, http.StatusCreated, models.CreatePassResponse{
		Pass:      stored.Pass,
		CreatedAt: models.ServerTime{Time: stored.CreatedAt},
	})
}

// checkPass answers 200 even for unknown passes, as clients expect.
func (h *Handler) checkPass(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.PassService.CheckPass(r.Context(), passParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !info.Exists {
		writeJSON(w, r, http.StatusOK, models.CheckPassResponse{Exists: false})
		return
	}

	writeJSON(w, r, http.StatusOK, models.CheckPassResponse{
		Exists:    true,
		CreatedAt: &models.ServerTime{Time: info.Pass.CreatedAt},
		Domains:   info.Domains,
	})
}

func passParam(r *http.Request) models.Pass {
	return models.Pass(chi.URLParam(r, "pass"))
}
