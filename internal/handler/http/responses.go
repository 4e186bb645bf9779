package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/render"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// writeError answers with {"error": msg}, picking the status from err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	msg := messageFromError(err, status)
	if errors.Is(err, service.ErrDataTooLarge) {
		msg = fmt.Sprintf("Data too large. Max size: %d bytes", h.limits.MaxDataSize)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, r, status, models.ErrorResponse{Error: msg})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
}

// dataResponse carries the stored payload as a JSON string.
func dataResponse(entry models.DataEntry) (models.DataResponse, error) {
	raw, err := json.Marshal(entry.Data)
	if err != nil {
		return models.DataResponse{}, err
	}
	return models.DataResponse{
		ID:        entry.PublicID(),
		Data:      raw,
		Timestamp: models.ServerTime{Time: entry.CreatedAt},
	}, nil
}
