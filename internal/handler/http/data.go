// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// uploadEnvelope accepts "data" as a JSON string or as an inline value.
type uploadEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.DataService.Latest(r.Context(), passParam(r), r.URL.Query().Get("domain"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry)
}

func (h *Handler) uploadData(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		h.writeError(w, r, service.ErrMissingDomain)
		return
	}

	data, err := h.decodeUpload(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	saved, err := h.services.DataService.Upload(r.Context(), models.DataEntry{
		Pass:   passParam(r),
		Domain: domain,
		Data:   data,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.metrics.uploadedBytes.Observe(float64(saved.Size))
	writeJSON(w, r, http.StatusCreated, models.UploadDataResponse{
		Success:   true,
		ID:        saved.PublicID(),
		Timestamp: models.ServerTime{Time: saved.CreatedAt},
	})
}

// decodeUpload reads the body, bounded well above the payload limit so that
// oversized payloads are reported as such rather than as broken JSON.
func (h *Handler) decodeUpload(w http.ResponseWriter, r *http.Request) (string, error) {
	if h.limits.MaxDataSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, 2*h.limits.MaxDataSize+4096)
	}

	var body uploadEnvelope
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return "", service.ErrDataTooLarge
		case errors.Is(err, io.EOF):
			return "", service.ErrMissingData
		default:
			return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
	}

	if len(body.Data) == 0 || string(body.Data) == "null" {
		return "", service.ErrMissingData
	}

	var s string
	if err := json.Unmarshal(body.Data, &s); err == nil {
		return s, nil
	}
	return string(body.Data), nil
}

func (h *Handler) deleteData(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	deleted, err := h.services.DataService.Delete(r.Context(), passParam(r), query.Get("domain"), query.Get("version_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.DeleteDataResponse{Success: true, DeletedCount: deleted})
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	// a malformed limit falls back to the default
	limit, _ := strconv.Atoi(query.Get("limit"))

	entries, err := h.services.DataService.ListVersions(r.Context(), passParam(r), query.Get("domain"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	versions := make([]models.RemoteVersion, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, models.RemoteVersion{
			ID:        e.PublicID(),
			Timestamp: models.ServerTime{Time: e.CreatedAt},
			Size:      int(e.Size),
		})
	}

	writeJSON(w, r, http.StatusOK, models.VersionsResponse{Versions: versions})
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.DataService.GetVersion(r.Context(), passParam(r), r.URL.Query().Get("domain"), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEntry(w, r, entry)
}

func (h *Handler) writeEntry(w http.ResponseWriter, r *http.Request, entry models.DataEntry) {
	resp, err := dataResponse(entry)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}
