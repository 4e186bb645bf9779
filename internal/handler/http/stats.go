package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-sync/models"
)

func (h *Handler) passStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DataService.PassStats(r.Context(), passParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := models.PassStatsResponse{
		Pass:        stats.Pass,
		DomainCount: len(stats.Domains),
		TotalSize:   stats.TotalSize,
		Domains:     make([]models.DomainStats, 0, len(stats.Domains)),
	}
	if stats.LastActivity != nil {
		resp.LastActivity = &models.ServerTime{Time: *stats.LastActivity}
	}
	for _, d := range stats.Domains {
		resp.Domains = append(resp.Domains, models.DomainStats{
			Domain:       d.Domain,
			VersionCount: d.VersionCount,
			Size:         d.Size,
			LastModified: models.ServerTime{Time: d.LastModified},
		})
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) serverStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.DataService.ServerStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.ServerStatsResponse{
		TotalPasses:          stats.TotalPasses,
		TotalDomains:         stats.TotalDomains,
		TotalSizeBytes:       stats.TotalSize,
		MaxDataSize:          stats.MaxDataSize,
		MaxVersionsPerDomain: stats.MaxVersions,
	})
}
