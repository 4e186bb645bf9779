package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-sync/internal/service"
	"github.com/MKhiriev/go-pass-sync/models"
)

// withProtocolCheck answers 426 to clients announcing a protocol version
// outside the supported range. Requests without the header pass.
func (h *Handler) withProtocolCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Header.Get(models.ProtocolHeader)
		if v != "" && !h.services.AppInfoService.AcceptsClient(v) {
			clients := h.services.AppInfoService.Health(r.Context()).Clients
			h.writeError(w, r, fmt.Errorf("%w: %s, server accepts %s", service.ErrClientNotSupported, v, clients))
			return
		}
		next.ServeHTTP(w, r)
	})
}
