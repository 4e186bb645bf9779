package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/utils"
)

// adminAuth admits requests carrying a valid admin bearer token.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(header)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		token, err := h.services.AdminService.ParseToken(r.Context(), tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Str("subject", token.Subject).Msg("admin authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithAdminSubject(r.Context(), token.Subject)))
	})
}
