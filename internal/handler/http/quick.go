package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-sync/internal/logger"
	"github.com/MKhiriev/go-pass-sync/internal/store"
	"github.com/MKhiriev/go-pass-sync/models"
)

const (
	quickFormatJSON = "json"
	quickFormatHTML = "html"

	quickEncryptedMessage = "Data is encrypted. Provide a valid key to decrypt."
)

var quickPage = template.Must(template.New("quick").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Domain}}</title></head>
<body>
<h1>{{.Domain}}</h1>
<p>Updated {{.Timestamp}}</p>
{{if .Decrypted}}<pre>{{.Data}}</pre>{{else}}<p>{{.Message}}</p><pre>{{.Data}}</pre>{{end}}
</body>
</html>
`))

type quickPageData struct {
	Domain    string
	Timestamp string
	Decrypted bool
	Message   string
	Data      string
}

// quickAccess returns the newest payload of a domain, optionally decrypted
// with the key passed in the query.
func (h *Handler) quickAccess(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	format := strings.ToLower(query.Get("format"))
	if format == "" {
		format = quickFormatJSON
	}

	qa, err := h.services.DataService.QuickAccess(r.Context(), passParam(r), query.Get("domain"), query.Get("key"))
	if format == quickFormatHTML {
		h.quickAccessHTML(w, r, qa, err)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := models.QuickAccessResponse{
		Success:   true,
		Domain:    qa.Entry.Domain,
		Pass:      qa.Entry.Pass,
		Timestamp: models.ServerTime{Time: qa.Entry.CreatedAt},
		Decrypted: qa.Decrypted,
	}
	if qa.Decrypted {
		resp.Data = qa.Data
	} else {
		resp.EncryptedData = qa.Entry.Data
		resp.Message = quickEncryptedMessage
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) quickAccessHTML(w http.ResponseWriter, r *http.Request, qa models.QuickAccess, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		status := statusFromError(err)
		w.WriteHeader(status)
		if errors.Is(err, store.ErrDataNotFound) {
			_, _ = w.Write([]byte("<h1>No data found</h1>"))
			return
		}
		_, _ = w.Write([]byte("<h1>" + template.HTMLEscapeString(messageFromError(err, status)) + "</h1>"))
		return
	}

	page := quickPageData{
		Domain:    qa.Entry.Domain,
		Timestamp: qa.Entry.CreatedAt.UTC().Format(time.RFC3339),
		Decrypted: qa.Decrypted,
		Data:      qa.Entry.Data,
	}
	if qa.Decrypted {
		var pretty bytes.Buffer
		if json.Indent(&pretty, qa.Data, "", "  ") == nil {
			page.Data = pretty.String()
		} else {
			page.Data = string(qa.Data)
		}
	} else {
		page.Message = quickEncryptedMessage
	}

	var buf bytes.Buffer
	if err = quickPage.Execute(&buf, page); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to render quick access page")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
