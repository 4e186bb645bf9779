package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/dustin/go-humanize"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  " + helpStyle.Render("q: выход"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

// lastSync renders "2 minutes ago (server)" or "никогда".
func lastSync(cfg models.DomainConfig, now time.Time) string {
	if cfg.LastSyncTime == nil {
		return "никогда"
	}
	out := humanize.RelTime(*cfg.LastSyncTime, now, "ago", "from now")
	if cfg.LastSyncSource != "" {
		out += " (" + string(cfg.LastSyncSource) + ")"
	}
	return out
}

func checkbox(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func resultText(res models.SyncResult) string {
	switch {
	case res.Success:
		return okStyle.Render(res.Domain + ": " + string(res.Action) + " (" + res.Reason + ")")
	case res.Skipped:
		return res.Domain + ": пропущено, " + res.Reason
	case res.Error != "":
		return errorStyle.Render(res.Domain + ": " + res.Error)
	default:
		return res.Domain + ": " + res.Reason
	}
}

func sizeText(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
