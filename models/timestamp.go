package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// sqliteLayout is how SQLite renders CURRENT_TIMESTAMP (always UTC).
const sqliteLayout = "2006-01-02 15:04:05"

// ServerTime decodes the timestamps servers send: RFC 3339 (with or without
// fractional seconds and zone) or the SQLite "YYYY-MM-DD HH:MM:SS" form.
// It encodes as RFC 3339 UTC.
type ServerTime struct {
	time.Time
}

// ParseServerTime parses any of the accepted layouts. Values without a zone
// are taken as UTC.
func ParseServerTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		sqliteLayout,
		"2006-01-02 15:04:05.999999999",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (t *ServerTime) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case float64:
		// epoch milliseconds, as JavaScript clients send them
		t.Time = time.UnixMilli(int64(v)).UTC()
		return nil
	case string:
		if v == "" {
			t.Time = time.Time{}
			return nil
		}
		parsed, err := ParseServerTime(v)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	default:
		return fmt.Errorf("unsupported timestamp %s", string(b))
	}
}

func (t ServerTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
