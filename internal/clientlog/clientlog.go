// internal/clientlog/clientlog.go
//
// Re-emits log lines forwarded by the browser client.
// The client wraps console.log/warn/error and POSTs each call as
//
//	{"level":"log","messages":[...],"timestamp":"2024-05-01T10:00:00.000Z"}
//
// Messages are arbitrary JSON values; strings are kept as-is, everything
// else is rendered as compact JSON.

package clientlog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// MaxBody caps a single forwarded entry.
const MaxBody = 64 << 10

// Entry is one forwarded console call.
type Entry struct {
	Level     string            `json:"level"`
	Messages  []json.RawMessage `json:"messages"`
	Timestamp string            `json:"timestamp"`
}

// Level maps a console method name onto a zerolog level.
func Level(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "error":
		return zerolog.ErrorLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "debug", "trace":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Text joins the messages with spaces, like console.log does.
func (e Entry) Text() string {
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		var s string
		if err := json.Unmarshal(m, &s); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, string(m))
	}
	return strings.Join(parts, " ")
}

// Write emits e on logger.
func Write(logger zerolog.Logger, e Entry) {
	logger.WithLevel(Level(e.Level)).
		Str("source", "client").
		Str("clientLevel", strings.ToUpper(e.Level)).
		Str("clientTime", e.Timestamp).
		Msg(e.Text())
}

var errNoLevel = errors.New("missing level")

// Handler accepts forwarded entries on POST and answers "Log received".
func Handler(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e Entry
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBody))
		err := dec.Decode(&e)
		if err == nil && e.Level == "" {
			err = errNoLevel
		}
		if err != nil {
			http.Error(w, `{"error":"bad_log"}`, http.StatusBadRequest)
			return
		}
		Write(logger, e)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Log received"))
	}
}
