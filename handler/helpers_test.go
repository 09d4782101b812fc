package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jse-go/restkit/pkg/logger"
	"github.com/jse-go/restkit/pkg/requestid"
)

// logSink collects JSON log lines; safe for concurrent writers.
type logSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(s.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func (s *logSink) level(t *testing.T, level string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, rec := range s.records(t) {
		if rec["level"] == level {
			out = append(out, rec)
		}
	}
	return out
}

func newTestLogger() (*slog.Logger, *logSink) {
	sink := &logSink{}
	log := logger.New(
		logger.WithOutput(sink),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	return log, sink
}

// jsonField returns the raw JSON of one top-level field.
func jsonField(t *testing.T, body []byte, name string) string {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, ok := fields[name]
	require.True(t, ok, "missing field %q", name)
	return string(raw)
}

// jsonString decodes one top-level string field.
func jsonString(t *testing.T, body []byte, name string) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal([]byte(jsonField(t, body, name)), &s))
	return s
}
