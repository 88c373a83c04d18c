package slogpattern_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"testing/slogtest"

	"github.com/powerman/check"
	slogmulti "github.com/samber/slog-multi"

	"github.com/powerman/slogpattern"
)

func removeTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

func parseJSONLines(t *check.C, buf *bytes.Buffer) func() []map[string]any {
	t.Helper()
	return func() []map[string]any {
		var ms []map[string]any
		for line := range bytes.SplitSeq(buf.Bytes(), []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			var m map[string]any
			t.Nil(json.Unmarshal(line, &m))
			ms = append(ms, m)
		}
		return ms
	}
}

func TestDiagnosticHandler(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	var buf bytes.Buffer
	h := slogpattern.NewDiagnosticHandler(slog.NewJSONHandler(&buf, nil))
	t.Nil(slogtest.TestHandler(h, parseJSONLines(t, &buf)))
}

func TestDiagnosticHandler_Attrs(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slogmulti.
		Pipe(slogpattern.NewDiagnosticMiddleware()).
		Handler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: removeTime})))

	ctx := context.Background()
	log.InfoContext(ctx, "plain")

	ctx = slogpattern.PushNDC(ctx, "req-1")
	ctx = slogpattern.PushNDC(ctx, "user-2")
	ctx = slogpattern.ContextWithThreadName(ctx, "worker")
	ctx = slogpattern.ContextWithMDC(ctx, "user", "alice", slog.Int("id", 7))
	log.InfoContext(ctx, "diag", "a", 1)
	log.WithGroup("g").InfoContext(ctx, "grouped")

	t.Equal(buf.String(), strings.Join([]string{
		`{"level":"INFO","msg":"plain"}`,
		`{"level":"INFO","msg":"diag","a":1,"ndc":"req-1 user-2","thread":"worker","user":"alice","id":7}`,
		`{"level":"INFO","msg":"grouped","g":{"ndc":"req-1 user-2","thread":"worker","user":"alice","id":7}}`,
		``,
	}, "\n"))
}

func TestDiagnosticHandler_Fanout(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	var text, jsonBuf bytes.Buffer
	log := slog.New(slogmulti.Fanout(
		slogpattern.NewPatternHandler(&text, &slogpattern.PatternHandlerOptions{
			Pattern: "%x %X{user}: %m\n",
		}),
		slogpattern.NewDiagnosticHandler(slog.NewJSONHandler(&jsonBuf, &slog.HandlerOptions{ReplaceAttr: removeTime})),
	))

	ctx := slogpattern.ContextWithMDC(slogpattern.PushNDC(context.Background(), "req-1"), "user", "alice")
	log.InfoContext(ctx, "both")

	t.Equal(text.String(), "req-1 alice: both\n")
	t.Equal(jsonBuf.String(), `{"level":"INFO","msg":"both","ndc":"req-1","user":"alice"}`+"\n")
}

func TestDiagnosticHandler_Enabled(tt *testing.T) {
	t := check.T(tt)
	t.Parallel()

	next := slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := slogpattern.NewDiagnosticHandler(next)
	t.False(h.Enabled(context.Background(), slog.LevelInfo))
	t.True(h.Enabled(context.Background(), slog.LevelWarn))
}
