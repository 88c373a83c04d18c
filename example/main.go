package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	slogmulti "github.com/samber/slog-multi"

	"github.com/powerman/slogpattern"
)

func main() {
	text := slogpattern.NewPatternHandler(os.Stdout, &slogpattern.PatternHandlerOptions{
		Pattern: "%d{ABSOLUTE} %-5p [%t] %-12c{2} %x - %m %X{err.host}%n",
		Level:   slog.LevelDebug,
	})
	json := slogmulti.
		Pipe(slogpattern.NewDiagnosticMiddleware()).
		Handler(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(slog.New(slogmulti.Fanout(text, json)))

	log := slogpattern.NewLogger("example.auth", nil)
	ctx := slogpattern.ContextWithThreadName(context.Background(), "main")
	ctx = slogpattern.PushNDC(ctx, "req-42")

	log.Info(ctx, "User login attempt", "user", "alice")
	log.Named("db").Debug(ctx, "Query", "duration", 1230*time.Millisecond)
	log.Error(ctx, "Database connection failed",
		"err", slogpattern.NewError(errors.New("connection timeout"), "host", "db1"))
}
