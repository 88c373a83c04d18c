package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/powerman/slogpattern"
)

type renderer struct {
	pattern   string
	opts      slogpattern.LayoutOptions
	layout    *slogpattern.Layout // Created by the first record.
	loggerKey string
	minLevel  slog.Level
	log       *slogpattern.Logger
}

// layoutFor returns the layout, creating it on the first call
// with %r measured from the time ts of the first record.
func (r *renderer) layoutFor(ts time.Time) *slogpattern.Layout {
	if r.layout == nil {
		opts := r.opts
		opts.StartTime = ts
		r.layout = slogpattern.NewLayout(r.pattern, &opts)
	}
	return r.layout
}

func (r *renderer) render(ctx context.Context, w io.Writer, in io.Reader) error {
	br := bufio.NewReader(in)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if err := r.renderLine(ctx, w, line, lineNo); err != nil {
				return err
			}
		}
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (r *renderer) renderLine(ctx context.Context, w io.Writer, line []byte, lineNo int) error {
	rec, err := parseRecord(bytes.TrimRight(line, "\r\n"), r.loggerKey)
	if err != nil {
		r.log.Debug(ctx, fmt.Sprintf("line %d: %s, output as is", lineNo, err))
		if line[len(line)-1] != '\n' {
			line = append(line, '\n')
		}
		_, err = w.Write(line)
		return err
	}
	if rec.hasLevel && rec.level < r.minLevel {
		return nil
	}
	return r.layoutFor(rec.entry.Time).FormatTo(w, rec.entry)
}
