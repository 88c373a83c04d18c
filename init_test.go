package slogpattern_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/powerman/slogpattern"
)

var testTime = time.Date(2024, time.March, 5, 7, 8, 9, 123456789, time.UTC)

func testEntry() slogpattern.Entry {
	return slogpattern.Entry{
		Logger:  "org.example.Service",
		Level:   "INFO",
		Message: "hello",
		Time:    testTime,
		Thread:  "main",
		Caller: &slog.Source{
			Function: "org/example.(*Service).Run",
			File:     "/src/example/service.go",
			Line:     42,
		},
		Stack:  []string{"req-1", "user-2"},
		Mapped: map[string]string{"user": "alice"},
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// lines returns output split into lines without line separators.
func (b *syncBuffer) lines() []string {
	s := strings.TrimSuffix(b.String(), slogpattern.LineSeparator)
	if s == "" {
		return nil
	}
	return strings.Split(s, slogpattern.LineSeparator)
}
