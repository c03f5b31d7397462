// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging level control and a level-colored
// [slog.Handler] for command line tools and services built on shade.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// this program. Anything at this level or above will be logged.
// It defaults based on build tags: [slog.LevelDebug] with the debug
// tag, [slog.LevelWarn] with the release tag, and [slog.LevelInfo]
// otherwise. It should typically be set by a verbosity flag.
var UserLevel = defaultUserLevel

// Handler is a [slog.Handler] that writes human-readable records with
// the level tag colored by severity when the terminal supports it.
type Handler struct {
	mu  *sync.Mutex // shared by all handlers derived from one writer
	w   io.Writer
	out *termenv.Output

	// preformatted is the already-formatted attrs from WithAttrs,
	// each qualified with the group prefix in effect when added.
	preformatted string

	// prefix is the group prefix applied to attrs added after the
	// most recent WithGroup.
	prefix string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, out: termenv.NewOutput(w)}
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// writing to [os.Stderr], honoring [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(h.levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(b, " %s%s=%v", h.prefix, a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{mu: h.mu, w: h.w, out: h.out, preformatted: h.preformatted, prefix: h.prefix}
	b := &strings.Builder{}
	b.WriteString(h.preformatted)
	for _, a := range attrs {
		fmt.Fprintf(b, " %s%s=%v", h.prefix, a.Key, a.Value)
	}
	nh.preformatted = b.String()
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{mu: h.mu, w: h.w, out: h.out, preformatted: h.preformatted, prefix: h.prefix + name + "."}
}

// levelTag returns the level string colored by severity: errors red,
// warnings yellow, info blue, debug faint.
func (h *Handler) levelTag(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
