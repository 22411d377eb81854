// Package logging provides the slog handler shared by the agent and arena
// binaries: one JSON object per record, optionally indented for interactive
// runs.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Handler emits one JSON object per log record. With Pretty set the objects
// are indented for reading in a terminal; otherwise they are single-line for
// ingestion. Not tuned for high throughput.
type Handler struct {
	w      io.Writer
	mu     *sync.Mutex
	level  slog.Leveler
	pretty bool

	attrs  []slog.Attr
	groups []string
}

// Options configures a Handler.
type Options struct {
	Level  slog.Leveler
	Pretty bool
}

func NewHandler(w io.Writer, opts Options) *Handler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{w: w, mu: &sync.Mutex{}, level: level, pretty: opts.Pretty}
}

// Setup installs a Handler on stderr as the slog default and returns it.
func Setup(verbose, pretty bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(NewHandler(os.Stderr, Options{Level: level, Pretty: pretty}))
	slog.SetDefault(log)
	return log
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	payload := make(map[string]any, 4+r.NumAttrs())

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	payload["time"] = when.Format(time.RFC3339Nano)
	payload["level"] = r.Level.String()
	payload["msg"] = r.Message

	for _, a := range h.attrs {
		h.put(payload, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.put(payload, a)
		return true
	})

	var (
		b   []byte
		err error
	)
	if h.pretty {
		b, err = json.MarshalIndent(payload, "", "  ")
	} else {
		b, err = json.Marshal(payload)
	}
	if err != nil {
		// Never drop a record outright; fall back to the bare message.
		b, _ = json.Marshal(map[string]string{"msg": r.Message, "logerr": err.Error()})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(append(b, '\n'))
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

// put resolves the attr and stores it under the handler's open groups.
func (h *Handler) put(root map[string]any, a slog.Attr) {
	dst := root
	for _, g := range h.groups {
		m, ok := dst[g].(map[string]any)
		if !ok {
			m = map[string]any{}
			dst[g] = m
		}
		dst = m
	}
	putAttr(dst, a)
}

func putAttr(dst map[string]any, a slog.Attr) {
	if a.Key == "" {
		return
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		child := map[string]any{}
		for _, ga := range v.Group() {
			putAttr(child, ga)
		}
		dst[a.Key] = child
		return
	}
	dst[a.Key] = flatten(v)
}

func flatten(v slog.Value) any {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindAny:
		return v.Any()
	default:
		return v.String()
	}
}
