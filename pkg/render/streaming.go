package render

import (
	"io"
	"net/http"

	"github.com/vango-dev/markup/pkg/tag"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes after the declaration line and again after the document.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to
// an http.ResponseWriter. If the writer implements http.Flusher,
// content is flushed as it is produced.
func NewStreamingRenderer(w http.ResponseWriter, config Config) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: New(config),
		flusher:  flusher,
		w:        w,
	}
}

// Render writes e and flushes.
func (s *StreamingRenderer) Render(e tag.Element) error {
	fw := &flushingWriter{w: s.w, flush: s.flush}
	if err := s.RenderToWriter(fw, e); err != nil {
		return err
	}
	s.flush()
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// flushingWriter flushes once, after the first newline has been written.
// For document roots that is the end of the declaration line.
type flushingWriter struct {
	w       io.Writer
	flush   func()
	flushed bool
}

func (f *flushingWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if err == nil && !f.flushed && len(p) > 0 && p[len(p)-1] == '\n' {
		f.flushed = true
		f.flush()
	}
	return n, err
}
