package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/markup/pkg/cache"
	"github.com/vango-dev/markup/pkg/loader"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/tag"
)

// entrySep separates the content type from the markup in a cache entry.
const entrySep = "\x00"

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	key := cache.Key(name, r.URL.Query())

	if body, ct, ok := s.cached(r.Context(), key); ok {
		w.Header().Set("X-Cache", "hit")
		writeMarkup(w, ct, body)
		return
	}

	body, ct, err := s.renderDoc(r, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.store(r.Context(), key, ct, body)
	w.Header().Set("X-Cache", "miss")
	writeMarkup(w, ct, body)
}

// renderDoc builds and renders one description inside a render span.
func (s *Server) renderDoc(r *http.Request, name string) (body, contentType string, err error) {
	ctx, span := s.tracer.Start(r.Context(), "render "+name)
	defer span.End()
	span.SetAttributes(attribute.String("markup.document", name))

	root, err := loader.Open(s.docs(), name, RequestContext(r.WithContext(ctx)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", "", err
	}
	body, err = s.renderer.RenderToString(root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", "", err
	}

	s.metrics.RecordRender(len(body))
	span.SetAttributes(attribute.Int("markup.bytes", len(body)))
	return body, loader.ContentType(root), nil
}

func (s *Server) cached(ctx context.Context, key string) (body, contentType string, ok bool) {
	if s.cache == nil || s.config.CacheTTL < 0 {
		return "", "", false
	}
	v, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get failed", "key", key, "error", err)
		return "", "", false
	}
	s.metrics.RecordCache(hit)
	if !hit {
		return "", "", false
	}
	contentType, body, ok = strings.Cut(v, entrySep)
	return body, contentType, ok
}

func (s *Server) store(ctx context.Context, key, contentType, body string) {
	if s.cache == nil || s.config.CacheTTL < 0 {
		return
	}
	if err := s.cache.Set(ctx, key, contentType+entrySep+body, s.config.CacheTTL); err != nil {
		s.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

func writeMarkup(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write([]byte(body))
}

// handleIndex lists the documents as links. The page is streamed so the
// doctype reaches the client before the list is built out.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := loader.List(s.docs())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx := RequestContext(r)
	list := tag.NewNode(ctx, "ul")
	list.ClassAppend("documents")
	for _, name := range names {
		a := list.Li().A()
		a.SetHref("/docs/" + name)
		a.AppendText(name)
	}
	if len(names) == 0 {
		list.Li().AppendText("No documents.")
	}

	page := render.NewPage(ctx, render.PageData{
		Title: "Documents",
		Body:  list,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.NewStreamingRenderer(w, s.config.Render).Render(page); err != nil {
		s.logger.Error("index render failed", "error", err)
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// handleHealth reports unhealthy when the cache backend cannot be reached.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if p, ok := s.cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			s.logger.Warn("health check failed", "error", err)
			http.Error(w, "cache unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
