// Package middleware provides HTTP middleware for the markup server.
//
// This package includes:
//   - OpenTelemetry tracing middleware
//   - Prometheus metrics middleware and render counters
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts a server span per request, named after the chi route
// pattern, and records the response status:
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("docs"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it in
// main() before starting the server:
//
//	otel.SetTracerProvider(tp)
//
// # Prometheus Metrics
//
// NewMetrics registers the collectors and returns a value whose Handler
// method is the request middleware. The Record methods are called by the
// render path:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("site"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected (namespace "markup" by default):
//   - markup_requests_total: requests by route and status code
//   - markup_request_duration_seconds: request latency by route
//   - markup_rendered_bytes: size of rendered documents
//   - markup_render_errors_total: failed renders by error code
//   - markup_cache_requests_total: cache lookups by result
//   - markup_preview_connections: open live preview connections
package middleware
