// Package server serves rendered documents over HTTP.
//
// Descriptions are read from an fs.FS (usually a directory of YAML files),
// built into trees with the request's form values as the tag context and
// rendered on demand:
//
//	srv := server.New(server.Config{
//	    Addr: ":8080",
//	    Docs: os.DirFS("docs"),
//	}, server.WithCache(cache.NewMemory()))
//	err := srv.Run(ctx)
//
// Routes:
//
//	GET /              index of the available documents
//	GET /docs/{name}   rendered document
//	GET /preview       websocket live preview
//	GET /metrics       Prometheus metrics
//	GET /healthz       liveness, including the cache backend
//
// The live preview reads one description per text message and answers with
// a JSON PreviewReply.
package server
