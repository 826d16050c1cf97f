package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/cache"
	"github.com/vango-dev/markup/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr, docs string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of descriptions",
		Long: `Serve rendered documents over HTTP.

Each description <docs>/<name>.yaml is served at /docs/<name>. Query
parameters fill nodes marked fromContext. /preview accepts descriptions
over a websocket and answers with the rendered markup.

Examples:
  markup serve
  markup serve --addr :3000 --docs ./site`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if docs != "" {
				a.cfg.Server.Docs = docs
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, closeCache, err := a.newServer(ctx)
			if err != nil {
				return err
			}
			defer closeCache()

			success(cmd.OutOrStdout(), "Serving %s on %s", a.cfg.Server.Docs, a.cfg.Server.Addr)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from markup.yaml)")
	cmd.Flags().StringVarP(&docs, "docs", "d", "", "Descriptions directory (default from markup.yaml)")

	return cmd
}

// newServer wires the cache, metrics registry and server from the config.
func (a *app) newServer(ctx context.Context) (*server.Server, func(), error) {
	info, err := os.Stat(a.cfg.Server.Docs)
	if err != nil || !info.IsDir() {
		return nil, nil, errors.New("E030").
			WithDetailf("server.docs %q is not a directory", a.cfg.Server.Docs)
	}

	var (
		c         cache.Cache = cache.NewMemory()
		closeFunc             = func() {}
	)
	if url := a.cfg.Server.RedisURL; url != "" {
		rc, err := cache.NewRedis(url)
		if err != nil {
			return nil, nil, errors.New("E030").WithDetail("server.redisURL").Wrap(err)
		}
		if err := rc.Ping(ctx); err != nil {
			a.logger.Warn("redis unreachable, requests will render uncached", "error", err)
		}
		c = rc
		closeFunc = func() { _ = rc.Close() }
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(server.Config{
		Addr:     a.cfg.Server.Addr,
		Docs:     os.DirFS(a.cfg.Server.Docs),
		CacheTTL: a.cfg.Server.CacheTTL,
		Render:   a.renderConfig(),
	},
		server.WithLogger(a.logger),
		server.WithCache(c),
		server.WithPrometheus(reg),
	)
	return srv, closeFunc, nil
}
