// Package server provides the HTTP host for the routing shell: an http.Server
// wrapper with graceful shutdown, env-driven configuration, and
// production-ready default timeouts. It serves plain HTTP; TLS termination
// belongs to the deployment edge (reverse proxy or load balancer).
//
// # Key Features
//
//   - Graceful shutdown with configurable timeout
//   - Thread-safe lifecycle (Start/Stop/Run)
//   - Structured logging integration
//   - Production-ready default timeouts
//   - Configuration via functional options or env-tagged Config
//
// # Basic Usage
//
// Create and run a server with default configuration:
//
//	import (
//		"context"
//
//		"github.com/junctionio/junction/core/router"
//		"github.com/junctionio/junction/core/server"
//	)
//
//	func main() {
//		r := router.New[*router.Context]()
//		r.Get("/", homeHandler)
//
//		ctx := context.Background()
//		if err := server.Run(ctx, ":8080", r); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Server Configuration
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(60*time.Second),
//		server.WithLogger(log),
//	)
//
// Or from environment variables via the config package:
//
//	type AppConfig struct {
//		Server server.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//
// # Coordinated Lifecycle
//
// Run returns an errgroup-compatible closure that starts the server and shuts
// it down gracefully when the context is canceled:
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, r))
//	if err := eg.Wait(); err != nil {
//		log.Fatal(err)
//	}
package server
