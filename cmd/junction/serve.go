package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/health"
	"github.com/junctionio/junction/core/logger"
	"github.com/junctionio/junction/core/response"
	"github.com/junctionio/junction/core/router"
	"github.com/junctionio/junction/core/server"
	"github.com/junctionio/junction/core/static"
	"github.com/junctionio/junction/hooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Bind the configured static directory and serve it until interrupted.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default: :8080, env: JUNCTION_SERVER_ADDR)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := slog.Default()

	r, err := buildRouter(log)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	// CORS runs at the host edge, outside the route table.
	var h http.Handler = r
	if viper.GetBool("cors.enabled") {
		h = cors.Handler(cors.Options{
			AllowedOrigins:   viper.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:   viper.GetStringSlice("cors.allowed_methods"),
			AllowedHeaders:   viper.GetStringSlice("cors.allowed_headers"),
			ExposedHeaders:   viper.GetStringSlice("cors.exposed_headers"),
			AllowCredentials: viper.GetBool("cors.allow_credentials"),
			MaxAge:           viper.GetInt("cors.max_age"),
		})(h)
	}

	srv, err := server.NewFromConfig(serverConfig(), server.WithLogger(log))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, h))

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("server stopped", logger.Component("server"))
	return nil
}

func buildRouter(log *slog.Logger) (router.Router[*router.Context], error) {
	r := router.New[*router.Context](router.WithLogger[*router.Context](log))

	r.Use(hooks.Join(
		hooks.RequestID[*router.Context](),
		hooks.ClientIP[*router.Context](),
		hooks.LoggingWithConfig[*router.Context](hooks.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/healthz"
			},
		}),
	))

	r.Get("/healthz", health.Liveness[*router.Context])
	r.Get("/version", func(ctx *router.Context) (*handler.Payload, error) {
		return response.JSON(map[string]string{"version": version})
	})

	dir := viper.GetString("static.dir")
	prefix := viper.GetString("static.prefix")
	if dir != "" {
		if err := static.Bind(r, dir, prefix, static.WithLogger(log)); err != nil {
			return nil, fmt.Errorf("bind static directory %s: %w", dir, err)
		}
		log.Info("static directory bound",
			logger.Component("static"),
			slog.String("dir", dir),
			slog.String("prefix", prefix),
			slog.Int("routes", len(r.Routes())))
	}

	return r, nil
}
