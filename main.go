package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/controller"
	"github.com/debemdeboas/postboard/internal/db"
	"github.com/debemdeboas/postboard/internal/logger"
	"github.com/debemdeboas/postboard/internal/render"
	"github.com/debemdeboas/postboard/internal/repository"
	"github.com/debemdeboas/postboard/internal/service"
	"github.com/debemdeboas/postboard/internal/web"
)

const (
	defaultConfigPath = "config.yaml"
	configPathEnv     = "POSTBOARD_CONFIG"
	shutdownTimeout   = 5 * time.Second
)

// configPath resolves the config file from the -config flag, then the
// environment, then the default.
func configPath(args []string, getenv func(string) string) (string, error) {
	fallback := defaultConfigPath
	if env := getenv(configPathEnv); env != "" {
		fallback = env
	}

	flags := flag.NewFlagSet("postboard", flag.ContinueOnError)
	path := flags.String("config", fallback, "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

func setLoggers(l zerolog.Logger) {
	config.SetLogger(l)
	db.SetLogger(l)
	repository.SetLogger(l)
	service.SetLogger(l)
	controller.SetLogger(l)
	render.SetLogger(l)
	web.SetLogger(l)
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	path, err := configPath(os.Args[1:], os.Getenv)
	if err != nil {
		os.Exit(2)
	}

	if err := config.LoadConfig(path); err != nil {
		fmt.Fprintf(os.Stderr, config.ErrLoadConfigFmt+"\n", err)
		os.Exit(1)
	}
	cfg := config.Current()

	log := logger.New(cfg.Logging.Level)
	setLoggers(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeService, err := service.Open(ctx, cfg.Service.Backend, cfg.Service.Compression)
	if err != nil {
		log.Fatal().Err(err).Msgf(config.ErrOpenServiceFmt, cfg.Service.Backend)
	}
	defer closeService()

	srv, err := web.NewServer(svc)
	if err != nil {
		log.Fatal().Err(err).Msg(config.ErrParseTemplates)
	}

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg(config.ErrListenAndServe)
	}

	log.Info().
		Str("addr", httpServer.Addr).
		Str("backend", cfg.Service.Backend).
		Str("renderer", cfg.Render.Markdown).
		Msg("Starting server")

	if err := serve(ctx, httpServer, ln, log, srv.Close); err != nil {
		log.Fatal().Err(err).Msg(config.ErrListenAndServe)
	}
}

// serve runs httpServer on ln until ctx is done. It returns only after
// Shutdown has drained in-flight requests, so the service can be closed
// behind it.
func serve(ctx context.Context, httpServer *http.Server, ln net.Listener, log zerolog.Logger, closeStreams func()) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		closeStreams()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	if err := httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
