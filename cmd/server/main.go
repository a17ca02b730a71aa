// Command server exposes error injection as a JSON REST API.
//
// Endpoints:
//
//	POST /api/inject    body: {"sentence":"the DT dog NN","source":"NN","target":"NNS"}
//	GET  /api/inflect?word=<word>&from=<tag>&to=<tag>
//	GET  /api/tagsets
//	GET  /metrics
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/cours-de-latin/generrate"
	"github.com/cours-de-latin/generrate/internal/app"
	"github.com/cours-de-latin/generrate/internal/config"
	"github.com/cours-de-latin/generrate/internal/corpus"
)

func newHandler(inj *generrate.Injector, cfg config.CORSConfig, reg *prometheus.Registry, logger *slog.Logger) http.Handler {
	metrics := corpus.NewMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/inject", handleInject(inj, metrics))
	mux.HandleFunc("/api/inflect", handleInflect(inj))
	mux.HandleFunc("/api/tagsets", handleTagSets())
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: cfg.Methods(),
		AllowedHeaders: cfg.Headers(),
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         cfg.MaxAge,
	})
	return c.Handler(withRequestID(logger, mux))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inj, err := app.BuildInjector(ctx, cfg.Lexicon, cfg.Redis, logger)
	if err != nil {
		logger.Error("load lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("injector ready",
		slog.String("tag_set", inj.TagSet().Name),
		slog.Int("dictionary", inj.DictionarySize()),
		slog.Int("vocabulary", inj.VocabularySize()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(inj, cfg.CORS, reg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info("listening", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
