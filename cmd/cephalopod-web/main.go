package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpadapter "svw.info/cephalopod/internal/adapters/http"
	"svw.info/cephalopod/internal/breakdown"
	"svw.info/cephalopod/internal/config"
	"svw.info/cephalopod/internal/domain"
	"svw.info/cephalopod/internal/engine"
	"svw.info/cephalopod/internal/game"
	"svw.info/cephalopod/internal/generator"
	"svw.info/cephalopod/internal/infrastructure/storage"
	"svw.info/cephalopod/internal/logging"
	"svw.info/cephalopod/internal/usecase"
	"svw.info/cephalopod/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			logger.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"reqID", middleware.GetReqID(r.Context()),
				"dur", time.Since(start).Round(time.Millisecond),
			)
		})
	}
}

// ensurePersistPath creates dir, warning when it cannot. The server still
// starts; only saves will fail.
func ensurePersistPath(logger *slog.Logger, dir string) bool {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("persist path not writable; saves will fail", "path", dir, "err", err)
		return false
	}
	return true
}

func main() {
	cfgPath := flag.String("config", "", "optional YAML settings file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	persist := flag.String("persist-path", "", "save directory (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	engineKind := flag.String("engine", "", "engine to use: memo|parallel|nocache (overrides config)")
	flag.Parse()

	settings, err := config.LoadSettings(*cfgPath)
	if err != nil {
		slog.Error("settings", "err", err)
		os.Exit(2)
	}
	if *addr != "" {
		settings.Server.Addr = *addr
	}
	if *persist != "" {
		settings.Server.PersistPath = *persist
	}
	if *levelStr != "" {
		settings.LogLevel = *levelStr
	}
	if *engineKind != "" {
		settings.Engine = domain.EngineKind(*engineKind)
	}

	logger := logging.New(os.Stdout, settings.LogLevel)
	ensurePersistPath(logger, settings.Server.PersistPath)

	e, err := engine.New(settings.Engine, settings.Workers)
	if err != nil {
		logger.Error("engine", "err", err)
		os.Exit(2)
	}

	// Wire providers → use cases → HTTP adapter
	table := game.NewCombinationTable()
	uc := usecase.NewService(
		e,
		generator.NewRandom(),
		validator.New(),
		breakdown.NewFirstMoves(table),
		storage.NewFS(settings.Server.PersistPath),
	)
	h := httpadapter.New(uc, settings.Engine)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	h.Register(r)

	srv := &http.Server{
		Addr:              settings.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", settings.Server.Addr, "persist", settings.Server.PersistPath, "engine", settings.Engine)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
