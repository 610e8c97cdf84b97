package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "svw.info/kiltergen/internal/adapters/http"
	"svw.info/kiltergen/internal/board"
	"svw.info/kiltergen/internal/config"
	"svw.info/kiltergen/internal/generator"
	"svw.info/kiltergen/internal/infrastructure/layout"
	"svw.info/kiltergen/internal/infrastructure/storage"
	"svw.info/kiltergen/internal/scorer"
	"svw.info/kiltergen/internal/usecase"
	"svw.info/kiltergen/internal/validator"
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
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	cfgPath := flag.String("config", "kiltergen.yaml", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	layoutPath := flag.String("layout", "", "board layout file (overrides config)")
	persist := flag.String("persist-path", "", "save directory (overrides config)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *layoutPath != "" {
		cfg.LayoutPath = *layoutPath
	}
	if *persist != "" {
		cfg.PersistDir = *persist
	}
	_ = os.MkdirAll(cfg.PersistDir, 0o755)

	holds, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		logger.Error("layout", "err", err)
		os.Exit(1)
	}
	holdSet := board.New(holds)

	// Wire providers → use cases → HTTP adapter
	g := generator.New(holdSet)
	d := scorer.NewDifficulty(holdSet)
	f := scorer.NewFlow()
	v := validator.New(holdSet)
	st := storage.NewFS(cfg.PersistDir)
	uc := usecase.NewService(g, d, f, v, st)
	h := httpadapter.New(uc, cfg.Params)

	r := chi.NewRouter()
	h.Register(r)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "layout", cfg.LayoutPath, "holds", holdSet.Len(), "persist", cfg.PersistDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
