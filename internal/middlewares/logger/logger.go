package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Log по умолчанию ничего не пишет, пока не вызван Initialize
var Log = zap.NewNop()

func Initialize(level string) error {
	cfg, err := newConfig(level)
	if err != nil {
		return err
	}
	return build(cfg)
}

// InitializeToFile нужен терминальному интерфейсу: вывод в stderr сломал бы экран
func InitializeToFile(level string, path string) error {
	cfg, err := newConfig(level)
	if err != nil {
		return err
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return build(cfg)
}

func newConfig(level string) (zap.Config, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.Config{}, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg, nil
}

func build(cfg zap.Config) error {
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	return nil
}

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

func RequestLogger(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		data := &responseData{status: http.StatusOK}
		lw := loggingResponseWriter{ResponseWriter: w, responseData: data}

		h.ServeHTTP(&lw, r)

		Log.Info("got incoming HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", data.status),
			zap.Int("size", data.size),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
