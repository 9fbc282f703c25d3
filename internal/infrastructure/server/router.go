package server

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

const (
	corsMaxAge = 300
	healthPath = "/health"
)

// NewRouter builds the chi router with CORS, request ids, access logging and panic recovery.
func NewRouter(settings entities.ServerSettings, controllers []entities.Controller) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		AccessLog,
		RecoverJSON,
		chicors.Handler(chicors.Options{
			AllowedOrigins: settings.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			MaxAge:         corsMaxAge,
		}),
	)

	// mounted as a route so it answers even when no controller is registered
	mux.Method(http.MethodGet, healthPath, chimw.Heartbeat(healthPath)(http.NotFoundHandler()))
	mux.Method(http.MethodHead, healthPath, chimw.Heartbeat(healthPath)(http.NotFoundHandler()))

	for _, controller := range controllers {
		bind := controller.GetBind()
		mux.MethodFunc(bind.Method, bind.Path, controller.Execute)
		logger.Debugf("Mounted %s %s", bind.Method, bind.Path)
	}

	return mux
}

// AccessLog logs one line per request through logrus.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.WithFields(logger.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
		}).Info("request served")
	})
}

// RecoverJSON converts panics into the same JSON 500 every other failure gets.
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel compared as chi does
					panic(v)
				}
				logger.Errorf("panic recovered: %v\n%s", v, debug.Stack())

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Erro interno do servidor."})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
