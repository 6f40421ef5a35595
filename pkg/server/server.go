// Package server exposes the widget over HTTP so a display can be previewed
// in a browser or polled by a dashboard.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/unrolled/logger"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/widget"
)

// ConfigSource returns the configuration document for the next run
type ConfigSource func() (string, error)

// Info is the widget identity served on /info
type Info struct {
	Name               string `json:"name"`
	Version            string `json:"version"`
	UpdateCycleSeconds uint32 `json:"update_cycle_seconds"`
}

type Server struct {
	widget *widget.Widget
	source ConfigSource
	logger *slog.Logger
	router *mux.Router
}

// New wires the routes. Access logs go to accessLog.
func New(w *widget.Widget, source ConfigSource, log *slog.Logger, accessLog io.Writer) *Server {
	s := &Server{
		widget: w,
		source: source,
		logger: log,
		router: mux.NewRouter(),
	}

	l := logger.New(logger.Options{Out: accessLog, Prefix: "ptwidget"})
	s.router.Use(l.Handler)

	s.router.HandleFunc("/", s.handleRun).Methods(http.MethodGet)
	s.router.HandleFunc("/schema", s.handleSchema).Methods(http.MethodGet)
	s.router.HandleFunc("/info", s.handleInfo).Methods(http.MethodGet)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.source()
	if err != nil {
		s.logger.Error("loading config failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	text, err := s.widget.Run(r.Context(), cfg)
	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Refresh", fmt.Sprint(s.widget.RunUpdateCycleSeconds()))
	io.WriteString(w, text)
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	io.WriteString(w, s.widget.ConfigSchema())
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Info{
		Name:               s.widget.Name(),
		Version:            s.widget.Version(),
		UpdateCycleSeconds: s.widget.RunUpdateCycleSeconds(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response failed", "error", err)
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	s.logger.Info("serving widget preview", "addr", addr)
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("initiating graceful shutdown of server")
		ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutDown); err != nil {
			s.logger.Error("error during graceful shutdown", "error", err)
		}
		return nil
	}
}
