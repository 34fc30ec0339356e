// SPDX-License-Identifier: MIT

// Package server exposes the planner over HTTP/JSON.
//
//	GET /healthz                  liveness
//	GET /api/locations            locations in registration order
//	GET /api/route?from=A&to=B    shortest route
//	GET /api/status               network summary
//	GET /api/network.hcl          active network as an HCL document
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/katalvlaran/pathfinder/internal/logging"
	"github.com/katalvlaran/pathfinder/internal/planner"
	"github.com/katalvlaran/pathfinder/network"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to a planner.
type Server struct {
	router  *mux.Router
	planner *planner.Planner
	logger  *slog.Logger
}

// New wires the routes. logger receives one line per request.
func New(p *planner.Planner, logger *slog.Logger) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		planner: p,
		logger:  logger,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)
	api.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)
	api.HandleFunc("/stops", s.handleStops).Methods(http.MethodGet)
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/network.hcl", s.handleNetworkHCL).Methods(http.MethodGet)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	}
}

type locationResponse struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type hopResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Km   float64 `json:"km"`
}

type routeResponse struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Found    bool          `json:"found"`
	Distance *float64      `json:"distance"`
	Path     []string      `json:"path"`
	Hops     []hopResponse `json:"hops"`
}

type stopsResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Stops []string `json:"stops"`
	Hops  int      `json:"hops"`
}

type statusResponse struct {
	Network   string    `json:"network"`
	Locations int       `json:"locations"`
	Roads     int       `json:"roads"`
	TotalKm   float64   `json:"total_km"`
	Connected bool      `json:"connected"`
	Frontier  string    `json:"frontier"`
	LoadedAt  time.Time `json:"loaded_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locs := s.planner.Locations()
	out := make([]locationResponse, len(locs))
	for i, l := range locs {
		out[i] = locationResponse{Name: l.Name, X: l.X, Y: l.Y}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameters from and to are required"})
		return
	}

	res, err := s.planner.Find(r.Context(), from, to)
	switch {
	case errors.Is(err, planner.ErrUnknownLocation):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	out := routeResponse{
		From:  from,
		To:    to,
		Found: res.Found,
		Path:  []string{},
		Hops:  []hopResponse{},
	}
	if res.Found && !math.IsInf(res.Distance, 0) {
		d := res.Distance
		out.Distance = &d
		out.Path = res.Path
		for _, h := range res.Hops {
			out.Hops = append(out.Hops, hopResponse{From: h.From, To: h.To, Km: h.Distance})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameters from and to are required"})
		return
	}

	stops, found, err := s.planner.FewestStops(r.Context(), from, to)
	switch {
	case errors.Is(err, planner.ErrUnknownLocation):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	out := stopsResponse{From: from, To: to, Found: found, Stops: []string{}}
	if found {
		out.Stops = stops
		out.Hops = len(stops) - 1
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	st := s.planner.Status()
	writeJSON(w, http.StatusOK, statusResponse{
		Network:   st.Network,
		Locations: st.Stats.VertexCount,
		Roads:     st.Stats.EdgeCount,
		TotalKm:   st.Stats.TotalWeight,
		Connected: st.Connected,
		Frontier:  st.Frontier.String(),
		LoadedAt:  st.LoadedAt,
	})
}

func (s *Server) handleNetworkHCL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(network.Encode(s.planner.Network()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestIDMiddleware tags each request with an ID, puts a request-scoped
// logger into its context and logs the outcome.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		logger := s.logger.With("request_id", requestID)
		r = r.WithContext(logging.WithLogger(r.Context(), logger))

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(wrapped, r)

		level := slog.LevelInfo
		if wrapped.statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if wrapped.statusCode >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"elapsed", time.Since(start),
		)
	})
}

// responseWriter captures the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
