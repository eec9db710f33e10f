package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Du7chy/Seedlings/internal/database"
	"github.com/Du7chy/Seedlings/internal/game"
	"github.com/Du7chy/Seedlings/internal/handler"
	"github.com/Du7chy/Seedlings/internal/logger"
	"github.com/Du7chy/Seedlings/internal/metrics"
	"github.com/Du7chy/Seedlings/internal/sse"
)

type Server struct {
	httpServer  *http.Server
	dbPool      database.Pool
	gameService game.Service
	sseHub      *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, gameService game.Service, sseHub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(securityHeadersMiddleware)
	r.Use(requestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterPlayer(gameService))
			r.Get("/me", handler.HandleGetPlayer(gameService))
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/seeds", handler.HandleListSeeds(gameService))
			r.Get("/plants", handler.HandleListPlants(gameService))
			r.Post("/buy", handler.HandleBuySeed(gameService))
			r.Post("/sell", handler.HandleSellPlant(gameService))
		})

		r.Get("/balance", handler.HandleGetBalance(gameService))
		r.Get("/inventory", handler.HandleGetInventory(gameService))

		r.Route("/garden", func(r chi.Router) {
			r.Post("/plant", handler.HandlePlantSeed(gameService))
			r.Get("/growing", handler.HandleGetGrowingPlants(gameService))
			r.Get("/codex", handler.HandleGetCodex(gameService))
			r.Post("/{id}/harvest", handler.HandleHarvest(gameService))
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", handler.HandleCreateRoom(gameService))
			r.Post("/join", handler.HandleJoinRoom(gameService))
			r.Post("/leave", handler.HandleLeaveRoom(gameService))
			r.Get("/search", handler.HandleSearchRooms(gameService))
			r.Get("/current", handler.HandleGetCurrentRoom(gameService))
			r.Post("/chat", handler.HandleSendMessage(gameService))
			r.Get("/chat", handler.HandleChatHistory(gameService))
		})

		r.Get("/events", handler.HandleEvents(sseHub, gameService))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:      dbPool,
		gameService: gameService,
		sseHub:      sseHub,
	}
}

// securityHeadersMiddleware sets conservative browser security headers.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
		next.ServeHTTP(w, r)
	})
}

// requestSizeLimitMiddleware limits request body size
func requestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush lets SSE streams flush through the status-capturing wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
