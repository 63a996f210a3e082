package api

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"maproute/internal/ui"
	"maproute/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts the session handler and a shutdownFunc for graceful shutdown.
func NewServer(addr string, sessions *SessionHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// 1. Health Endpoint
	mux.HandleFunc("GET /health", handleHealth)

	// 2. Version Endpoint
	mux.HandleFunc("GET /api/version", handleVersion)

	// 2b. Frontend Config Endpoint
	mux.HandleFunc("GET /api/config", sessions.HandleConfig)

	// 3. Session Endpoints
	mux.HandleFunc("POST /api/query", sessions.HandleQuery)
	mux.HandleFunc("POST /api/select", sessions.HandleSelect)
	mux.HandleFunc("POST /api/step", sessions.HandleStep)
	mux.HandleFunc("POST /api/reset", sessions.HandleReset)
	mux.HandleFunc("POST /api/timeline", sessions.HandleTimeline)
	mux.HandleFunc("GET /api/plan/export", sessions.HandleExport)

	// 4. Render Stream
	mux.HandleFunc("GET /ws", sessions.HandleWS)

	// 5. Shutdown Endpoint
	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	// 6. Static Frontend Serving (SPA)
	distFS, err := fs.Sub(ui.DistFS, "dist")
	if err != nil {
		panic(fmt.Sprintf("Failed to subtree dist from embedded assets: %v", err))
	}

	spaFS := &spaFileSystem{root: http.FS(distFS)}
	mux.Handle("/", http.FileServer(spaFS))

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // streaming responses and the websocket manage their own deadlines
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}
