package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"maproute/pkg/config"
	"maproute/pkg/llm"
	"maproute/pkg/query"
	"maproute/pkg/session"
	"maproute/pkg/trip"
)

// defaultSessionID serves single-client deployments that never pass an ID.
const defaultSessionID = "default"

// sessionEntry couples a session with the bridge its renderer and view
// commands travel through.
type sessionEntry struct {
	bridge *renderBridge
	sess   *session.Session
}

// SessionHandler owns the per-session state and all session endpoints.
type SessionHandler struct {
	sessions *session.Store[sessionEntry]
	mapCfg   config.MapConfig
}

// NewSessionHandler creates the handler with a TTL-evicted session store.
func NewSessionHandler(provider llm.Provider, cfg *config.Config) *SessionHandler {
	temperature := cfg.LLM.Temperature
	ttl := time.Duration(cfg.Session.TTL)

	return &SessionHandler{
		mapCfg: cfg.Map,
		sessions: session.NewStore(ttl, func() *sessionEntry {
			bridge := newRenderBridge()
			return &sessionEntry{
				bridge: bridge,
				sess:   session.New(bridge, bridge, query.New(provider, temperature)),
			}
		}),
	}
}

func (h *SessionHandler) entry(id string) *sessionEntry {
	if id == "" {
		id = defaultSessionID
	}
	return h.sessions.Get(id)
}

type queryRequest struct {
	Session string `json:"session"`
	Prompt  string `json:"prompt"`
	Planner bool   `json:"planner"`
}

type queryResponse struct {
	Text      string `json:"text,omitempty"`
	Locations int    `json:"locations"`
	Routes    int    `json:"routes"`
	Skipped   int    `json:"skipped,omitempty"`
}

// HandleQuery runs a prompt through the model and streams the resulting
// map onto the session's frontend.
// POST /api/query
func (h *SessionHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	res, err := h.entry(req.Session).sess.Submit(r.Context(), req.Prompt, req.Planner)
	if err != nil {
		// The frontend already shows the failure via the view channel.
		if errors.Is(err, query.ErrNoResults) {
			http.Error(w, "no mappable results", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, context.Canceled) {
			http.Error(w, "superseded by a newer query", http.StatusConflict)
			return
		}
		slog.Error("Query failed", "error", err)
		http.Error(w, "query failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, queryResponse{
		Text:      res.Text,
		Locations: res.Locations,
		Routes:    res.Routes,
		Skipped:   res.Skipped,
	})
}

type selectRequest struct {
	Session string `json:"session"`
	Index   int    `json:"index"`
}

// HandleSelect makes a card the active one.
// POST /api/select
func (h *SessionHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess := h.entry(req.Session).sess
	sess.Select(req.Index)
	writeJSON(w, map[string]int{"active": sess.ActiveIndex()})
}

type stepRequest struct {
	Session string `json:"session"`
	Delta   int    `json:"delta"`
}

// HandleStep moves the selection by a delta, clamped at the ends.
// POST /api/step
func (h *SessionHandler) HandleStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess := h.entry(req.Session).sess
	sess.Step(req.Delta)
	writeJSON(w, map[string]int{"active": sess.ActiveIndex()})
}

type sessionRequest struct {
	Session string `json:"session"`
}

// HandleReset clears the session's map, cards and timeline.
// POST /api/reset
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	h.entry(req.Session).sess.Reset()
	w.WriteHeader(http.StatusNoContent)
}

type timelineRequest struct {
	Session string `json:"session"`
	Open    bool   `json:"open"`
}

// HandleTimeline requests the timeline panel to open or close.
// POST /api/timeline
func (h *SessionHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	var req timelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	sess := h.entry(req.Session).sess
	if req.Open {
		sess.OpenTimeline()
	} else {
		sess.CloseTimeline()
	}
	writeJSON(w, map[string]string{"panel": sess.Panel().String()})
}

// HandleExport downloads the current day plan as a text file.
// GET /api/plan/export?session=<id>
func (h *SessionHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	sess := h.entry(r.URL.Query().Get("session")).sess

	plan := sess.ExportPlan()
	if plan == "" {
		http.Error(w, "no day plan to export", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", trip.ExportFileName))
	if _, err := w.Write([]byte(plan)); err != nil {
		slog.Error("Failed to write plan export", "error", err)
	}
}

type frontendConfig struct {
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	Zoom      int     `json:"zoom"`
}

// HandleConfig returns the frontend bootstrap settings, currently the
// initial map viewport.
// GET /api/config
func (h *SessionHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, frontendConfig{
		CenterLat: h.mapCfg.CenterLat,
		CenterLng: h.mapCfg.CenterLng,
		Zoom:      h.mapCfg.Zoom,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
