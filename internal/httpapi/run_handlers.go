package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"

	"leadscout-engine/internal/run"
)

type RunHandler struct {
	Runner *run.Runner

	// BaseCtx is canceled on process shutdown. Not the request context:
	// the run must outlive the triggering request, but not the process.
	BaseCtx context.Context
}

// Trigger kicks off a run in the background and returns immediately.
// Progress arrives over /events; a run already in flight is a conflict.
func (h RunHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if h.Runner.Running() {
		WriteError(w, r, http.StatusConflict, "run_in_progress", "a run is already in progress")
		return
	}

	ctx := h.BaseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	go func() {
		if _, err := h.Runner.Run(ctx); err != nil {
			if errors.Is(err, run.ErrAlreadyRunning) {
				return
			}
			log.Printf("[api] run failed: %v", err)
		}
	}()

	WriteJSON(w, http.StatusAccepted, map[string]any{"started": true})
}

func (h RunHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"running": h.Runner.Running()})
}
