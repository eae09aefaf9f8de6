package httpapi

import (
	"database/sql"
	"net/http"

	"leadscout-engine/internal/enrich"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/store"
)

type CacheHandler struct {
	DB    *sql.DB
	Cache *enrich.Cache
	Hub   *events.Hub
}

func (h CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	leads, contacts, err := store.CountLeads(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{
		"cache_entries": h.Cache.Len(),
		"leads":         leads,
		"contacts":      contacts,
	})
}

// Clear drops the in-memory cache and its persisted snapshot. The next
// run re-queries everything.
func (h CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.Cache.Clear()
	if err := store.ReplaceCacheRows(r.Context(), h.DB, nil); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeCacheCleared, 1, nil))
	writeJSON(w, map[string]any{"ok": true})
}
