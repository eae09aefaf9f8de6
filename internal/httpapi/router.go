package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{DB: d.DB}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Leads
	lh := LeadsHandler{DB: d.DB}
	mux.HandleFunc("/leads", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.List,
	}))

	// Cache
	ch := CacheHandler{DB: d.DB, Cache: d.Cache, Hub: d.Hub}
	mux.HandleFunc("/cache/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Stats,
	}))
	mux.HandleFunc("/cache/clear", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Clear,
	}))

	// Runs
	rh := RunHandler{Runner: d.Runner, BaseCtx: d.RunCtx}
	mux.HandleFunc("/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Trigger,
	}))
	mux.HandleFunc("/run/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	// Config (read-only; the file is the source of truth)
	cfg := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfg.Get,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfg.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfg.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/apikey", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetAPIKey,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// DB maintenance (localhost only)
	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	return mux
}
