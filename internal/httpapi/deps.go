package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"leadscout-engine/internal/enrich"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/run"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Cache  *enrich.Cache
	Runner *run.Runner

	// Base context for API-triggered runs; canceled on process shutdown
	// so a triggered run stops starting new listings on SIGTERM.
	RunCtx context.Context

	// Atomic store; holds config.Config
	CfgVal *atomic.Value

	UserCfgPath string
}
