package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/enrich"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/httpapi"
	"leadscout-engine/internal/nameparse"
	"leadscout-engine/internal/rank"
	"leadscout-engine/internal/run"
	"leadscout-engine/internal/scheduler"
	"leadscout-engine/internal/secrets"
	"leadscout-engine/internal/source"
	"leadscout-engine/internal/store"
)

func main() {
	// Engine data dir: env wins, else local folder.
	dataDir := os.Getenv("LEADSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would fight over sqlite
	// and the cache snapshot.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	raw, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.OverlayExclusions(&raw, filepath.Join(dataDir, "exclusions.yml")); err != nil {
		log.Fatalf("exclusions overlay failed: %v", err)
	}

	cfg, vr := config.NormalizeAndValidate(raw)
	for _, warn := range vr.Warnings {
		log.Printf("[config] warning: %s", warn)
	}
	if !vr.OK() {
		for _, e := range vr.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", userCfgPath)
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "leadscout.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	apiKey, err := secrets.GetAPIKey(cfg.Enrichment.KeyringAccount, cfg.Enrichment.APIKeyEnv)
	if err != nil {
		// key can still arrive later via POST /api/secrets/apikey, but
		// until restart every lookup will fail
		log.Printf("[secrets] %v", err)
	}

	cache := enrich.NewCache(cfg.Cache.TTLDays, cfg.Cache.AlwaysRefresh)
	if err := enrich.LoadCacheFromDB(context.Background(), db.Pool, cache); err != nil {
		log.Printf("[cache] load failed, starting cold: %v", err)
	}

	apiLimiter := rate.NewLimiter(rate.Limit(cfg.Run.RequestsPerSec), 1)
	searchLimiter := rate.NewLimiter(rate.Limit(cfg.Run.SearchPerMinute/60), 1)

	client := enrich.NewClient(enrich.ClientConfig{
		BaseURL:     cfg.Enrichment.BaseURL,
		APIKey:      apiKey,
		Timeout:     time.Duration(cfg.Run.TimeoutSeconds) * time.Second,
		Cooldown429: time.Duration(cfg.Run.CooldownSeconds) * time.Second,
	}, cache, apiLimiter)

	finder := enrich.NewDomainFinder(
		time.Duration(cfg.Run.TimeoutSeconds)*time.Second, searchLimiter, db.Pool)

	excl := nameparse.NewExclusions(cfg.Exclusions.Exact, cfg.Exclusions.Partial)
	resolver := &enrich.Resolver{
		Parser: nameparse.NewParser(excl),
		Excl:   excl,
		Client: client,
		Finder: finder,
		Ranker: rank.NewTitleRanker(cfg.Titles.Priority),
	}

	hub := events.NewHub()
	runner := &run.Runner{
		Source:   source.NewFileSource(cfg.Source.ListingsFile),
		Resolver: resolver,
		DB:       db.Pool,
		Hub:      hub,
		Budget:   time.Duration(cfg.Run.BudgetSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db.Pool,
		Hub:         hub,
		Cache:       cache,
		Runner:      runner,
		RunCtx:      ctx,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.Cors,
			httpapi.RequestID,
			httpapi.Recover,
			httpapi.AccessLog,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)
	log.Printf("shutdown token: %s", token)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shCtx)
	})

	if cfg.Run.IntervalSeconds > 0 {
		g.Go(func() error {
			scheduler.Every(gctx,
				time.Duration(cfg.Run.IntervalSeconds)*time.Second,
				"run", func(ctx context.Context) error {
					_, err := runner.Run(ctx)
					if err == run.ErrAlreadyRunning {
						return nil
					}
					return err
				})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("engine stopped: %v", err)
	}

	// An API-triggered run may still be finishing its in-flight listing;
	// let it complete before snapshotting the cache and closing the db.
	runner.Wait()

	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := enrich.SaveCacheToDB(saveCtx, db.Pool, cache); err != nil {
		log.Printf("[cache] snapshot save failed: %v", err)
	} else {
		log.Printf("[cache] snapshot saved (%d entries)", cache.Len())
	}
}
