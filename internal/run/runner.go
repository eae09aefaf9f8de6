package run

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/source"
	"leadscout-engine/internal/store"
)

var ErrAlreadyRunning = errors.New("a run is already in progress")

// CompanyResolver is what the runner needs from the enrichment side.
type CompanyResolver interface {
	Resolve(ctx context.Context, listing domain.RawListing) domain.CompanyContactResult
}

// Summary is what one run reports back.
type Summary struct {
	Processed int           `json:"processed"`
	Resolved  int           `json:"resolved"`
	Skipped   int           `json:"skipped"`
	Elapsed   time.Duration `json:"-"`
	Stopped   string        `json:"stopped,omitempty"` // "", "budget", "canceled"
}

// Runner walks the listing source sequentially, resolves each listing and
// persists the hits. Sequential on purpose: the directory API and the
// search engine both punish concurrency faster than it would pay off.
type Runner struct {
	Source   source.Lister
	Resolver CompanyResolver
	DB       *sql.DB
	Hub      *events.Hub
	Budget   time.Duration // 0 = unlimited

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

// Running reports whether a run is in flight.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Wait blocks until no run is in flight. Shutdown calls this before
// snapshotting the cache and closing the database.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Run executes one pass over the source. Only one run at a time; a second
// caller gets ErrAlreadyRunning instead of queueing.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return Summary{}, ErrAlreadyRunning
	}
	r.running = true
	r.wg.Add(1)
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		r.wg.Done()
	}()

	listings, err := r.Source.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	if r.Hub != nil {
		r.Hub.Publish(events.MakeEvent("", events.TypeRunStarted, 1, map[string]int{"listings": len(listings)}))
	}

	start := time.Now()
	var sum Summary

	for _, listing := range listings {
		if ctx.Err() != nil {
			sum.Stopped = "canceled"
			break
		}
		if r.Budget > 0 && time.Since(start) > r.Budget {
			log.Printf("[run] budget exhausted after %s, %d/%d listings done",
				r.Budget, sum.Processed, len(listings))
			sum.Stopped = "budget"
			break
		}

		sum.Processed++
		res := r.Resolver.Resolve(ctx, listing)
		if res.Empty() {
			sum.Skipped++
			continue
		}
		sum.Resolved++

		if r.DB != nil {
			if _, err := store.InsertLead(ctx, r.DB, res, listing); err != nil {
				log.Printf("[run] persist failed company=%q: %v", res.Company, err)
			}
		}
		if r.Hub != nil {
			r.Hub.Publish(events.MakeEvent("", events.TypeLeadResolved, 1, events.LeadResolved{
				Company:       res.Company,
				PrimaryDomain: res.PrimaryDomain,
				Contacts:      len(res.Contacts),
			}))
		}
	}

	sum.Elapsed = time.Since(start)
	log.Printf("[run] done processed=%d resolved=%d skipped=%d elapsed=%s stopped=%q",
		sum.Processed, sum.Resolved, sum.Skipped, sum.Elapsed.Round(time.Millisecond), sum.Stopped)

	if r.Hub != nil {
		r.Hub.Publish(events.MakeEvent("", events.TypeRunFinished, 1, events.RunFinished{
			Processed: sum.Processed,
			Resolved:  sum.Resolved,
			Skipped:   sum.Skipped,
			Elapsed:   sum.Elapsed.Round(time.Millisecond).String(),
			Stopped:   sum.Stopped,
		}))
	}
	return sum, nil
}
