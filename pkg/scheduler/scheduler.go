package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Imsleepyyy/MonitoRSS/pkg/bus"
	"github.com/Imsleepyyy/MonitoRSS/pkg/dispatch"
	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher
//go:generate moq -out mocks/rate_source.go -pkg mocks -skip-ensure -fmt goimports . RateSource
//go:generate moq -out mocks/enforcer.go -pkg mocks -skip-ensure -fmt goimports . Enforcer
//go:generate moq -out mocks/publisher.go -pkg mocks -skip-ensure -fmt goimports . Publisher

// Dispatcher runs one dispatch pass for a rate bucket
type Dispatcher interface {
	DispatchForRate(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error
}

// RateSource reports the refresh rates currently present in the fleet
type RateSource interface {
	DistinctRates(ctx context.Context) ([]int, error)
}

// Enforcer applies entitlement-derived feed-count caps
type Enforcer interface {
	Enforce(ctx context.Context) error
}

// Publisher sends payloads to a bus queue with a per-message expiration
type Publisher interface {
	Publish(ctx context.Context, queue string, payload any, expiration time.Duration) error
}

// Scheduler drives the engine: a coarse tick checks which rate buckets are
// due and runs a dispatch pass per due bucket, wiring fetch batches and
// delivery events onto the bus. A second ticker runs limit enforcement.
type Scheduler struct {
	dispatcher Dispatcher
	rates      RateSource
	enforcer   Enforcer
	publisher  Publisher

	defaultRate     int
	tick            time.Duration
	enforceInterval time.Duration
	deliveryTTL     time.Duration

	lastRun map[int]time.Time // touched only by the dispatch worker
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// Params holds scheduler dependencies and intervals
type Params struct {
	Dispatcher      Dispatcher
	Rates           RateSource
	Enforcer        Enforcer
	Publisher       Publisher
	DefaultRate     int           // seconds
	Tick            time.Duration // how often due buckets are checked
	EnforceInterval time.Duration
	DeliveryTTL     time.Duration
}

// New creates a scheduler, applying defaults for zero intervals
func New(p Params) *Scheduler {
	if p.Tick == 0 {
		p.Tick = 15 * time.Second
	}
	if p.EnforceInterval == 0 {
		p.EnforceInterval = 10 * time.Minute
	}
	if p.DeliveryTTL == 0 {
		p.DeliveryTTL = time.Hour
	}
	return &Scheduler{
		dispatcher:      p.Dispatcher,
		rates:           p.Rates,
		enforcer:        p.Enforcer,
		publisher:       p.Publisher,
		defaultRate:     p.DefaultRate,
		tick:            p.Tick,
		enforceInterval: p.EnforceInterval,
		deliveryTTL:     p.DeliveryTTL,
		lastRun:         map[int]time.Time{},
	}
}

// Start begins the dispatch and enforcement workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.dispatchWorker(ctx)

	s.wg.Add(1)
	go s.enforceWorker(ctx)

	lgr.Printf("[INFO] scheduler started, tick %v, default rate %ds, enforce every %v",
		s.tick, s.defaultRate, s.enforceInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RefreshURL publishes a single on-demand fetch request for one URL
func (s *Scheduler) RefreshURL(ctx context.Context, url string, rate int) error {
	if rate <= 0 {
		rate = s.defaultRate
	}
	req := dispatch.FetchRequest{Data: dispatch.FetchRequestData{URL: url}}
	if err := s.publisher.Publish(ctx, bus.QueueFetchRequest, req, time.Duration(rate)*time.Second); err != nil {
		return fmt.Errorf("publish fetch request for %s: %w", url, err)
	}
	return nil
}

func (s *Scheduler) dispatchWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	// run immediately on start
	s.dispatchDue(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dispatchDue(ctx)
		}
	}
}

// dispatchDue runs a dispatch pass for every rate bucket whose interval has
// elapsed. A failed pass keeps its lastRun untouched so the next tick simply
// re-runs it, idempotent writes make that safe.
func (s *Scheduler) dispatchDue(ctx context.Context) {
	rates, err := s.rates.DistinctRates(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list rate buckets: %v", err)
		return
	}

	seen := map[int]bool{}
	buckets := make([]int, 0, len(rates)+1)
	for _, r := range append(rates, s.defaultRate) {
		if r > 0 && !seen[r] {
			seen[r] = true
			buckets = append(buckets, r)
		}
	}
	sort.Ints(buckets)

	now := time.Now()
	for _, rate := range buckets {
		if last, ok := s.lastRun[rate]; ok && now.Sub(last) < time.Duration(rate)*time.Second {
			continue
		}
		if err := s.dispatchRate(ctx, rate); err != nil {
			lgr.Printf("[ERROR] dispatch pass failed for rate %ds: %v", rate, err)
			continue
		}
		s.lastRun[rate] = now
	}
}

func (s *Scheduler) enforceWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.enforceInterval)
	defer ticker.Stop()

	if err := s.enforcer.Enforce(ctx); err != nil {
		lgr.Printf("[ERROR] feed limit enforcement failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.enforcer.Enforce(ctx); err != nil {
				lgr.Printf("[ERROR] feed limit enforcement failed: %v", err)
			}
		}
	}
}

func (s *Scheduler) dispatchRate(ctx context.Context, rate int) error {
	return s.dispatcher.DispatchForRate(ctx, rate,
		func(ctx context.Context, b dispatch.URLBatch) error {
			req := dispatch.NewFetchRequestBatch(b)
			return s.publisher.Publish(ctx, bus.QueueFetchRequestBatch, req, time.Duration(rate)*time.Second)
		},
		func(ctx context.Context, feed *domain.Feed, limits dispatch.DeliveryLimits) error {
			ev := dispatch.BuildDeliveryEvent(feed, limits.MaxDailyArticles)
			return s.publisher.Publish(ctx, bus.QueueDeliverArticles, ev, s.deliveryTTL)
		})
}
