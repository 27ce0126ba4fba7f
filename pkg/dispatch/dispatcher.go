package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

//go:generate moq -out mocks/feed_source.go -pkg mocks -skip-ensure -fmt goimports . FeedSource
//go:generate moq -out mocks/rate_synchronizer.go -pkg mocks -skip-ensure -fmt goimports . RateSynchronizer

const defaultBatchSize = 25

// FeedSource is the candidate-selection surface of the feed store
type FeedSource interface {
	DistinctDispatchableURLs(ctx context.Context, rate int) ([]string, error)
	IterateDispatchable(ctx context.Context, rate int, fn func(*domain.Feed) error) error
}

// RateSynchronizer reconciles rate assignments before candidates are selected
type RateSynchronizer interface {
	Synchronize(ctx context.Context) error
}

// URLBatch is one fixed-size group of distinct source URLs due for fetching
type URLBatch struct {
	RateSeconds int
	Timestamp   int64
	URLs        []string
}

// DeliveryLimits carries the per-account caps resolved for one feed
type DeliveryLimits struct {
	MaxDailyArticles int
}

// URLBatchHandler receives each fetch batch, typically publishing it to the bus
type URLBatchHandler func(ctx context.Context, batch URLBatch) error

// FeedHandler receives each dispatchable feed, one at a time
type FeedHandler func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error

// Dispatcher runs one dispatch pass per rate bucket: reconcile rates, emit
// fetch batches for the qualifying URL set, then walk the candidate feeds
// sequentially so downstream delivery load stays bounded.
type Dispatcher struct {
	store           FeedSource
	sync            RateSynchronizer
	benefits        BenefitsProvider
	batchSize       int
	defaultMaxDaily int
}

// DispatcherParams holds dispatcher dependencies and tunables
type DispatcherParams struct {
	Store                   FeedSource
	Synchronizer            RateSynchronizer
	Benefits                BenefitsProvider
	BatchSize               int
	DefaultMaxDailyArticles int
}

// NewDispatcher creates a dispatcher, applying defaults for zero tunables
func NewDispatcher(p DispatcherParams) *Dispatcher {
	if p.BatchSize <= 0 {
		p.BatchSize = defaultBatchSize
	}
	return &Dispatcher{
		store:           p.Store,
		sync:            p.Synchronizer,
		benefits:        p.Benefits,
		batchSize:       p.BatchSize,
		defaultMaxDaily: p.DefaultMaxDailyArticles,
	}
}

// DispatchForRate runs a single pass for one rate bucket. Fetch batches are
// emitted before any per-feed handling begins; per-feed handling is strictly
// sequential. The pass either completes or fails outright, idempotent writes
// and TTL-bounded events make a simple re-run safe.
func (d *Dispatcher) DispatchForRate(ctx context.Context, rate int, onBatch URLBatchHandler, onFeed FeedHandler) error {
	if err := d.sync.Synchronize(ctx); err != nil {
		return fmt.Errorf("synchronize rates: %w", err)
	}

	urls, err := d.store.DistinctDispatchableURLs(ctx, rate)
	if err != nil {
		return fmt.Errorf("select urls for rate %d: %w", rate, err)
	}
	for start := 0; start < len(urls); start += d.batchSize {
		end := min(start+d.batchSize, len(urls))
		batch := URLBatch{RateSeconds: rate, Timestamp: time.Now().Unix(), URLs: urls[start:end]}
		if err := onBatch(ctx, batch); err != nil {
			return fmt.Errorf("handle url batch: %w", err)
		}
	}

	limits, err := d.dailyLimits(ctx)
	if err != nil {
		return err
	}

	feeds := 0
	err = d.store.IterateDispatchable(ctx, rate, func(feed *domain.Feed) error {
		dayLimit := d.defaultMaxDaily
		if l, ok := limits[feed.AccountID]; ok {
			dayLimit = l
		}
		feeds++
		return onFeed(ctx, feed, DeliveryLimits{MaxDailyArticles: dayLimit})
	})
	if err != nil {
		return fmt.Errorf("dispatch feeds for rate %d: %w", rate, err)
	}

	lgr.Printf("[INFO] dispatch pass for rate %ds done, %d urls in %d batches, %d feeds",
		rate, len(urls), (len(urls)+d.batchSize-1)/d.batchSize, feeds)
	return nil
}

// dailyLimits resolves the max-daily-articles entitlement per account
func (d *Dispatcher) dailyLimits(ctx context.Context) (map[string]int, error) {
	benefits, err := d.benefits.AllBenefits(ctx)
	if err != nil {
		return nil, fmt.Errorf("load benefits: %w", err)
	}
	now := time.Now()
	limits := make(map[string]int, len(benefits))
	for _, b := range benefits {
		if b.ActiveAt(now) && b.MaxDailyArticles > 0 {
			limits[b.AccountID] = b.MaxDailyArticles
		}
	}
	return limits, nil
}
