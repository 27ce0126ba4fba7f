package dispatch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

//go:generate moq -out mocks/benefits.go -pkg mocks -skip-ensure -fmt goimports . BenefitsProvider
//go:generate moq -out mocks/rate_store.go -pkg mocks -skip-ensure -fmt goimports . RateStore

// BenefitsProvider returns the current benefit record for every known account
type BenefitsProvider interface {
	AllBenefits(ctx context.Context) ([]domain.Benefit, error)
}

// RateStore is the bulk rate-assignment surface of the feed store
type RateStore interface {
	AssignRate(ctx context.Context, accountIDs []string, rate int) (int64, error)
	AssignDefaultRate(ctx context.Context, entitledAccountIDs []string, rate int) (int64, error)
}

// Synchronizer reconciles every feed's refresh rate with the owning account's
// current entitlement. A full pass is idempotent: the store scopes writes by
// rate inequality, so a repeat run with unchanged benefits modifies nothing.
type Synchronizer struct {
	benefits    BenefitsProvider
	store       RateStore
	defaultRate int
	minRate     int
}

// NewSynchronizer creates a synchronizer with the given default and minimum rates
func NewSynchronizer(benefits BenefitsProvider, store RateStore, defaultRate, minRate int) *Synchronizer {
	return &Synchronizer{benefits: benefits, store: store, defaultRate: defaultRate, minRate: minRate}
}

// Synchronize partitions accounts with an active rate entitlement by their
// entitled rate and bulk-assigns each partition, then resets everyone else to
// the default rate. Partitions are independent and run concurrently.
func (s *Synchronizer) Synchronize(ctx context.Context) error {
	benefits, err := s.benefits.AllBenefits(ctx)
	if err != nil {
		return fmt.Errorf("load benefits: %w", err)
	}

	now := time.Now()
	byRate := map[int][]string{}
	var entitled []string
	for _, b := range benefits {
		if !b.ActiveAt(now) || b.RefreshRate <= 0 {
			continue
		}
		rate := b.RefreshRate
		if rate < s.minRate {
			rate = s.minRate
		}
		byRate[rate] = append(byRate[rate], b.AccountID)
		entitled = append(entitled, b.AccountID)
	}
	sort.Strings(entitled)

	g, gctx := errgroup.WithContext(ctx)
	for rate, accounts := range byRate {
		sort.Strings(accounts)
		g.Go(func() error {
			n, err := s.store.AssignRate(gctx, accounts, rate)
			if err != nil {
				return fmt.Errorf("assign rate %d: %w", rate, err)
			}
			if n > 0 {
				lgr.Printf("[INFO] moved %d feeds to rate %ds for %d accounts", n, rate, len(accounts))
			}
			return nil
		})
	}
	g.Go(func() error {
		n, err := s.store.AssignDefaultRate(gctx, entitled, s.defaultRate)
		if err != nil {
			return fmt.Errorf("assign default rate %d: %w", s.defaultRate, err)
		}
		if n > 0 {
			lgr.Printf("[INFO] reset %d feeds to default rate %ds", n, s.defaultRate)
		}
		return nil
	})
	return g.Wait()
}
