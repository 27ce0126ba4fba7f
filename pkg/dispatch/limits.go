package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

//go:generate moq -out mocks/limit_store.go -pkg mocks -skip-ensure -fmt goimports . AccountLimitStore

// AccountLimitStore is the feed-count enforcement collaborator: it counts
// feeds per account and disables the excess beyond the cap
type AccountLimitStore interface {
	EnforceLimits(ctx context.Context, limits []domain.AccountLimit) error
}

// LimitEnforcer projects benefits into per-account feed-count caps and hands
// them to the enforcement collaborator. Its responsibility ends at supplying
// the correct cap per account.
type LimitEnforcer struct {
	benefits        BenefitsProvider
	store           AccountLimitStore
	defaultMaxFeeds int
}

// NewLimitEnforcer creates a limit enforcer with the system default cap
func NewLimitEnforcer(benefits BenefitsProvider, store AccountLimitStore, defaultMaxFeeds int) *LimitEnforcer {
	return &LimitEnforcer{benefits: benefits, store: store, defaultMaxFeeds: defaultMaxFeeds}
}

// Enforce resolves the cap for every known account and delegates enforcement
func (e *LimitEnforcer) Enforce(ctx context.Context) error {
	benefits, err := e.benefits.AllBenefits(ctx)
	if err != nil {
		return fmt.Errorf("load benefits: %w", err)
	}

	now := time.Now()
	limits := make([]domain.AccountLimit, 0, len(benefits))
	for _, b := range benefits {
		maxFeeds := e.defaultMaxFeeds
		if b.ActiveAt(now) && b.MaxFeeds > 0 {
			maxFeeds = b.MaxFeeds
		}
		limits = append(limits, domain.AccountLimit{AccountID: b.AccountID, MaxFeeds: maxFeeds})
	}

	if err := e.store.EnforceLimits(ctx, limits); err != nil {
		return fmt.Errorf("enforce feed limits: %w", err)
	}
	lgr.Printf("[DEBUG] feed limits enforced for %d accounts", len(limits))
	return nil
}
