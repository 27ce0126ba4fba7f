package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Imsleepyyy/MonitoRSS/pkg/dispatch/mocks"
	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

func TestLimitEnforcer_Enforce(t *testing.T) {
	expired := time.Now().Add(-time.Minute)
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) {
			return []domain.Benefit{
				{AccountID: "u1", MaxFeeds: 35, IsSupporter: true},
				{AccountID: "u2", MaxFeeds: 35, IsSupporter: true, ExpiresAt: &expired},
				{AccountID: "u3", MaxFeeds: 0, IsSupporter: true},
				{AccountID: "u4", MaxFeeds: 35, IsSupporter: false},
			}, nil
		},
	}
	store := &mocks.AccountLimitStoreMock{
		EnforceLimitsFunc: func(ctx context.Context, limits []domain.AccountLimit) error { return nil },
	}

	e := NewLimitEnforcer(benefits, store, 5)
	require.NoError(t, e.Enforce(context.Background()))

	calls := store.EnforceLimitsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []domain.AccountLimit{
		{AccountID: "u1", MaxFeeds: 35},
		{AccountID: "u2", MaxFeeds: 5}, // expired benefit falls back to default
		{AccountID: "u3", MaxFeeds: 5}, // no feed entitlement falls back to default
		{AccountID: "u4", MaxFeeds: 5}, // not a supporter
	}, calls[0].Limits)
}

func TestLimitEnforcer_BenefitsError(t *testing.T) {
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) {
			return nil, errors.New("entitlements down")
		},
	}
	store := &mocks.AccountLimitStoreMock{}

	e := NewLimitEnforcer(benefits, store, 5)
	err := e.Enforce(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.EnforceLimitsCalls())
}

func TestLimitEnforcer_StoreError(t *testing.T) {
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) {
			return []domain.Benefit{{AccountID: "u1", MaxFeeds: 10, IsSupporter: true}}, nil
		},
	}
	store := &mocks.AccountLimitStoreMock{
		EnforceLimitsFunc: func(ctx context.Context, limits []domain.AccountLimit) error {
			return errors.New("write failed")
		},
	}

	e := NewLimitEnforcer(benefits, store, 5)
	err := e.Enforce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enforce feed limits")
}
