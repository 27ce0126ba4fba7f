package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Imsleepyyy/MonitoRSS/pkg/dispatch/mocks"
	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
)

func TestDispatcher_DispatchForRate(t *testing.T) {
	urls := make([]string, 30)
	for i := range urls {
		urls[i] = fmt.Sprintf("http://feeds.example.com/%02d", i)
	}

	sync := &mocks.RateSynchronizerMock{SynchronizeFunc: func(ctx context.Context) error { return nil }}
	store := &mocks.FeedSourceMock{
		DistinctDispatchableURLsFunc: func(ctx context.Context, rate int) ([]string, error) {
			assert.Len(t, sync.SynchronizeCalls(), 1, "rates must be reconciled before candidate selection")
			return urls, nil
		},
		IterateDispatchableFunc: func(ctx context.Context, rate int, fn func(*domain.Feed) error) error {
			for _, f := range []domain.Feed{
				{ID: "f1", AccountID: "u1", URL: urls[0]},
				{ID: "f2", AccountID: "u2", URL: urls[1]},
				{ID: "f3", AccountID: "u1", URL: urls[2]},
			} {
				if err := fn(&f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) {
			return []domain.Benefit{{AccountID: "u1", MaxDailyArticles: 100, IsSupporter: true}}, nil
		},
	}

	d := NewDispatcher(DispatcherParams{
		Store: store, Synchronizer: sync, Benefits: benefits, DefaultMaxDailyArticles: 50,
	})

	var batches []URLBatch
	var feedOrder []string
	var dayLimits []int
	err := d.DispatchForRate(context.Background(), 300,
		func(ctx context.Context, b URLBatch) error {
			assert.Empty(t, feedOrder, "all url batches must be emitted before per-feed handling")
			batches = append(batches, b)
			return nil
		},
		func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error {
			feedOrder = append(feedOrder, feed.ID)
			dayLimits = append(dayLimits, limits.MaxDailyArticles)
			return nil
		})
	require.NoError(t, err)

	// 30 urls with default batch size 25 make exactly two batches
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].URLs, 25)
	assert.Len(t, batches[1].URLs, 5)
	assert.Equal(t, 300, batches[0].RateSeconds)
	assert.NotZero(t, batches[0].Timestamp)

	assert.Equal(t, []string{"f1", "f2", "f3"}, feedOrder)
	assert.Equal(t, []int{100, 50, 100}, dayLimits, "u2 has no benefit and falls back to the default day limit")
}

func TestDispatcher_CustomBatchSize(t *testing.T) {
	sync := &mocks.RateSynchronizerMock{SynchronizeFunc: func(ctx context.Context) error { return nil }}
	store := &mocks.FeedSourceMock{
		DistinctDispatchableURLsFunc: func(ctx context.Context, rate int) ([]string, error) {
			return []string{"a", "b", "c", "d", "e"}, nil
		},
		IterateDispatchableFunc: func(ctx context.Context, rate int, fn func(*domain.Feed) error) error {
			return nil
		},
	}
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) { return nil, nil },
	}

	d := NewDispatcher(DispatcherParams{Store: store, Synchronizer: sync, Benefits: benefits, BatchSize: 2})

	var sizes []int
	err := d.DispatchForRate(context.Background(), 120,
		func(ctx context.Context, b URLBatch) error { sizes = append(sizes, len(b.URLs)); return nil },
		func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestDispatcher_SynchronizeFailureAbortsPass(t *testing.T) {
	sync := &mocks.RateSynchronizerMock{
		SynchronizeFunc: func(ctx context.Context) error { return errors.New("sync failed") },
	}
	store := &mocks.FeedSourceMock{}
	benefits := &mocks.BenefitsProviderMock{}

	d := NewDispatcher(DispatcherParams{Store: store, Synchronizer: sync, Benefits: benefits})
	err := d.DispatchForRate(context.Background(), 300,
		func(ctx context.Context, b URLBatch) error { t.Fatal("no batch expected"); return nil },
		func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error { t.Fatal("no feed expected"); return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synchronize rates")
	assert.Empty(t, store.DistinctDispatchableURLsCalls())
}

func TestDispatcher_BatchHandlerFailureStopsPass(t *testing.T) {
	sync := &mocks.RateSynchronizerMock{SynchronizeFunc: func(ctx context.Context) error { return nil }}
	store := &mocks.FeedSourceMock{
		DistinctDispatchableURLsFunc: func(ctx context.Context, rate int) ([]string, error) {
			return []string{"a", "b", "c"}, nil
		},
	}
	benefits := &mocks.BenefitsProviderMock{}

	d := NewDispatcher(DispatcherParams{Store: store, Synchronizer: sync, Benefits: benefits, BatchSize: 1})
	calls := 0
	err := d.DispatchForRate(context.Background(), 300,
		func(ctx context.Context, b URLBatch) error {
			calls++
			if calls == 2 {
				return errors.New("publish failed")
			}
			return nil
		},
		func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error { return nil })

	require.Error(t, err)
	assert.Equal(t, 2, calls, "pass fails outright on the first handler error")
	assert.Empty(t, store.IterateDispatchableCalls())
}

func TestDispatcher_FeedHandlerFailureStopsIteration(t *testing.T) {
	sync := &mocks.RateSynchronizerMock{SynchronizeFunc: func(ctx context.Context) error { return nil }}
	store := &mocks.FeedSourceMock{
		DistinctDispatchableURLsFunc: func(ctx context.Context, rate int) ([]string, error) { return nil, nil },
		IterateDispatchableFunc: func(ctx context.Context, rate int, fn func(*domain.Feed) error) error {
			for _, id := range []string{"f1", "f2", "f3"} {
				if err := fn(&domain.Feed{ID: id}); err != nil {
					return err
				}
			}
			return nil
		},
	}
	benefits := &mocks.BenefitsProviderMock{
		AllBenefitsFunc: func(ctx context.Context) ([]domain.Benefit, error) { return nil, nil },
	}

	d := NewDispatcher(DispatcherParams{Store: store, Synchronizer: sync, Benefits: benefits})
	var handled []string
	err := d.DispatchForRate(context.Background(), 300,
		func(ctx context.Context, b URLBatch) error { return nil },
		func(ctx context.Context, feed *domain.Feed, limits DeliveryLimits) error {
			handled = append(handled, feed.ID)
			if feed.ID == "f2" {
				return errors.New("deliver failed")
			}
			return nil
		})

	require.Error(t, err)
	assert.Equal(t, []string{"f1", "f2"}, handled)
}
