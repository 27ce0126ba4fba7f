package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Imsleepyyy/MonitoRSS/pkg/bus"
	"github.com/Imsleepyyy/MonitoRSS/pkg/dispatch"
	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
	"github.com/Imsleepyyy/MonitoRSS/pkg/scheduler/mocks"
)

func TestScheduler_RefreshURL(t *testing.T) {
	pub := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, queue string, payload any, expiration time.Duration) error {
			return nil
		},
	}
	s := New(Params{Publisher: pub, DefaultRate: 600})

	err := s.RefreshURL(context.Background(), "https://example.com/feed.xml", 120)
	require.NoError(t, err)

	calls := pub.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, bus.QueueFetchRequest, calls[0].Queue)
	assert.Equal(t, 2*time.Minute, calls[0].Expiration)
	req, ok := calls[0].Payload.(dispatch.FetchRequest)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/feed.xml", req.Data.URL)
}

func TestScheduler_RefreshURLDefaultRate(t *testing.T) {
	pub := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, queue string, payload any, expiration time.Duration) error {
			return nil
		},
	}
	s := New(Params{Publisher: pub, DefaultRate: 600})

	err := s.RefreshURL(context.Background(), "https://example.com/feed.xml", 0)
	require.NoError(t, err)

	calls := pub.PublishCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 10*time.Minute, calls[0].Expiration)
}

func TestScheduler_RefreshURLPublishError(t *testing.T) {
	pub := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, queue string, payload any, expiration time.Duration) error {
			return errors.New("bus down")
		},
	}
	s := New(Params{Publisher: pub, DefaultRate: 600})

	err := s.RefreshURL(context.Background(), "https://example.com/feed.xml", 60)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus down")
}

func TestScheduler_DispatchDue(t *testing.T) {
	rates := &mocks.RateSourceMock{
		DistinctRatesFunc: func(ctx context.Context) ([]int, error) {
			return []int{120, 60, 600}, nil // 600 duplicates the default rate
		},
	}
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			return nil
		},
	}
	s := New(Params{Dispatcher: disp, Rates: rates, DefaultRate: 600})

	s.dispatchDue(context.Background())

	calls := disp.DispatchForRateCalls()
	require.Len(t, calls, 3, "duplicate default rate deduped")
	assert.Equal(t, 60, calls[0].Rate)
	assert.Equal(t, 120, calls[1].Rate)
	assert.Equal(t, 600, calls[2].Rate)

	// every bucket just ran, nothing is due on the next pass
	s.dispatchDue(context.Background())
	assert.Len(t, disp.DispatchForRateCalls(), 3)
}

func TestScheduler_DispatchDueIncludesDefaultRate(t *testing.T) {
	rates := &mocks.RateSourceMock{
		DistinctRatesFunc: func(ctx context.Context) ([]int, error) { return []int{}, nil },
	}
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			return nil
		},
	}
	s := New(Params{Dispatcher: disp, Rates: rates, DefaultRate: 600})

	s.dispatchDue(context.Background())

	calls := disp.DispatchForRateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 600, calls[0].Rate)
}

func TestScheduler_DispatchDueRatesError(t *testing.T) {
	rates := &mocks.RateSourceMock{
		DistinctRatesFunc: func(ctx context.Context) ([]int, error) {
			return nil, errors.New("mongo down")
		},
	}
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			return nil
		},
	}
	s := New(Params{Dispatcher: disp, Rates: rates, DefaultRate: 600})

	s.dispatchDue(context.Background())
	assert.Empty(t, disp.DispatchForRateCalls())
}

func TestScheduler_DispatchDueFailedPassRetried(t *testing.T) {
	rates := &mocks.RateSourceMock{
		DistinctRatesFunc: func(ctx context.Context) ([]int, error) { return []int{60}, nil },
	}
	var fails int32
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			if rate == 60 && atomic.AddInt32(&fails, 1) == 1 {
				return errors.New("transient")
			}
			return nil
		},
	}
	s := New(Params{Dispatcher: disp, Rates: rates, DefaultRate: 600})

	s.dispatchDue(context.Background()) // rate 60 fails, default 600 succeeds
	s.dispatchDue(context.Background()) // rate 60 retried, 600 not due

	var rate60 int
	for _, c := range disp.DispatchForRateCalls() {
		if c.Rate == 60 {
			rate60++
		}
	}
	assert.Equal(t, 2, rate60, "failed bucket re-runs on next pass")
}

func TestScheduler_DispatchRateWiring(t *testing.T) {
	feed := &domain.Feed{
		ID:          "f1",
		URL:         "https://example.com/feed.xml",
		RefreshRate: 120,
		Destinations: []domain.Destination{
			{ID: "d1", Kind: domain.KindChannel, Channel: &domain.ChannelTarget{ChannelID: "c1"}},
		},
	}
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			b := dispatch.URLBatch{RateSeconds: rate, Timestamp: time.Now().Unix(), URLs: []string{feed.URL}}
			if err := onBatch(ctx, b); err != nil {
				return err
			}
			return onFeed(ctx, feed, dispatch.DeliveryLimits{MaxDailyArticles: 50})
		},
	}
	pub := &mocks.PublisherMock{
		PublishFunc: func(ctx context.Context, queue string, payload any, expiration time.Duration) error {
			return nil
		},
	}
	s := New(Params{Dispatcher: disp, Publisher: pub, DefaultRate: 600, DeliveryTTL: time.Hour})

	err := s.dispatchRate(context.Background(), 120)
	require.NoError(t, err)

	calls := pub.PublishCalls()
	require.Len(t, calls, 2)

	assert.Equal(t, bus.QueueFetchRequestBatch, calls[0].Queue)
	assert.Equal(t, 2*time.Minute, calls[0].Expiration)
	batch, ok := calls[0].Payload.(dispatch.FetchRequestBatch)
	require.True(t, ok)
	assert.Equal(t, 120, batch.RateSeconds)
	require.Len(t, batch.Data, 1)
	assert.Equal(t, feed.URL, batch.Data[0].URL)

	assert.Equal(t, bus.QueueDeliverArticles, calls[1].Queue)
	assert.Equal(t, time.Hour, calls[1].Expiration)
	ev, ok := calls[1].Payload.(dispatch.DeliveryEvent)
	require.True(t, ok)
	assert.Equal(t, feed.ID, ev.Data.Feed.ID)
	assert.Equal(t, 50, ev.Data.ArticleDayLimit)
}

func TestScheduler_StartStop(t *testing.T) {
	var dispatched, enforced int32
	rates := &mocks.RateSourceMock{
		DistinctRatesFunc: func(ctx context.Context) ([]int, error) { return []int{60}, nil },
	}
	disp := &mocks.DispatcherMock{
		DispatchForRateFunc: func(ctx context.Context, rate int, onBatch dispatch.URLBatchHandler, onFeed dispatch.FeedHandler) error {
			atomic.AddInt32(&dispatched, 1)
			return nil
		},
	}
	enf := &mocks.EnforcerMock{
		EnforceFunc: func(ctx context.Context) error {
			atomic.AddInt32(&enforced, 1)
			return nil
		},
	}
	s := New(Params{
		Dispatcher:      disp,
		Rates:           rates,
		Enforcer:        enf,
		DefaultRate:     600,
		Tick:            10 * time.Millisecond,
		EnforceInterval: 10 * time.Millisecond,
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&dispatched) >= 1 && atomic.LoadInt32(&enforced) >= 2
	}, time.Second, 5*time.Millisecond)
	s.Stop()
}
