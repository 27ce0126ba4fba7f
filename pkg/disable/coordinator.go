package disable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/Imsleepyyy/MonitoRSS/pkg/bus"
	"github.com/Imsleepyyy/MonitoRSS/pkg/domain"
	"github.com/Imsleepyyy/MonitoRSS/pkg/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/subscriber.go -pkg mocks -skip-ensure -fmt goimports . Subscriber

// Store is the guarded-update surface the coordinator mutates. Every write
// carries a disablement-absence guard, which is the only concurrency control
// the coordinator relies on.
type Store interface {
	GetFeed(ctx context.Context, id string) (*domain.Feed, error)
	DisableFeedsByURL(ctx context.Context, url, code string, health domain.HealthStatus) (int64, error)
	DisableFeed(ctx context.Context, id, code string) (bool, error)
	DisableDestination(ctx context.Context, feedID string, index int, destinationID, code string) (bool, error)
}

// Subscriber consumes a queue one message at a time
type Subscriber interface {
	Subscribe(ctx context.Context, queue string, h bus.Handler) error
}

// Coordinator reacts to outcome events from downstream workers and applies
// idempotent disable transitions. Handlers are independent, share no mutable
// state and are safe under at-least-once redelivery: a replayed event hits
// the absence guard and becomes a no-op.
type Coordinator struct {
	store Store
}

// NewCoordinator creates a disablement coordinator over the given store
func NewCoordinator(st Store) *Coordinator {
	return &Coordinator{store: st}
}

// Run subscribes all outcome-event handlers and blocks until the context is
// canceled or a subscription fails
func (c *Coordinator) Run(ctx context.Context, sub Subscriber) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sub.Subscribe(ctx, bus.QueueURLFetchFailed, c.HandleFetchFailure) })
	g.Go(func() error { return sub.Subscribe(ctx, bus.QueueFeedRejected, c.HandleFeedRejection) })
	g.Go(func() error { return sub.Subscribe(ctx, bus.QueueDestinationRejected, c.HandleDestinationRejection) })
	return g.Wait()
}

type fetchFailedEvent struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

// HandleFetchFailure disables every enabled feed sharing the failing URL and
// marks them failed
func (c *Coordinator) HandleFetchFailure(ctx context.Context, body []byte) error {
	var ev fetchFailedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		lgr.Printf("[WARN] dropping malformed fetch-failed event: %v", err)
		return nil
	}
	if ev.Data.URL == "" {
		lgr.Printf("[WARN] dropping fetch-failed event without url")
		return nil
	}

	n, err := c.store.DisableFeedsByURL(ctx, ev.Data.URL, domain.DisabledCodeFetchFailures, domain.HealthFailed)
	if err != nil {
		return fmt.Errorf("disable feeds for url %s: %w", ev.Data.URL, err)
	}
	lgr.Printf("[INFO] disabled %d feeds for failing url %s", n, ev.Data.URL)
	return nil
}

type feedRejectedEvent struct {
	Data struct {
		RejectedCode string `json:"rejectedCode"`
		Feed         struct {
			ID string `json:"id"`
		} `json:"feed"`
	} `json:"data"`
}

// HandleFeedRejection disables one feed with the code mapped from the worker's
// reject code. A feed that no longer exists is a logged no-op.
func (c *Coordinator) HandleFeedRejection(ctx context.Context, body []byte) error {
	var ev feedRejectedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		lgr.Printf("[WARN] dropping malformed feed-rejected event: %v", err)
		return nil
	}

	code, ok := disabledCodeFor(ev.Data.RejectedCode)
	if !ok {
		lgr.Printf("[ERROR] unmapped rejected code %q for feed %s, using %q", ev.Data.RejectedCode, ev.Data.Feed.ID, code)
	}

	if _, err := c.store.GetFeed(ctx, ev.Data.Feed.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			lgr.Printf("[INFO] feed %s gone, skipping rejection event", ev.Data.Feed.ID)
			return nil
		}
		return fmt.Errorf("look up feed %s: %w", ev.Data.Feed.ID, err)
	}

	matched, err := c.store.DisableFeed(ctx, ev.Data.Feed.ID, code)
	if err != nil {
		return fmt.Errorf("disable feed %s: %w", ev.Data.Feed.ID, err)
	}
	if !matched {
		lgr.Printf("[DEBUG] feed %s already disabled, rejection ignored", ev.Data.Feed.ID)
		return nil
	}
	lgr.Printf("[INFO] disabled feed %s with code %q", ev.Data.Feed.ID, code)
	return nil
}

type destinationRejectedEvent struct {
	Data struct {
		RejectedCode string `json:"rejectedCode"`
		Medium       struct {
			ID string `json:"id"`
		} `json:"medium"`
		Feed struct {
			ID string `json:"id"`
		} `json:"feed"`
	} `json:"data"`
}

// HandleDestinationRejection disables the matching destination of one feed.
// All kinds are scanned for the id, duplicate ids across kinds are each
// disabled. A stale positional index makes the guarded write a no-op, the
// destination is picked up again on the next relevant event.
func (c *Coordinator) HandleDestinationRejection(ctx context.Context, body []byte) error {
	var ev destinationRejectedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		lgr.Printf("[WARN] dropping malformed destination-rejected event: %v", err)
		return nil
	}

	code, ok := disabledCodeFor(ev.Data.RejectedCode)
	if !ok {
		lgr.Printf("[ERROR] unmapped rejected code %q for destination %s, using %q",
			ev.Data.RejectedCode, ev.Data.Medium.ID, code)
	}

	feed, err := c.store.GetFeed(ctx, ev.Data.Feed.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			lgr.Printf("[INFO] feed %s gone, skipping destination rejection", ev.Data.Feed.ID)
			return nil
		}
		return fmt.Errorf("look up feed %s: %w", ev.Data.Feed.ID, err)
	}

	found := false
	for i := range feed.Destinations {
		dest := &feed.Destinations[i]
		if dest.ID != ev.Data.Medium.ID {
			continue
		}
		found = true
		matched, err := c.store.DisableDestination(ctx, feed.ID, i, dest.ID, code)
		if err != nil {
			return fmt.Errorf("disable destination %s on feed %s: %w", dest.ID, feed.ID, err)
		}
		if !matched {
			lgr.Printf("[DEBUG] destination %s on feed %s moved or already disabled, skipped", dest.ID, feed.ID)
			continue
		}
		lgr.Printf("[INFO] disabled %s destination %s on feed %s with code %q", dest.Kind, dest.ID, feed.ID, code)
	}
	if !found {
		lgr.Printf("[INFO] destination %s not found on feed %s, skipping", ev.Data.Medium.ID, feed.ID)
	}
	return nil
}
