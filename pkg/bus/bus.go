package bus

import (
	"context"
	"time"
)

// queue names, direct queue addressing without an exchange
const (
	QueueFetchRequest        = "fetch-request"
	QueueFetchRequestBatch   = "fetch-request-batch"
	QueueDeliverArticles     = "deliver-articles"
	QueueURLFetchFailed      = "url-fetch-failed"
	QueueFeedRejected        = "feed-rejected"
	QueueDestinationRejected = "destination-rejected"
)

// Handler processes one raw message body. A non-nil error makes the broker
// redeliver the message; delivery is at-least-once.
type Handler func(ctx context.Context, body []byte) error

// Publisher sends JSON-serializable payloads to a queue with a per-message
// expiration. An expired message is dropped by the broker before delivery,
// which bounds how stale any consumed instruction can be.
type Publisher interface {
	Publish(ctx context.Context, queue string, payload any, expiration time.Duration) error
}

// Subscriber consumes a queue one message at a time, blocking until the
// context is canceled or the underlying connection fails
type Subscriber interface {
	Subscribe(ctx context.Context, queue string, h Handler) error
}
