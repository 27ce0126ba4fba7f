package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQP implements Publisher and Subscriber over a RabbitMQ connection.
// Publishing shares one channel guarded by a mutex, channels are not safe for
// concurrent use. Each subscription gets its own channel with prefetch 1.
type AMQP struct {
	conn  *amqp.Connection
	pubCh *amqp.Channel
	mu    sync.Mutex // guards pubCh

	declMu   sync.Mutex
	declared map[string]struct{}
}

// NewAMQP dials the broker with backoff and opens the publishing channel
func NewAMQP(ctx context.Context, uri string) (*AMQP, error) {
	var conn *amqp.Connection
	retrier := repeater.NewBackoff(5, time.Second, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		var e error
		conn, e = amqp.Dial(uri)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open publish channel: %w", err)
	}

	return &AMQP{conn: conn, pubCh: ch, declared: map[string]struct{}{}}, nil
}

// Publish marshals the payload to JSON and sends it to the queue with the
// given expiration. Zero expiration means the message never expires.
func (a *AMQP) Publish(ctx context.Context, queue string, payload any, expiration time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for %s: %w", queue, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.declarePub(queue); err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now(),
		Expiration:  expirationMs(expiration),
		Body:        body,
	}
	if err := a.pubCh.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", queue, err)
	}
	return nil
}

// Subscribe consumes the queue one message at a time, acking on handler
// success and nacking with requeue on failure. Blocks until ctx is canceled
// or the delivery channel closes.
func (a *AMQP) Subscribe(ctx context.Context, queue string, h Handler) error {
	ch, err := a.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel for %s: %w", queue, err)
	}
	defer func() {
		if e := ch.Close(); e != nil {
			lgr.Printf("[WARN] failed to close channel for %s: %v", queue, e)
		}
	}()

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos for %s: %w", queue, err)
	}
	if err := declare(ch, queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", queue, err)
	}
	lgr.Printf("[INFO] subscribed to %s", queue)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed for %s", queue)
			}
			if err := h(ctx, msg.Body); err != nil {
				lgr.Printf("[WARN] handler failed on %s, requeueing: %v", queue, err)
				if e := msg.Nack(false, true); e != nil {
					lgr.Printf("[ERROR] nack failed on %s: %v", queue, e)
				}
				continue
			}
			if e := msg.Ack(false); e != nil {
				lgr.Printf("[ERROR] ack failed on %s: %v", queue, e)
			}
		}
	}
}

// Close shuts down the publish channel and the connection
func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.pubCh.Close(); err != nil {
		lgr.Printf("[WARN] failed to close publish channel: %v", err)
	}
	return a.conn.Close()
}

// declarePub declares a queue on the publish channel once, caller holds mu
func (a *AMQP) declarePub(queue string) error {
	a.declMu.Lock()
	defer a.declMu.Unlock()
	if _, ok := a.declared[queue]; ok {
		return nil
	}
	if err := declare(a.pubCh, queue); err != nil {
		return err
	}
	a.declared[queue] = struct{}{}
	return nil
}

func declare(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return nil
}

// expirationMs renders a duration as the per-message TTL string the broker
// expects, empty for no expiration
func expirationMs(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return strconv.FormatInt(d.Milliseconds(), 10)
}
