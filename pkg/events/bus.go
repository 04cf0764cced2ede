// Package events is the domain event bus: a Watermill SQL transport over the
// application's PostgreSQL database.
//
// The server publishes inside the business transaction (PublishInTx). In
// outbox mode those messages land in a forwarder queue and a daemon relays
// them to their topics, so an event exists only if its write committed. The
// worker subscribes with one consumer group per service, which load-balances
// each topic across worker instances.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/logger"
)

const (
	outboxTopic     = "shareit_outbox"
	outboxGroup     = "shareit-outbox-relay"
	shutdownTimeout = 30 * time.Second
)

// Mode selects how published messages reach their topic.
type Mode int

const (
	// Direct writes messages straight to the topic table.
	Direct Mode = iota
	// Outbox envelopes messages into the forwarder queue; StartForwarder
	// relays them to their topics.
	Outbox
)

// EventBus publishes and consumes domain events through PostgreSQL.
type EventBus struct {
	db         *sql.DB
	mode       Mode
	group      string
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	retry      RetryPolicy
	log        logger.Logger
	wlog       watermill.LoggerAdapter
	wg         sync.WaitGroup
}

// NewEventBus opens a direct-mode bus. The worker uses it to subscribe.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return Open(cfg.DefinitionDatabaseURL, consumerGroup(cfg), Direct, log)
}

// NewEventBusWithForwarder opens an outbox-mode bus. Call StartForwarder
// before serving traffic.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return Open(cfg.DefinitionDatabaseURL, consumerGroup(cfg), Outbox, log)
}

func consumerGroup(cfg *config.Config) string {
	return cfg.ServiceName + "-worker"
}

// Open connects to dsn and prepares the publisher and the subscriber for
// group. Watermill creates its tables on first use.
func Open(dsn, group string, mode Mode, log logger.Logger) (*EventBus, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	q := &EventBus{
		db:    db,
		mode:  mode,
		group: group,
		retry: DefaultRetry,
		log:   log.With("component", "event_bus"),
		wlog:  &watermillLogger{log: log},
	}

	q.publisher, err = q.sqlPublisher(db, true)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	q.subscriber, err = q.sqlSubscriber(group)
	if err != nil {
		_ = q.publisher.Close()
		_ = db.Close()
		return nil, err
	}
	return q, nil
}

// sqlPublisher returns a publisher writing through exec, enveloped for the
// forwarder in outbox mode.
func (q *EventBus) sqlPublisher(exec watermillsql.ContextExecutor, initSchema bool) (message.Publisher, error) {
	pub, err := watermillsql.NewPublisher(exec, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	if q.mode == Outbox {
		return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: outboxTopic}), nil
	}
	return pub, nil
}

func (q *EventBus) sqlSubscriber(group string) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(q.db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber for %s: %w", group, err)
	}
	return sub, nil
}

// StartForwarder runs the outbox relay until ctx ends or Close is called, and
// returns once the relay is consuming. Only valid once on an outbox-mode bus.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if q.mode != Outbox {
		return errors.New("events: forwarder requires an outbox-mode bus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	queue, err := q.sqlSubscriber(outboxGroup)
	if err != nil {
		return err
	}
	// Relayed messages go straight to their topic, never back into the queue.
	target, err := watermillsql.NewPublisher(q.db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: true,
	}, q.wlog)
	if err != nil {
		_ = queue.Close()
		return fmt.Errorf("events: new relay publisher: %w", err)
	}

	fwd, err := forwarder.NewForwarder(queue, target, q.wlog, forwarder.Config{ForwarderTopic: outboxTopic})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: new forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "outbox relay stopped", "error", err)
			return
		}
		q.log.InfoContext(ctx, "outbox relay stopped")
	}()

	select {
	case <-fwd.Running():
		q.log.InfoContext(ctx, "outbox relay running", "queue", outboxTopic)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}

// Ping checks the bus database connection.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops consuming, waits up to 30 s for in-flight handlers and the
// relay, then releases the publisher and the connection.
func (q *EventBus) Close() error {
	var errs []error
	if err := q.subscriber.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close subscriber: %w", err))
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			errs = append(errs, fmt.Errorf("events: close forwarder: %w", err))
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("timed out waiting for in-flight event handlers")
	}

	if err := q.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close publisher: %w", err))
	}
	if err := q.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: close db: %w", err))
	}
	return errors.Join(errs...)
}
