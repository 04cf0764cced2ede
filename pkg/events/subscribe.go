package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/shareit/pkg/logger"
)

// Handler consumes one message. Returning an error triggers a retry.
type Handler func(ctx context.Context, msg *message.Message) error

// RetryPolicy bounds how often a failing handler is re-run for one message.
// The delay doubles after each failed attempt.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry runs a handler at most 3 times, waiting 1 s then 2 s.
var DefaultRetry = RetryPolicy{Attempts: 3, BaseDelay: time.Second}

// Run calls h until it succeeds, the attempts are spent, or ctx ends.
func (p RetryPolicy) Run(ctx context.Context, msg *message.Message, h Handler, log logger.Logger) error {
	attempts := max(p.Attempts, 1)
	delay := p.BaseDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = h(ctx, msg); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		log.WarnContext(ctx, "event handler failed, retrying",
			"attempt", attempt,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d attempts: %w", attempts, err)
}

// Subscribe consumes topic in the background. Each handler call runs with the
// publisher's trace context restored and topic/event_id bound for logging. Success acks the message; exhausting
// the retry policy nacks it and reports the error on the returned channel,
// which the caller must drain. Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, h func(context.Context, *message.Message) error) (<-chan error, error) {
	msgs, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)
		for msg := range msgs {
			msgCtx := logger.ContextWith(extractTrace(ctx, msg),
				"topic", topic, "event_id", msg.Metadata.Get(MetaEventID))
			if err := q.retry.Run(msgCtx, msg, h, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "subscriber error channel full, dropping error", "error", err)
				}
				continue
			}
			msg.Ack()
		}
	}()
	return errCh, nil
}

// injectTrace copies the W3C trace context of ctx into every message.
func injectTrace(ctx context.Context, msgs []*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Metadata))
}
