package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Metadata keys set on every domain event message.
const (
	MetaEventID      = "event_id"
	MetaEventVersion = "event_version"
)

// Event is a domain event that knows its topic and identity. Payloads are
// encoded as JSON.
type Event interface {
	Topic() string
	Identity() (id uuid.UUID, version int)
}

// TxPublisher publishes events inside an open SQL transaction so the event is
// stored only if the business write commits. *EventBus implements it;
// repositories accept a nil TxPublisher and skip publishing.
type TxPublisher interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, evts ...Event) error
}

// NewMessage encodes evt into a Watermill message carrying the event
// identity in metadata.
func NewMessage(evt Event) (*message.Message, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("events: marshal %s: %w", evt.Topic(), err)
	}
	id, version := evt.Identity()
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetaEventID, id.String())
	msg.Metadata.Set(MetaEventVersion, strconv.Itoa(version))
	return msg, nil
}

// PublishInTx writes evts to the outbox through tx, one message per event in
// the order given. Each message carries the caller's trace context.
func (q *EventBus) PublishInTx(ctx context.Context, tx *sql.Tx, evts ...Event) error {
	if len(evts) == 0 {
		return nil
	}
	pub, err := q.sqlPublisher(tx, false)
	if err != nil {
		return err
	}
	for _, evt := range evts {
		msg, err := NewMessage(evt)
		if err != nil {
			return err
		}
		msgs := []*message.Message{msg}
		injectTrace(ctx, msgs)
		if err := pub.Publish(evt.Topic(), msgs...); err != nil { //nolint:contextcheck
			return fmt.Errorf("events: publish to %s in tx: %w", evt.Topic(), err)
		}
	}
	return nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("events: decode %s: %w", msg.UUID, err)
	}
	return v, nil
}
