package events_test

import (
	"encoding/json"
	"testing"
	"time"

	pkgevents "github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/services/booking/domain/events"
)

var (
	_ pkgevents.Event = events.BookingCreatedEvent{}
	_ pkgevents.Event = events.BookingStatusChangedEvent{}
)

func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	return raw
}

func TestBookingCreatedEvent(t *testing.T) {
	now := time.Now()
	evt := events.NewBookingCreated(1, 2, 3, now, now.Add(time.Hour), now)
	if evt.Topic() != "booking.created" {
		t.Errorf("Topic() = %q", evt.Topic())
	}
	raw := jsonKeys(t, evt)
	for _, field := range []string{"event_id", "version", "booking_id", "item_id", "booker_id", "start", "end", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q", field)
		}
	}
}

func TestBookingStatusChangedEvent(t *testing.T) {
	evt := events.NewBookingStatusChanged(1, 2, "APPROVED", time.Now())
	if evt.Topic() != "booking.status_changed" {
		t.Errorf("Topic() = %q", evt.Topic())
	}
	if id, v := evt.Identity(); id != evt.EventID || v != 1 {
		t.Errorf("Identity() = (%v, %d)", id, v)
	}
	raw := jsonKeys(t, evt)
	for _, field := range []string{"event_id", "version", "booking_id", "item_id", "status", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q", field)
		}
	}
}
