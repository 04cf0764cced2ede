package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgevents "github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/services/item/domain/events"
)

var _ pkgevents.Event = events.ItemCreatedEvent{}

func TestNewItemCreated(t *testing.T) {
	at := time.Date(2025, 1, 15, 13, 0, 0, 0, time.FixedZone("X", 3600))
	evt := events.NewItemCreated(3, 9, "Drill", at)

	if evt.EventID == uuid.Nil {
		t.Fatal("expected event id to be set")
	}
	if evt.Version != 1 {
		t.Errorf("Version: got %d, want 1", evt.Version)
	}
	if evt.ItemID != 3 || evt.OwnerID != 9 || evt.Name != "Drill" {
		t.Errorf("unexpected payload: %+v", evt)
	}
	if !evt.OccurredAt.Equal(at) || evt.OccurredAt.Location() != time.UTC {
		t.Errorf("OccurredAt: got %v", evt.OccurredAt)
	}

	id, version := evt.Identity()
	if id != evt.EventID || version != evt.Version {
		t.Errorf("Identity() = (%v, %d)", id, version)
	}
	if evt.Topic() != events.TopicItemCreated {
		t.Errorf("Topic() = %q", evt.Topic())
	}
}

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(events.NewItemCreated(1, 2, "Widget", time.Now()))
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "owner_id", "name", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopicItemCreated_Value(t *testing.T) {
	if events.TopicItemCreated != "item.created" {
		t.Errorf("expected %q, got %q", "item.created", events.TopicItemCreated)
	}
}
