package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewItem(t *testing.T) {
	rid := int64(5)
	item := NewItem(7, ItemName("Drill"), "  cordless ", true, &rid)

	if item.ID != 0 {
		t.Fatalf("expected unsaved item, got ID %d", item.ID)
	}
	if item.OwnerID != 7 || item.Description != "cordless" || !item.Available {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.RequestID == nil || *item.RequestID != 5 {
		t.Fatalf("expected request id 5, got %v", item.RequestID)
	}
	if !item.IsOwnedBy(7) || item.IsOwnedBy(8) {
		t.Fatal("ownership check is wrong")
	}
}

func TestItem_Apply(t *testing.T) {
	tests := []struct {
		name        string
		patch       ItemPatch
		want        Item
		wantChanged bool
		wantErr     bool
	}{
		{
			name:  "empty patch",
			patch: ItemPatch{},
			want:  Item{Name: "Drill", Description: "cordless", Available: true},
		},
		{
			name:        "name only",
			patch:       ItemPatch{Name: strPtr("Hammer")},
			want:        Item{Name: "Hammer", Description: "cordless", Available: true},
			wantChanged: true,
		},
		{
			name:  "blank strings ignored",
			patch: ItemPatch{Name: strPtr("  "), Description: strPtr("")},
			want:  Item{Name: "Drill", Description: "cordless", Available: true},
		},
		{
			name:        "availability false is applied",
			patch:       ItemPatch{Available: boolPtr(false)},
			want:        Item{Name: "Drill", Description: "cordless", Available: false},
			wantChanged: true,
		},
		{
			name:    "overlong name rejected",
			patch:   ItemPatch{Name: strPtr(string(make([]byte, 300)) + "x")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{ID: 1, OwnerID: 2, Name: "Drill", Description: "cordless", Available: true}
			changed, err := item.Apply(tt.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if item.Name != tt.want.Name || item.Description != tt.want.Description || item.Available != tt.want.Available {
				t.Errorf("got %+v, want %+v", item, tt.want)
			}
		})
	}
}

func TestNewComment(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))
	c, ok := NewComment(1, 2, "Bob", "  great drill ", now)
	if !ok {
		t.Fatal("expected valid comment")
	}
	if c.Text != "great drill" || c.Created.Location() != time.UTC {
		t.Fatalf("unexpected comment: %+v", c)
	}

	if _, ok := NewComment(1, 2, "Bob", "   ", now); ok {
		t.Fatal("expected blank comment to be rejected")
	}
}
