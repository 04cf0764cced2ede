package main

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/logger"
	bookingEvents "github.com/ghuser/shareit/services/booking/domain/events"
	itemEvents "github.com/ghuser/shareit/services/item/domain/events"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/cached"
)

type itemGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Item, error)
}

// handleItemCreated warms the item cache from the committed row so the first
// GET after creation is a hit. The generation is read before the row, so an
// update that lands in between wins over the warm-up. Handlers must be
// idempotent: the bus retries up to 3x on failure.
func handleItemCreated(items itemGetter, c cached.ItemCache, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[itemEvents.ItemCreatedEvent](msg)
		if err != nil {
			return err
		}

		// Cache warming is best-effort; log but do not fail the handler.
		gen, err := c.Generation(ctx, evt.ItemID)
		if err != nil {
			log.WarnContext(ctx, "cache warm skipped, generation unavailable", "item_id", evt.ItemID, "error", err)
			return nil
		}
		item, err := items.GetByID(ctx, evt.ItemID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				log.WarnContext(ctx, "item from item.created no longer exists", "item_id", evt.ItemID)
				return nil
			}
			return err
		}

		if cached.Fill(ctx, c, item, gen, log) {
			log.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID, "owner_id", evt.OwnerID)
		}
		return nil
	}
}

// handleBookingCreated writes an audit line per new booking.
func handleBookingCreated(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[bookingEvents.BookingCreatedEvent](msg)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "audit: booking created",
			"booking_id", evt.BookingID,
			"item_id", evt.ItemID,
			"booker_id", evt.BookerID,
			"start", evt.Start,
			"end", evt.End,
		)
		return nil
	}
}

// handleBookingStatusChanged writes an audit line per owner decision.
func handleBookingStatusChanged(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[bookingEvents.BookingStatusChangedEvent](msg)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "audit: booking decided",
			"booking_id", evt.BookingID,
			"item_id", evt.ItemID,
			"status", evt.Status,
		)
		return nil
	}
}
