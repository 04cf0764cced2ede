package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/item/domain/models"
)

type bookingRow struct {
	ID       int64     `db:"id"`
	BookerID int64     `db:"booker_id"`
	ItemID   int64     `db:"item_id"`
	ItemName string    `db:"item_name"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	Status   string    `db:"status"`
}

// BookingReader reads the bookings table for last/next and comment
// eligibility. It implements repositories.BookingReader.
type BookingReader struct {
	db  *database.Database
	log logger.Logger
}

func NewBookingReader(db *database.Database, log logger.Logger) *BookingReader {
	return &BookingReader{db: db, log: log.With("repository", "item_bookings")}
}

func (r *BookingReader) base() squirrel.SelectBuilder {
	return r.db.Builder.
		Select("b.id", "b.booker_id", "b.item_id", "i.name AS item_name", "b.start_date", "b.end_date", "b.status").
		From("bookings b").
		Join("items i ON i.id = b.item_id")
}

// FindByItem returns every booking of the item ordered by start ascending.
func (r *BookingReader) FindByItem(ctx context.Context, itemID int64) ([]models.BookingSummary, error) {
	return r.selectBookings(ctx, "find_by_item", r.base().
		Where(squirrel.Eq{"b.item_id": itemID}).
		OrderBy("b.start_date ASC", "b.id ASC"))
}

// FindByBookerAndItem returns the booker's bookings of the item except those
// in excludeStatus.
func (r *BookingReader) FindByBookerAndItem(ctx context.Context, bookerID, itemID int64, excludeStatus string) ([]models.BookingSummary, error) {
	return r.selectBookings(ctx, "find_by_booker_and_item", r.base().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID}).
		Where(squirrel.NotEq{"b.status": excludeStatus}).
		OrderBy("b.start_date ASC"))
}

func (r *BookingReader) selectBookings(ctx context.Context, name string, b squirrel.SelectBuilder) ([]models.BookingSummary, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", name, "error", err)
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	out := make([]models.BookingSummary, len(rows))
	for i, row := range rows {
		out[i] = models.BookingSummary{
			ID:       row.ID,
			BookerID: row.BookerID,
			ItemID:   row.ItemID,
			ItemName: row.ItemName,
			Start:    row.Start.UTC(),
			End:      row.End.UTC(),
			Status:   row.Status,
		}
	}
	return out, nil
}

// RequestReader implements repositories.RequestReader over the requests table.
type RequestReader struct {
	db *database.Database
}

func NewRequestReader(db *database.Database) *RequestReader {
	return &RequestReader{db: db}
}

// Exists reports whether an item request with id exists.
func (r *RequestReader) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowxContext(ctx, "SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check request exists: %w", err)
	}
	return exists, nil
}
