package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/logger"
	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	domainevents "github.com/ghuser/shareit/services/booking/domain/events"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
)

var bookingColumns = []string{"b.id", "b.item_id", "b.booker_id", "b.start_date", "b.end_date", "b.status", "b.version"}

type bookingRow struct {
	ID       int64     `db:"id"`
	ItemID   int64     `db:"item_id"`
	BookerID int64     `db:"booker_id"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	Status   string    `db:"status"`
	Version  int       `db:"version"`
}

// BookingRepository implements repositories.BookingRepository against PostgreSQL.
type BookingRepository struct {
	db  *database.Database
	bus events.TxPublisher
	log logger.Logger
}

// NewBookingRepository returns a BookingRepository. A nil publisher disables
// booking events.
func NewBookingRepository(db *database.Database, bus events.TxPublisher, log logger.Logger) *BookingRepository {
	return &BookingRepository{db: db, bus: bus, log: log.With("repository", "booking")}
}

// Save inserts a booking and publishes BookingCreatedEvent within the same transaction.
func (r *BookingRepository) Save(ctx context.Context, b *models.Booking) error {
	query, args, err := r.db.Builder.
		Insert("bookings").
		Columns("item_id", "booker_id", "start_date", "end_date", "status", "version").
		Values(b.ItemID, b.BookerID, b.Start, b.End, string(b.Status), b.Version).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&b.ID); err != nil {
			r.log.WarnContext(ctx, "failed query execute", "query", "insert", "error", err)
			return fmt.Errorf("insert booking: %w", err)
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.NewBookingCreated(b.ID, b.ItemID, b.BookerID, b.Start, b.End, time.Now())
		if err := r.bus.PublishInTx(ctx, tx.Tx, evt); err != nil {
			return fmt.Errorf("publish booking created: %w", err)
		}
		return nil
	})
}

// GetByID fetches one booking.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query, args, err := r.db.Builder.
		Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking: %w", err)
	}

	var row bookingRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, bookingdomain.ErrBookingNotFound
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "get", "booking_id", id, "error", err)
		return nil, fmt.Errorf("query booking: %w", err)
	}
	return rowToBooking(row), nil
}

// UpdateStatus is a compare-and-set on (id, version, WAITING).
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *models.Booking, expectedVersion int) error {
	query, args, err := r.db.Builder.
		Update("bookings").
		Set("status", string(b.Status)).
		Set("version", b.Version).
		Where(squirrel.Eq{
			"id":      b.ID,
			"version": expectedVersion,
			"status":  string(models.StatusWaiting),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			r.log.WarnContext(ctx, "failed query execute", "query", "update_status", "booking_id", b.ID, "error", err)
			return fmt.Errorf("update booking status: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update booking rows affected: %w", err)
		}
		if n == 0 {
			return bookingdomain.ErrVersionConflict
		}
		if r.bus == nil {
			return nil
		}
		evt := domainevents.NewBookingStatusChanged(b.ID, b.ItemID, string(b.Status), time.Now())
		if err := r.bus.PublishInTx(ctx, tx.Tx, evt); err != nil {
			return fmt.Errorf("publish booking status changed: %w", err)
		}
		return nil
	})
}

// FindByBooker lists bookings made by bookerID.
func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID int64, f repositories.Filter) ([]*models.Booking, error) {
	b := r.db.Builder.
		Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.selectBookings(ctx, "find_by_booker", applyFilter(b, f))
}

// FindByOwner lists bookings of items owned by ownerID.
func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID int64, f repositories.Filter) ([]*models.Booking, error) {
	b := r.db.Builder.
		Select(bookingColumns...).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.selectBookings(ctx, "find_by_owner", applyFilter(b, f))
}

// applyFilter adds the state predicate, ordering and page window.
func applyFilter(b squirrel.SelectBuilder, f repositories.Filter) squirrel.SelectBuilder {
	switch f.State {
	case models.StateCurrent:
		b = b.Where(squirrel.LtOrEq{"b.start_date": f.Now}).Where(squirrel.GtOrEq{"b.end_date": f.Now})
	case models.StatePast:
		b = b.Where(squirrel.Lt{"b.end_date": f.Now})
	case models.StateFuture:
		b = b.Where(squirrel.Gt{"b.start_date": f.Now})
	case models.StateWaiting:
		b = b.Where(squirrel.Eq{"b.status": string(models.StatusWaiting)})
	case models.StateRejected:
		b = b.Where(squirrel.Eq{"b.status": string(models.StatusRejected)})
	}

	if f.State.Ascending() {
		b = b.OrderBy("b.start_date ASC", "b.id ASC")
	} else {
		b = b.OrderBy("b.start_date DESC", "b.id DESC")
	}
	return b.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))
}

func (r *BookingRepository) selectBookings(ctx context.Context, name string, b squirrel.SelectBuilder) ([]*models.Booking, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", name, "error", err)
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	r.log.DebugContext(ctx, "success query execute", "query", name, "count", len(rows))

	out := make([]*models.Booking, len(rows))
	for i, row := range rows {
		out[i] = rowToBooking(row)
	}
	return out, nil
}

func rowToBooking(row bookingRow) *models.Booking {
	return &models.Booking{
		ID:       row.ID,
		ItemID:   row.ItemID,
		BookerID: row.BookerID,
		Start:    row.Start.UTC(),
		End:      row.End.UTC(),
		Status:   models.Status(row.Status),
		Version:  row.Version,
	}
}
