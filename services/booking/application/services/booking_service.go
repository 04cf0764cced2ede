package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/shareit/pkg/apperror"
	"github.com/ghuser/shareit/pkg/logger"
	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// CreateBookingInput carries a booking request.
type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// BookingService implements the booking lifecycle: request, owner decision
// and state-filtered listings.
type BookingService struct {
	bookings repositories.BookingRepository
	items    itemrepos.ItemRepository
	users    userrepos.UserRepository
	log      logger.Logger
	now      func() time.Time

	created metric.Int64Counter
	decided metric.Int64Counter
}

// NewBookingService wires a BookingService. Counters are registered on meter.
func NewBookingService(
	bookings repositories.BookingRepository,
	items itemrepos.ItemRepository,
	users userrepos.UserRepository,
	meter metric.Meter,
	log logger.Logger,
) (*BookingService, error) {
	created, err := meter.Int64Counter("shareit.bookings.created",
		metric.WithDescription("Bookings requested"))
	if err != nil {
		return nil, fmt.Errorf("register bookings.created counter: %w", err)
	}
	decided, err := meter.Int64Counter("shareit.bookings.decided",
		metric.WithDescription("Bookings approved or rejected by item owners"))
	if err != nil {
		return nil, fmt.Errorf("register bookings.decided counter: %w", err)
	}

	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		log:      log,
		now:      time.Now,
		created:  created,
		decided:  decided,
	}, nil
}

// Create books an available item for bookerID. Owners cannot book their own
// items; such attempts fail as if the item did not exist.
func (s *BookingService) Create(ctx context.Context, bookerID int64, in CreateBookingInput) (*models.BookingView, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, fmt.Errorf("get booker %d: %w", bookerID, err)
	}
	item, err := s.items.GetCurrent(ctx, in.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", in.ItemID, err)
	}
	if item.IsOwnedBy(bookerID) {
		return nil, bookingdomain.ErrOwnItem
	}
	if !item.Available {
		return nil, bookingdomain.ErrItemUnavailable
	}

	b, err := models.NewBooking(item.ID, bookerID, in.Start, in.End)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.created.Add(ctx, 1)
	s.log.InfoContext(ctx, "booking created", "booking_id", b.ID, "item_id", item.ID, "booker_id", bookerID)
	return &models.BookingView{Booking: b, Booker: booker, Item: item}, nil
}

// Decide approves or rejects a WAITING booking. Only the item owner may decide.
// A concurrent decision that lands first makes this one fail as already decided.
func (s *BookingService) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (*models.BookingView, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	item, err := s.items.GetCurrent(ctx, b.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", b.ItemID, err)
	}
	if !item.IsOwnedBy(ownerID) {
		return nil, bookingdomain.ErrNotItemOwner
	}

	expected := b.Version
	if err := b.Decide(approve); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateStatus(ctx, b, expected); err != nil {
		if errors.Is(err, bookingdomain.ErrVersionConflict) {
			return nil, s.lostRace(ctx, bookingID)
		}
		return nil, fmt.Errorf("update booking %d: %w", bookingID, err)
	}

	s.decided.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(b.Status))))
	s.log.InfoContext(ctx, "booking decided", "booking_id", b.ID, "status", b.Status)

	booker, err := s.users.GetByID(ctx, b.BookerID)
	if err != nil {
		return nil, fmt.Errorf("get booker %d: %w", b.BookerID, err)
	}
	return &models.BookingView{Booking: b, Booker: booker, Item: item}, nil
}

// Get returns a booking visible to its booker or the item owner.
func (s *BookingService) Get(ctx context.Context, userID, bookingID int64) (*models.BookingView, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", bookingID, err)
	}
	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", b.ItemID, err)
	}
	if b.BookerID != userID && !item.IsOwnedBy(userID) {
		return nil, bookingdomain.ErrNotParticipant
	}
	booker, err := s.users.GetByID(ctx, b.BookerID)
	if err != nil {
		return nil, fmt.Errorf("get booker %d: %w", b.BookerID, err)
	}
	return &models.BookingView{Booking: b, Booker: booker, Item: item}, nil
}

// ListByBooker returns bookings made by userID in the given state. The state
// is checked before anything else.
func (s *BookingService) ListByBooker(ctx context.Context, userID int64, state string, opts repositories.QueryOpts) ([]*models.BookingView, error) {
	return s.list(ctx, userID, state, opts, s.bookings.FindByBooker)
}

// ListByOwner returns bookings of items owned by userID in the given state.
func (s *BookingService) ListByOwner(ctx context.Context, userID int64, state string, opts repositories.QueryOpts) ([]*models.BookingView, error) {
	return s.list(ctx, userID, state, opts, s.bookings.FindByOwner)
}

type finder func(ctx context.Context, userID int64, f repositories.Filter) ([]*models.Booking, error)

func (s *BookingService) list(ctx context.Context, userID int64, rawState string, opts repositories.QueryOpts, find finder) ([]*models.BookingView, error) {
	state, err := models.ParseState(rawState)
	if err != nil {
		return nil, err
	}
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user %d: %w", userID, err)
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}

	bookings, err := find(ctx, userID, repositories.Filter{State: state, Now: s.now(), QueryOpts: opts})
	if err != nil {
		return nil, fmt.Errorf("list %s bookings of user %d: %w", state, userID, err)
	}
	return s.resolve(ctx, bookings)
}

// resolve attaches bookers and items, fetching each distinct one once.
// Users and items can be deleted without their bookings; such dangling
// bookings are left out of the listing.
func (s *BookingService) resolve(ctx context.Context, bookings []*models.Booking) ([]*models.BookingView, error) {
	users := make(map[int64]*usermodels.User)
	items := make(map[int64]*itemmodels.Item)

	out := make([]*models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		booker, ok := users[b.BookerID]
		if !ok {
			u, err := s.users.GetByID(ctx, b.BookerID)
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return nil, fmt.Errorf("get booker %d: %w", b.BookerID, err)
			}
			booker, users[b.BookerID] = u, u
		}
		item, ok := items[b.ItemID]
		if !ok {
			it, err := s.items.GetByID(ctx, b.ItemID)
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return nil, fmt.Errorf("get item %d: %w", b.ItemID, err)
			}
			item, items[b.ItemID] = it, it
		}
		if booker == nil || item == nil {
			s.log.WarnContext(ctx, "skipping booking with deleted booker or item",
				"booking_id", b.ID, "booker_id", b.BookerID, "item_id", b.ItemID)
			continue
		}
		out = append(out, &models.BookingView{Booking: b, Booker: booker, Item: item})
	}
	return out, nil
}

// lostRace reports why a compare-and-set failed using the current row.
func (s *BookingService) lostRace(ctx context.Context, bookingID int64) error {
	current, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("reload booking %d: %w", bookingID, err)
	}
	if current.Status == models.StatusRejected {
		return bookingdomain.ErrAlreadyRejected
	}
	return bookingdomain.ErrAlreadyApproved
}
