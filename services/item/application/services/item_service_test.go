package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/shareit/pkg/logger"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
	"github.com/ghuser/shareit/services/item/infrastructure/persistence/memory"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
	usermemory "github.com/ghuser/shareit/services/user/infrastructure/persistence/memory"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *ItemService
	bookings *memory.BookingReader
	owner    *usermodels.User
	booker   *usermodels.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	users := usermemory.NewUserRepository()
	owner := &usermodels.User{Name: "Ann", Email: "ann@example.com"}
	booker := &usermodels.User{Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, users.Save(ctx, owner))
	require.NoError(t, users.Save(ctx, booker))

	bookings := memory.NewBookingReader()
	svc := NewItemService(
		memory.NewItemRepository(),
		memory.NewCommentRepository(),
		bookings,
		memory.NewRequestReader(7),
		users,
		logger.Nop(),
	)
	svc.now = func() time.Time { return testNow }
	return &fixture{svc: svc, bookings: bookings, owner: owner, booker: booker}
}

func (f *fixture) drill(t *testing.T) *models.Item {
	t.Helper()
	item, err := f.svc.Create(context.Background(), f.owner.ID, CreateItemInput{
		Name: "Drill", Description: "Cordless drill", Available: true,
	})
	require.NoError(t, err)
	return item
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

func TestItemService_Create(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.drill(t)
	assert.NotZero(t, item.ID)
	assert.Equal(t, f.owner.ID, item.OwnerID)

	t.Run("unknown owner", func(t *testing.T) {
		_, err := f.svc.Create(ctx, 99, CreateItemInput{Name: "X", Description: "y", Available: true})
		assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
	})

	t.Run("known request", func(t *testing.T) {
		got, err := f.svc.Create(ctx, f.owner.ID, CreateItemInput{Name: "Saw", Description: "hand saw", RequestID: int64Ptr(7)})
		require.NoError(t, err)
		assert.Equal(t, int64(7), *got.RequestID)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.owner.ID, CreateItemInput{Name: "Saw", Description: "hand saw", RequestID: int64Ptr(8)})
		assert.ErrorIs(t, err, itemdomain.ErrRequestNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.owner.ID, CreateItemInput{Name: " ", Description: "y"})
		assert.ErrorIs(t, err, itemdomain.ErrInvalidItemName)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.owner.ID, CreateItemInput{Name: "X", Description: " "})
		assert.ErrorIs(t, err, itemdomain.ErrInvalidItem)
	})
}

func TestItemService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.drill(t)

	got, err := f.svc.Update(ctx, f.owner.ID, item.ID, models.ItemPatch{
		Name:      strPtr("  "),
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ItemName("Drill"), got.Name, "blank name must not overwrite")
	assert.False(t, got.Available)

	_, err = f.svc.Update(ctx, f.booker.ID, item.ID, models.ItemPatch{Name: strPtr("Mine")})
	assert.ErrorIs(t, err, itemdomain.ErrNotOwner)

	_, err = f.svc.Update(ctx, 99, item.ID, models.ItemPatch{})
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)

	_, err = f.svc.Update(ctx, f.owner.ID, 99, models.ItemPatch{})
	assert.ErrorIs(t, err, itemdomain.ErrItemNotFound)
}

// laggingItems answers GetByID with an old copy of one item, the way a cache
// that missed an invalidation would.
type laggingItems struct {
	repositories.ItemRepository
	snapshot models.Item
}

func (l laggingItems) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if id == l.snapshot.ID {
		it := l.snapshot
		return &it, nil
	}
	return l.ItemRepository.GetByID(ctx, id)
}

func TestItemService_Update_StartsFromCommittedRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.drill(t)
	store := f.svc.items

	_, err := f.svc.Update(ctx, f.owner.ID, item.ID, models.ItemPatch{Available: boolPtr(false)})
	require.NoError(t, err)

	f.svc.items = laggingItems{ItemRepository: store, snapshot: *item}
	_, err = f.svc.Update(ctx, f.owner.ID, item.ID, models.ItemPatch{Name: strPtr("Hammer drill")})
	require.NoError(t, err)

	got, err := store.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ItemName("Hammer drill"), got.Name)
	assert.False(t, got.Available, "an old copy must not resurrect availability")
}

func TestItemService_GetByID_LastNextOnlyForOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.drill(t)

	day := 24 * time.Hour
	for i, offset := range []time.Duration{-2 * day, day, 3 * day} {
		f.bookings.Add(models.BookingSummary{
			ID: int64(i + 1), ItemID: item.ID, BookerID: f.booker.ID,
			Start: testNow.Add(offset), End: testNow.Add(offset + time.Hour), Status: "APPROVED",
		})
	}

	owned, err := f.svc.GetByID(ctx, item.ID, f.owner.ID)
	require.NoError(t, err)
	require.NotNil(t, owned.LastBooking)
	require.NotNil(t, owned.NextBooking)
	assert.Equal(t, int64(1), owned.LastBooking.ID)
	assert.Equal(t, int64(2), owned.NextBooking.ID)
	assert.NotNil(t, owned.Comments)

	other, err := f.svc.GetByID(ctx, item.ID, f.booker.ID)
	require.NoError(t, err)
	assert.Nil(t, other.LastBooking)
	assert.Nil(t, other.NextBooking)

	_, err = f.svc.GetByID(ctx, 99, f.owner.ID)
	assert.ErrorIs(t, err, itemdomain.ErrItemNotFound)
}

func TestItemService_ListByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.drill(t)
	second := f.drill(t)
	_, err := f.svc.Create(ctx, f.booker.ID, CreateItemInput{Name: "Ladder", Description: "tall", Available: true})
	require.NoError(t, err)

	list, err := f.svc.ListByOwner(ctx, f.owner.ID, repositories.QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].Item.ID)
	assert.Equal(t, second.ID, list[1].Item.ID)

	page, err := f.svc.ListByOwner(ctx, f.owner.ID, repositories.QueryOpts{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].Item.ID)

	_, err = f.svc.ListByOwner(ctx, 99, repositories.QueryOpts{Limit: 10})
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}

func TestItemService_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.drill(t)
	_, err := f.svc.Create(ctx, f.owner.ID, CreateItemInput{Name: "Hidden drill", Description: "off", Available: false})
	require.NoError(t, err)

	for _, text := range []string{"", "   "} {
		got, err := f.svc.Search(ctx, text, repositories.QueryOpts{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	}

	got, err := f.svc.Search(ctx, "CORDLESS", repositories.QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, item.ID, got[0].ID)
}

func TestItemService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("never booked", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		_, err := f.svc.AddComment(ctx, f.booker.ID, item.ID, "nice")
		assert.ErrorIs(t, err, itemdomain.ErrNoBookings)
	})

	t.Run("only rejected bookings count as never booked", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		f.bookings.Add(models.BookingSummary{
			ID: 1, ItemID: item.ID, BookerID: f.booker.ID,
			Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour), Status: models.StatusRejected,
		})
		_, err := f.svc.AddComment(ctx, f.booker.ID, item.ID, "nice")
		assert.ErrorIs(t, err, itemdomain.ErrNoBookings)
	})

	t.Run("booking ends tomorrow", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		f.bookings.Add(models.BookingSummary{
			ID: 1, ItemID: item.ID, BookerID: f.booker.ID,
			Start: testNow.Add(-time.Hour), End: testNow.Add(24 * time.Hour), Status: "APPROVED",
		})
		_, err := f.svc.AddComment(ctx, f.booker.ID, item.ID, "nice")
		assert.ErrorIs(t, err, itemdomain.ErrFutureBooking)
	})

	t.Run("booking ended yesterday", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		f.bookings.Add(models.BookingSummary{
			ID: 1, ItemID: item.ID, BookerID: f.booker.ID,
			Start: testNow.Add(-48 * time.Hour), End: testNow.Add(-24 * time.Hour), Status: "APPROVED",
		})
		c, err := f.svc.AddComment(ctx, f.booker.ID, item.ID, " worked great ")
		require.NoError(t, err)
		assert.Equal(t, "worked great", c.Text)
		assert.Equal(t, "Bob", c.AuthorName)
		assert.True(t, c.Created.Equal(testNow))

		details, err := f.svc.GetByID(ctx, item.ID, f.booker.ID)
		require.NoError(t, err)
		require.Len(t, details.Comments, 1)
		assert.Equal(t, c.ID, details.Comments[0].ID)
	})

	t.Run("blank text", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		_, err := f.svc.AddComment(ctx, f.booker.ID, item.ID, " ")
		assert.ErrorIs(t, err, itemdomain.ErrInvalidComment)
	})

	t.Run("missing item and author", func(t *testing.T) {
		f := newFixture(t)
		item := f.drill(t)
		_, err := f.svc.AddComment(ctx, f.booker.ID, 99, "x")
		assert.ErrorIs(t, err, itemdomain.ErrItemNotFound)
		_, err = f.svc.AddComment(ctx, 99, item.ID, "x")
		assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
	})
}
