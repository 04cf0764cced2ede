package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/events"
	"github.com/ghuser/shareit/pkg/logger"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	domainevents "github.com/ghuser/shareit/services/item/domain/events"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

const itemsTable = "items"

var itemColumns = []string{"id", "owner_id", "name", "description", "available", "request_id"}

type itemRow struct {
	ID          int64  `db:"id"`
	OwnerID     int64  `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Available   bool   `db:"available"`
	RequestID   *int64 `db:"request_id"`
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus events.TxPublisher
	log logger.Logger
}

// NewItemRepository returns an ItemRepository backed by the given connection pool
// and event publisher. A nil publisher disables item.created events.
func NewItemRepository(db *database.Database, bus events.TxPublisher, log logger.Logger) *ItemRepository {
	return &ItemRepository{db: db, bus: bus, log: log.With("repository", "item")}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same transaction.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	query, args, err := r.db.Builder.
		Insert(itemsTable).
		Columns("owner_id", "name", "description", "available", "request_id").
		Values(item.OwnerID, item.Name.String(), item.Description, item.Available, item.RequestID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert item: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
			r.log.WarnContext(ctx, "failed query execute", "query", "insert", "error", err)
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			evt := domainevents.NewItemCreated(item.ID, item.OwnerID, item.Name.String(), time.Now())
			if err := r.bus.PublishInTx(ctx, tx.Tx, evt); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	query, args, err := r.db.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item: %w", err)
	}

	var row itemRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, itemdomain.ErrItemNotFound
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "get", "item_id", id, "error", err)
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

// GetCurrent is GetByID: this repository has no cache in front of it.
func (r *ItemRepository) GetCurrent(ctx context.Context, id int64) (*models.Item, error) {
	return r.GetByID(ctx, id)
}

// FindByOwner retrieves a page of the owner's items ordered by ID.
func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID int64, opts repositories.QueryOpts) ([]*models.Item, error) {
	return r.selectItems(ctx, "find_by_owner", r.db.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset)))
}

// Search matches text against name or description, case-insensitively,
// among available items.
func (r *ItemRepository) Search(ctx context.Context, text string, opts repositories.QueryOpts) ([]*models.Item, error) {
	pattern := "%" + escapeLike(text) + "%"
	return r.selectItems(ctx, "search", r.db.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.And{
			squirrel.Eq{"available": true},
			squirrel.Or{
				squirrel.ILike{"name": pattern},
				squirrel.ILike{"description": pattern},
			},
		}).
		OrderBy("id ASC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset)))
}

// FindByRequestIDs returns the items answering any of requestIDs.
func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*models.Item, error) {
	if len(requestIDs) == 0 {
		return []*models.Item{}, nil
	}
	return r.selectItems(ctx, "find_by_requests", r.db.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("id ASC"))
}

// Update persists name, description and availability of an existing Item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	query, args, err := r.db.Builder.
		Update(itemsTable).
		SetMap(map[string]any{
			"name":        item.Name.String(),
			"description": item.Description,
			"available":   item.Available,
		}).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "update", "item_id", item.ID, "error", err)
		return fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return itemdomain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) selectItems(ctx context.Context, name string, b squirrel.SelectBuilder) ([]*models.Item, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", name, "error", err)
		return nil, fmt.Errorf("query items: %w", err)
	}
	r.log.DebugContext(ctx, "success query execute", "query", name, "count", len(rows))

	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

// rowToItem maps an items row to a domain models.Item.
func rowToItem(row itemRow) *models.Item {
	return &models.Item{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        models.ItemName(row.Name),
		Description: row.Description,
		Available:   row.Available,
		RequestID:   row.RequestID,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
