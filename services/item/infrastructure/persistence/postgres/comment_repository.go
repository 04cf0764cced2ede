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

type commentRow struct {
	ID         int64     `db:"id"`
	ItemID     int64     `db:"item_id"`
	AuthorID   int64     `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Text       string    `db:"text"`
	Created    time.Time `db:"created"`
}

// CommentRepository implements repositories.CommentRepository against PostgreSQL.
type CommentRepository struct {
	db  *database.Database
	log logger.Logger
}

func NewCommentRepository(db *database.Database, log logger.Logger) *CommentRepository {
	return &CommentRepository{db: db, log: log.With("repository", "comment")}
}

// Save inserts a comment and assigns the generated ID.
func (r *CommentRepository) Save(ctx context.Context, c *models.Comment) error {
	query, args, err := r.db.Builder.
		Insert("comments").
		Columns("text", "item_id", "author_id", "created").
		Values(c.Text, c.ItemID, c.AuthorID, c.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert comment: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.ID); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "insert", "error", err)
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// FindByItem lists comments on an item, newest first.
func (r *CommentRepository) FindByItem(ctx context.Context, itemID int64) ([]models.Comment, error) {
	query, args, err := r.db.Builder.
		Select("c.id", "c.item_id", "c.author_id", "COALESCE(u.name, '') AS author_name", "c.text", "c.created").
		From("comments c").
		LeftJoin("users u ON u.id = c.author_id").
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find comments: %w", err)
	}

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "find_by_item", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("query comments: %w", err)
	}

	comments := make([]models.Comment, len(rows))
	for i, row := range rows {
		comments[i] = models.Comment{
			ID:         row.ID,
			ItemID:     row.ItemID,
			AuthorID:   row.AuthorID,
			AuthorName: row.AuthorName,
			Text:       row.Text,
			Created:    row.Created.UTC(),
		}
	}
	return comments, nil
}
