package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/logger"
	requestdomain "github.com/ghuser/shareit/services/request/domain"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
)

const requestsTable = "requests"

var requestColumns = []string{"id", "description", "requester_id", "created"}

// RequestRepository implements repositories.RequestRepository against PostgreSQL.
type RequestRepository struct {
	db  *database.Database
	log logger.Logger
}

func NewRequestRepository(db *database.Database, log logger.Logger) *RequestRepository {
	return &RequestRepository{db: db, log: log.With("repository", "request")}
}

// Save inserts a request and assigns the generated ID.
func (r *RequestRepository) Save(ctx context.Context, req *models.ItemRequest) error {
	query, args, err := r.db.Builder.
		Insert(requestsTable).
		Columns("description", "requester_id", "created").
		Values(req.Description, req.RequesterID, req.Created).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert request: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&req.ID); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "insert", "error", err)
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID fetches one request.
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	query, args, err := r.db.Builder.
		Select(requestColumns...).
		From(requestsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request: %w", err)
	}

	var req models.ItemRequest
	if err := r.db.GetContext(ctx, &req, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, requestdomain.ErrRequestNotFound
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "get", "request_id", id, "error", err)
		return nil, fmt.Errorf("query request: %w", err)
	}
	req.Created = req.Created.UTC()
	return &req, nil
}

// FindByRequester lists a user's own requests, newest first.
func (r *RequestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error) {
	return r.selectRequests(ctx, "find_by_requester", r.db.Builder.
		Select(requestColumns...).
		From(requestsTable).
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("created DESC", "id DESC"))
}

// FindOthers pages through requests not made by userID, newest first.
func (r *RequestRepository) FindOthers(ctx context.Context, userID int64, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	return r.selectRequests(ctx, "find_others", r.db.Builder.
		Select(requestColumns...).
		From(requestsTable).
		Where(squirrel.NotEq{"requester_id": userID}).
		OrderBy("created DESC", "id DESC").
		Limit(uint64(opts.Limit)).
		Offset(uint64(opts.Offset)))
}

func (r *RequestRepository) selectRequests(ctx context.Context, name string, b squirrel.SelectBuilder) ([]*models.ItemRequest, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}

	reqs := make([]*models.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", name, "error", err)
		return nil, fmt.Errorf("query requests: %w", err)
	}
	for _, req := range reqs {
		req.Created = req.Created.UTC()
	}
	r.log.DebugContext(ctx, "success query execute", "query", name, "count", len(reqs))
	return reqs, nil
}
