package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/logger"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	"github.com/ghuser/shareit/services/user/domain/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email"}

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db  *database.Database
	log logger.Logger
}

// NewUserRepository returns a UserRepository backed by the given pool.
func NewUserRepository(db *database.Database, log logger.Logger) *UserRepository {
	return &UserRepository{db: db, log: log.With("repository", "user")}
}

// Save inserts a user and assigns the generated ID.
func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	query, args, err := r.db.Builder.
		Insert(usersTable).
		Columns("name", "email").
		Values(u.Name, u.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	r.log.DebugContext(ctx, "build query", "query", "insert", "sql", query)

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&u.ID); err != nil {
		if database.IsUniqueViolation(err) {
			return userdomain.ErrEmailTaken
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "insert", "error", err)
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches one user.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query, args, err := r.db.Builder.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u models.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if database.IsNoRows(err) {
			return nil, userdomain.ErrUserNotFound
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "get", "user_id", id, "error", err)
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// FindAll lists every user ordered by ID.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	query, args, err := r.db.Builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	users := make([]*models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "find_all", "error", err)
		return nil, fmt.Errorf("query users: %w", err)
	}
	r.log.DebugContext(ctx, "success query execute", "query", "find_all", "count", len(users))
	return users, nil
}

// Update writes the user's name and email.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	query, args, err := r.db.Builder.
		Update(usersTable).
		SetMap(map[string]any{"name": u.Name, "email": u.Email}).
		Where(squirrel.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return userdomain.ErrEmailTaken
		}
		r.log.WarnContext(ctx, "failed query execute", "query", "update", "user_id", u.ID, "error", err)
		return fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder.
		Delete(usersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WarnContext(ctx, "failed query execute", "query", "delete", "user_id", id, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if n == 0 {
		return userdomain.ErrUserNotFound
	}
	r.log.DebugContext(ctx, "success query execute", "query", "delete", "user_id", id)
	return nil
}

// Exists reports whether a user with id exists.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowxContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
