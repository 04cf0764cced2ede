// Package memory provides an in-memory UserRepository used by service tests
// across bounded contexts.
package memory

import (
	"context"
	"sort"
	"sync"

	userdomain "github.com/ghuser/shareit/services/user/domain"
	"github.com/ghuser/shareit/services/user/domain/models"
)

// UserRepository stores users in a map. Copies are returned so callers
// cannot mutate stored state.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]models.User)}
}

func (r *UserRepository) Save(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return userdomain.ErrEmailTaken
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindAll(_ context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return userdomain.ErrUserNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return userdomain.ErrEmailTaken
	}
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return userdomain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *UserRepository) emailTaken(email string, exceptID int64) bool {
	for id, u := range r.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}
