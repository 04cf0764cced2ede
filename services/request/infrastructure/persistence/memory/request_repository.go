// Package memory provides an in-memory RequestRepository used by service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	requestdomain "github.com/ghuser/shareit/services/request/domain"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
)

// RequestRepository stores requests in a map.
type RequestRepository struct {
	mu       sync.Mutex
	requests map[int64]models.ItemRequest
	nextID   int64
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{requests: make(map[int64]models.ItemRequest)}
}

func (r *RequestRepository) Save(_ context.Context, req *models.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	req.ID = r.nextID
	r.requests[req.ID] = *req
	return nil
}

func (r *RequestRepository) GetByID(_ context.Context, id int64) (*models.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, requestdomain.ErrRequestNotFound
	}
	return &req, nil
}

// Exists lets the store double as the item context's RequestReader.
func (r *RequestRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.requests[id]
	return ok, nil
}

func (r *RequestRepository) FindByRequester(_ context.Context, requesterID int64) ([]*models.ItemRequest, error) {
	return r.find(func(req models.ItemRequest) bool { return req.RequesterID == requesterID }, repositories.QueryOpts{}), nil
}

func (r *RequestRepository) FindOthers(_ context.Context, userID int64, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	return r.find(func(req models.ItemRequest) bool { return req.RequesterID != userID }, opts), nil
}

func (r *RequestRepository) find(keep func(models.ItemRequest) bool, opts repositories.QueryOpts) []*models.ItemRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.ItemRequest, 0)
	for _, req := range r.requests {
		if keep(req) {
			req := req
			out = append(out, &req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID > out[j].ID
		}
		return out[i].Created.After(out[j].Created)
	})

	if opts.Offset >= len(out) {
		return []*models.ItemRequest{}
	}
	out = out[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}
