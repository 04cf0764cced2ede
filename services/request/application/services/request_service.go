package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/shareit/pkg/logger"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// RequestService runs the request board: users post what they need and
// owners answer by listing items against a request.
type RequestService struct {
	requests repositories.RequestRepository
	items    itemrepos.ItemRepository
	users    userrepos.UserRepository
	log      logger.Logger
	now      func() time.Time
}

func NewRequestService(
	requests repositories.RequestRepository,
	items itemrepos.ItemRepository,
	users userrepos.UserRepository,
	log logger.Logger,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users, log: log, now: time.Now}
}

// Create posts a request stamped with the server time.
func (s *RequestService) Create(ctx context.Context, userID int64, description string) (*models.RequestWithItems, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := models.NewItemRequest(userID, description, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, req); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}
	s.log.InfoContext(ctx, "item request created", "request_id", req.ID, "requester_id", userID)
	return &models.RequestWithItems{Request: req, Items: []*itemmodels.Item{}}, nil
}

// ListOwn returns all of the user's requests, newest first, with their items.
func (s *RequestService) ListOwn(ctx context.Context, userID int64) ([]*models.RequestWithItems, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.FindByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests of user %d: %w", userID, err)
	}
	return s.attachItems(ctx, reqs)
}

// ListOthers pages through requests made by anyone but the user, newest first.
func (s *RequestService) ListOthers(ctx context.Context, userID int64, opts repositories.QueryOpts) ([]*models.RequestWithItems, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.FindOthers(ctx, userID, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests for user %d: %w", userID, err)
	}
	return s.attachItems(ctx, reqs)
}

// Get returns one request with its items. Any existing user may read it.
func (s *RequestService) Get(ctx context.Context, userID, requestID int64) (*models.RequestWithItems, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", requestID, err)
	}
	out, err := s.attachItems(ctx, []*models.ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// attachItems loads every answering item with one query.
func (s *RequestService) attachItems(ctx context.Context, reqs []*models.ItemRequest) ([]*models.RequestWithItems, error) {
	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list items for requests: %w", err)
	}

	byRequest := make(map[int64][]*itemmodels.Item, len(reqs))
	for _, item := range items {
		if item.RequestID != nil {
			byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
		}
	}

	out := make([]*models.RequestWithItems, len(reqs))
	for i, r := range reqs {
		answered := byRequest[r.ID]
		if answered == nil {
			answered = []*itemmodels.Item{}
		}
		out[i] = &models.RequestWithItems{Request: r, Items: answered}
	}
	return out, nil
}

func (s *RequestService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %d: %w", userID, err)
	}
	if !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}
