package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/shareit/pkg/logger"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	"github.com/ghuser/shareit/services/user/domain/models"
	"github.com/ghuser/shareit/services/user/infrastructure/persistence/memory"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(memory.NewUserRepository(), logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestUserService_CreateAndGet(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Other", "ann@example.com")
	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestUserService_UpdatePartial(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	u, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, u.ID, models.UserPatch{Name: strPtr("Anna"), Email: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "ann@example.com", updated.Email)

	_, err = svc.Update(ctx, 999, models.UserPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, "Ann", "ann@example.com")
	require.NoError(t, err)
	bob, err := svc.Create(ctx, "Bob", "bob@example.com")
	require.NoError(t, err)

	_, err = svc.Update(ctx, bob.ID, models.UserPatch{Email: strPtr("ann@example.com")})
	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestUserService_ListAndDelete(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	a, _ := svc.Create(ctx, "Ann", "ann@example.com")
	_, _ = svc.Create(ctx, "Bob", "bob@example.com")

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, a.ID, users[0].ID)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, a.ID), userdomain.ErrUserNotFound)
}
