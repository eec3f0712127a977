package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbershop/internal/database/dbtest"
)

func TestGormRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	require.NoError(t, repo.Migrate())
	ctx := context.Background()

	u := &User{Email: " Barber@Shop.KZ ", Role: RoleStaff, Name: "Arman", Phone: "+7 700 000 0000"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.Equal(t, "barber@shop.kz", u.Email)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, got.Role)
	assert.Equal(t, "+7 700 000 0000", got.Phone)

	byEmail, err := repo.GetByEmail(ctx, "BARBER@shop.kz")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestGormRepository_GetByID_NotFound(t *testing.T) {
	repo := NewRepository(dbtest.Open(t))
	require.NoError(t, repo.Migrate())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Staff ")
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, r)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}
