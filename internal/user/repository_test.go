package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository([]User{{ID: 5, Name: "Seed", Email: "seed@example.com", Birthdate: "01-01-1990", AddressID: 1}})

	created, err := repo.Insert(ctx, User{ID: 99, Name: "Ada", Email: "ada@example.com", Birthdate: "10-12-1915", AddressID: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID, "insert must assign the next id, not trust the caller")

	got, err := repo.GetByID(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 5, users[0].ID)
	assert.Equal(t, 6, users[1].ID)

	require.NoError(t, repo.DeleteByID(ctx, 5))
	_, err = repo.GetByID(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteByID(ctx, 5), ErrNotFound)

	// ids are never reused after a delete
	next, err := repo.Insert(ctx, User{Name: "Grace"})
	require.NoError(t, err)
	assert.Equal(t, 7, next.ID)
}

func TestInMemoryRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository([]User{{ID: 1, Name: "Ada"}})

	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0].Name = "changed"

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
}
