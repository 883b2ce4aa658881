package contacts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
)

const testUser = "rider@example.com"

func addN(t *testing.T, repo *InMemoryRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Add(context.Background(), testUser, &models.EmergencyContact{
			ID:   fmt.Sprintf("c%d", i),
			Name: fmt.Sprintf("Contact %d", i),
		})
		require.NoError(t, err)
	}
}

func TestInMemoryRepository_ListEmpty(t *testing.T) {
	repo := NewInMemoryRepository()

	got, err := repo.List(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryRepository_InsertionOrderPreserved(t *testing.T) {
	repo := NewInMemoryRepository()
	addN(t, repo, 3)

	got, err := repo.List(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, c := range got {
		assert.Equal(t, fmt.Sprintf("c%d", i), c.ID)
	}
}

func TestInMemoryRepository_DeleteAtShiftsRemainder(t *testing.T) {
	repo := NewInMemoryRepository()
	addN(t, repo, 4)

	deleted, err := repo.DeleteAt(context.Background(), testUser, 0)
	require.NoError(t, err)
	assert.Equal(t, "c0", deleted.ID)

	got, err := repo.List(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// remaining contacts keep their relative order, shifted down by one
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.Equal(t, "c3", got[2].ID)
}

func TestInMemoryRepository_DeleteAtOutOfRange(t *testing.T) {
	repo := NewInMemoryRepository()
	addN(t, repo, 2)

	for _, index := range []int{-1, 2, 100} {
		_, err := repo.DeleteAt(context.Background(), testUser, index)
		assert.ErrorIs(t, err, common.ErrNotFound, "index %d", index)
	}

	got, err := repo.List(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, got, 2, "failed delete must leave the sequence unchanged")
}

func TestInMemoryRepository_PerUserIsolation(t *testing.T) {
	repo := NewInMemoryRepository()
	addN(t, repo, 1)

	got, err := repo.List(context.Background(), "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}
