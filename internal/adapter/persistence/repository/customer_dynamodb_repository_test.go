package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business_manager/internal/domain/entities"
)

func TestCustomerRepository(t *testing.T) {
	repo := &CustomerDynamoRepository{ddb: newFakeDynamo(), tableName: "customers"}
	ctx := context.Background()

	c := entities.CustomerProfile{
		ID:        "c1",
		Name:      "Acme, Inc.",
		Email:     "billing@acme.test",
		Phone:     "555-0100",
		Address:   "1 Main St",
		CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	_, err := repo.Create(ctx, c)
	require.NoError(t, err)
	_, err = repo.Create(ctx, c)
	assert.True(t, isConditionFailed(err), "duplicate ids must be rejected")

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.Phone = "555-0199"
	c.UpdatedAt = time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	_, err = repo.Update(ctx, c)
	require.NoError(t, err)
	got, _ = repo.GetByID(ctx, "c1")
	assert.Equal(t, "555-0199", got.Phone)
	assert.True(t, got.UpdatedAt.Equal(c.UpdatedAt))

	ghost, err := repo.Update(ctx, entities.CustomerProfile{ID: "c9", Name: "Ghost"})
	require.NoError(t, err)
	assert.Empty(t, ghost.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := repo.Delete(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, deleted)
	missing, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
