package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/test/helpers"
)

func TestInventoryRepository_EmptyCache(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormInventoryRepository(db)

	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	workstations, err := repo.ListWorkstations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, workstations)

	state, err := repo.PlayerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, state.Energy)
}

func TestInventoryRepository_ReplaceSnapshotRoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalogRepo := persistence.NewGormCatalogRepository(db)
	repo := persistence.NewGormInventoryRepository(db)

	wood := helpers.Material(1, "Bois de chêne")
	stone := helpers.Material(2, "Pierre")
	require.NoError(t, catalogRepo.ReplaceAll(context.Background(), []*catalog.Material{wood, stone}, nil))

	durability := 8
	entries := []*inventory.Entry{
		helpers.Entry(101, wood, 4),
		{ID: 102, Material: stone, Quantity: 2, DurabilityCurrent: &durability},
	}
	workstations := []*inventory.OwnedWorkstation{helpers.OwnedWorkstation(7, "Établi", 1)}
	state := &inventory.PlayerResourceState{Energy: 42, MaxEnergy: 100}

	// Act
	err := repo.ReplaceSnapshot(context.Background(), entries, workstations, state)

	// Assert
	require.NoError(t, err)

	loaded, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 101, loaded[0].ID)
	require.NotNil(t, loaded[0].Material)
	assert.Equal(t, "Bois de chêne", loaded[0].Material.Name)
	assert.Equal(t, 4, loaded[0].Quantity)
	require.NotNil(t, loaded[1].DurabilityCurrent)
	assert.Equal(t, 8, *loaded[1].DurabilityCurrent)

	owned, err := repo.ListWorkstations(context.Background())
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, 7, owned[0].Workstation.ID)

	playerState, err := repo.PlayerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, playerState.Energy)
	assert.Equal(t, 100, playerState.MaxEnergy)
}

func TestInventoryRepository_ReplaceSnapshotDropsOldOne(t *testing.T) {
	db := helpers.NewTestDB(t)
	catalogRepo := persistence.NewGormCatalogRepository(db)
	repo := persistence.NewGormInventoryRepository(db)

	wood := helpers.Material(1, "Bois de chêne")
	require.NoError(t, catalogRepo.ReplaceAll(context.Background(), []*catalog.Material{wood}, nil))

	first := []*inventory.Entry{helpers.Entry(101, wood, 4)}
	require.NoError(t, repo.ReplaceSnapshot(context.Background(), first, nil, &inventory.PlayerResourceState{Energy: 10}))

	second := []*inventory.Entry{helpers.Entry(102, wood, 9)}
	require.NoError(t, repo.ReplaceSnapshot(context.Background(), second, nil, &inventory.PlayerResourceState{Energy: 20}))

	loaded, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 102, loaded[0].ID)
	assert.Equal(t, 9, loaded[0].Quantity)

	state, err := repo.PlayerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, state.Energy)
}

func TestInventoryRepository_EntriesKeepSnapshotOrder(t *testing.T) {
	db := helpers.NewTestDB(t)
	catalogRepo := persistence.NewGormCatalogRepository(db)
	repo := persistence.NewGormInventoryRepository(db)

	wood := helpers.Material(1, "Bois de chêne")
	stone := helpers.Material(2, "Pierre")
	require.NoError(t, catalogRepo.ReplaceAll(context.Background(), []*catalog.Material{wood, stone}, nil))

	entries := []*inventory.Entry{
		helpers.Entry(300, stone, 1),
		helpers.Entry(100, wood, 2),
		helpers.Entry(200, stone, 3),
	}
	require.NoError(t, repo.ReplaceSnapshot(context.Background(), entries, nil, nil))

	loaded, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, 300, loaded[0].ID)
	assert.Equal(t, 100, loaded[1].ID)
	assert.Equal(t, 200, loaded[2].ID)
}
