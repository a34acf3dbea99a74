package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
	"github.com/andrescamacho/craftrules-go/test/helpers"
)

type snapshotFixture struct {
	catalogRepo   *persistence.GormCatalogRepository
	inventoryRepo *persistence.GormInventoryRepository
	memoizer      *listing.Memoizer

	wood  *catalog.Material
	stone *catalog.Material
	apple *catalog.Material
}

func newSnapshotFixture(t *testing.T) *snapshotFixture {
	db := helpers.NewTestDB(t)

	memoizer, err := listing.NewMemoizer(listing.NewEngine(), 32)
	require.NoError(t, err)

	f := &snapshotFixture{
		catalogRepo:   persistence.NewGormCatalogRepository(db),
		inventoryRepo: persistence.NewGormInventoryRepository(db),
		memoizer:      memoizer,
		wood:          helpers.Material(1, "Bois de chêne"),
		stone:         helpers.Material(2, "Pierre"),
		apple:         helpers.FoodMaterial(3, "Pomme"),
	}
	f.stone.Rarity = catalog.RarityUncommon

	require.NoError(t, f.catalogRepo.ReplaceAll(context.Background(),
		[]*catalog.Material{f.wood, f.stone, f.apple}, nil))
	return f
}

func (f *snapshotFixture) seedInventory(t *testing.T, entries []*inventory.Entry) {
	t.Helper()
	require.NoError(t, f.inventoryRepo.ReplaceSnapshot(context.Background(), entries, nil,
		&inventory.PlayerResourceState{Energy: 50, MaxEnergy: 100}))
}

func TestInventoryViewHandler_AggregatesAndGroups(t *testing.T) {
	f := newSnapshotFixture(t)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 12),
		helpers.Entry(102, f.stone, 30),
		helpers.Entry(103, f.apple, 3),
	})

	handler := queries.NewInventoryViewHandler(f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.InventoryViewQuery{TopN: 2})
	require.NoError(t, err)
	result := response.(*queries.InventoryViewResult)

	assert.Equal(t, 3, result.Stats.TotalEntries)
	assert.Equal(t, 45, result.Stats.TotalQuantity)
	assert.Equal(t, 1, result.Stats.FoodEntries)

	require.Len(t, result.Top, 2)
	assert.Equal(t, 102, result.Top[0].ID)
	assert.Equal(t, 101, result.Top[1].ID)

	require.NotNil(t, result.View)
	assert.Equal(t, 3, result.View.TotalCount)
	assert.Len(t, result.View.Groups[string(catalog.CategoryBois)], 1)
	assert.Len(t, result.View.Groups[string(catalog.CategoryMinerais)], 1)
	assert.Len(t, result.View.Groups[string(catalog.CategoryNourriture)], 1)
}

func TestInventoryViewHandler_SearchFiltersRows(t *testing.T) {
	f := newSnapshotFixture(t)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 12),
		helpers.Entry(102, f.stone, 30),
	})

	handler := queries.NewInventoryViewHandler(f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.InventoryViewQuery{
		State: listing.State{Search: "pierre"},
	})
	require.NoError(t, err)
	result := response.(*queries.InventoryViewResult)

	assert.Equal(t, 1, result.View.FilteredCount)
	require.Len(t, result.View.Groups[string(catalog.CategoryMinerais)], 1)
	// Searching expands the groups that survived.
	assert.True(t, result.View.Expanded[string(catalog.CategoryMinerais)])
}

func TestInventoryViewHandler_RarityFacet(t *testing.T) {
	f := newSnapshotFixture(t)
	f.seedInventory(t, []*inventory.Entry{
		helpers.Entry(101, f.wood, 12),
		helpers.Entry(102, f.stone, 30),
	})

	handler := queries.NewInventoryViewHandler(f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.InventoryViewQuery{
		State: listing.State{Rarity: string(catalog.RarityUncommon)},
	})
	require.NoError(t, err)
	result := response.(*queries.InventoryViewResult)

	assert.Equal(t, 1, result.View.FilteredCount)
	// Facet options still cover the whole snapshot.
	assert.Equal(t, []string{"common", "uncommon"}, result.View.AvailableRarities)
}

func TestInventoryViewHandler_EmptyCache(t *testing.T) {
	f := newSnapshotFixture(t)

	handler := queries.NewInventoryViewHandler(f.inventoryRepo, f.memoizer)

	response, err := handler.Handle(context.Background(), &queries.InventoryViewQuery{})
	require.NoError(t, err)
	result := response.(*queries.InventoryViewResult)

	assert.Equal(t, 0, result.Stats.TotalEntries)
	assert.Empty(t, result.Top)
	assert.Equal(t, 0, result.View.TotalCount)
}

func TestInventoryViewHandler_RejectsWrongRequestType(t *testing.T) {
	f := newSnapshotFixture(t)
	handler := queries.NewInventoryViewHandler(f.inventoryRepo, f.memoizer)

	_, err := handler.Handle(context.Background(), &queries.CraftCheckQuery{})

	assert.Error(t, err)
}
