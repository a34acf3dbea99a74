package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/test/helpers"
)

func TestAggregate_PartitionIsTotal(t *testing.T) {
	entries := []*inventory.Entry{
		helpers.Entry(1, helpers.FoodMaterial(10, "Pomme"), 3),
		helpers.Entry(2, helpers.Material(11, "Bois de chêne"), 12),
		helpers.Entry(3, helpers.Material(12, "Minerai de fer"), 7),
		helpers.Entry(4, helpers.Material(13, "Ficelle"), 2),
		helpers.Entry(5, nil, 1),
	}

	agg := inventory.Aggregate(entries)

	total := 0
	for _, cat := range catalog.AllCategories {
		bucket, ok := agg.Buckets[cat]
		require.True(t, ok, "missing bucket %s", cat)
		total += len(bucket)
	}
	assert.Equal(t, len(entries), total)

	assert.Len(t, agg.Buckets[catalog.CategoryNourriture], 1)
	assert.Len(t, agg.Buckets[catalog.CategoryBois], 1)
	assert.Len(t, agg.Buckets[catalog.CategoryMinerais], 1)
	// Unmatched name and nil material both land in divers.
	assert.Len(t, agg.Buckets[catalog.CategoryDivers], 2)
}

func TestAggregate_EmptyInventory(t *testing.T) {
	agg := inventory.Aggregate(nil)

	for _, cat := range catalog.AllCategories {
		bucket, ok := agg.Buckets[cat]
		assert.True(t, ok, "missing bucket %s", cat)
		assert.Empty(t, bucket)
	}
	assert.Equal(t, 0, agg.Stats.TotalEntries)
	assert.Equal(t, 0, agg.Stats.TotalQuantity)
}

func TestAggregate_Stats(t *testing.T) {
	rare := helpers.Material(20, "Rubis poli")
	rare.Rarity = catalog.RarityRare

	entries := []*inventory.Entry{
		helpers.Entry(1, helpers.FoodMaterial(10, "Pomme"), 3),
		helpers.Entry(2, helpers.Material(11, "Bois de chêne"), 12),
		helpers.Entry(3, rare, 2),
	}

	agg := inventory.Aggregate(entries)

	assert.Equal(t, 3, agg.Stats.TotalEntries)
	assert.Equal(t, 17, agg.Stats.TotalQuantity)
	assert.Equal(t, 1, agg.Stats.FoodEntries)
	assert.Equal(t, 2, agg.Stats.NonFoodEntries)

	assert.Equal(t, inventory.RarityCount{Entries: 2, Quantity: 15}, agg.Stats.Rarities[catalog.RarityCommon])
	assert.Equal(t, inventory.RarityCount{Entries: 1, Quantity: 2}, agg.Stats.Rarities[catalog.RarityRare])
}

func TestTopByQuantity(t *testing.T) {
	entries := []*inventory.Entry{
		helpers.Entry(1, helpers.Material(10, "Ficelle"), 5),
		helpers.Entry(2, helpers.Material(11, "Bois de chêne"), 20),
		helpers.Entry(3, helpers.Material(12, "Pierre"), 5),
		helpers.Entry(4, helpers.Material(13, "Minerai de fer"), 9),
	}

	top := inventory.Aggregate(entries).TopByQuantity(3)

	require.Len(t, top, 3)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 4, top[1].ID)
	// Stable: the 5-quantity tie keeps snapshot order.
	assert.Equal(t, 1, top[2].ID)
}

func TestTopByQuantity_Bounds(t *testing.T) {
	entries := []*inventory.Entry{
		helpers.Entry(1, helpers.Material(10, "Ficelle"), 5),
	}
	agg := inventory.Aggregate(entries)

	assert.Len(t, agg.TopByQuantity(10), 1)
	assert.Empty(t, agg.TopByQuantity(0))
	assert.Empty(t, agg.TopByQuantity(-1))
}

func TestNewPlayerResourceState(t *testing.T) {
	state, err := inventory.NewPlayerResourceState(50, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, state.Energy)
	assert.Equal(t, 100, state.MaxEnergy)

	_, err = inventory.NewPlayerResourceState(-1, 100)
	assert.Error(t, err)

	_, err = inventory.NewPlayerResourceState(101, 100)
	assert.Error(t, err)
}
