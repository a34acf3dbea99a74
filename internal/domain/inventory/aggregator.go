package inventory

import (
	"sort"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/pkg/utils"
)

// RarityCount holds per-rarity totals for the histogram.
type RarityCount struct {
	Entries  int
	Quantity int
}

// Stats are the derived figures of an aggregated inventory.
type Stats struct {
	TotalEntries   int
	TotalQuantity  int
	FoodEntries    int
	NonFoodEntries int
	Rarities       map[catalog.Rarity]RarityCount
}

// Aggregated is the category-keyed view of one inventory snapshot.
// Every category bucket exists even when empty so the presentation layer
// can render empty-state sections.
type Aggregated struct {
	Buckets map[catalog.Category][]*Entry
	Stats   Stats

	entries []*Entry
}

// Aggregate partitions entries into category buckets using the classifier
// and computes derived stats. Every input entry lands in exactly one bucket;
// entries with a nil material go to divers rather than erroring, since
// upstream data may be transiently incomplete during a refresh.
func Aggregate(entries []*Entry) *Aggregated {
	agg := &Aggregated{
		Buckets: make(map[catalog.Category][]*Entry, len(catalog.AllCategories)),
		Stats: Stats{
			Rarities: make(map[catalog.Rarity]RarityCount),
		},
		entries: entries,
	}
	for _, cat := range catalog.AllCategories {
		agg.Buckets[cat] = []*Entry{}
	}

	for _, e := range entries {
		if e == nil {
			continue
		}
		cat := catalog.Classify(e.Material)
		agg.Buckets[cat] = append(agg.Buckets[cat], e)

		agg.Stats.TotalEntries++
		agg.Stats.TotalQuantity += e.Quantity
		if e.Material != nil && e.Material.IsFood {
			agg.Stats.FoodEntries++
		} else {
			agg.Stats.NonFoodEntries++
		}
		if e.Material != nil && e.Material.Rarity != "" {
			rc := agg.Stats.Rarities[e.Material.Rarity]
			rc.Entries++
			rc.Quantity += e.Quantity
			agg.Stats.Rarities[e.Material.Rarity] = rc
		}
	}

	return agg
}

// TopByQuantity returns the n largest entries by quantity, descending.
// The sort is stable so ties keep their original snapshot order.
func (a *Aggregated) TopByQuantity(n int) []*Entry {
	if n <= 0 {
		return []*Entry{}
	}

	top := make([]*Entry, 0, len(a.entries))
	for _, e := range a.entries {
		if e != nil {
			top = append(top, e)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})

	return top[:utils.Min(n, len(top))]
}
