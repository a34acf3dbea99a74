package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/craftrules-go/internal/application/common"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

// InventoryViewQuery asks for the aggregated, filterable inventory view.
type InventoryViewQuery struct {
	State listing.State
	TopN  int
}

// InventoryViewResult carries the aggregation stats plus the engine view.
type InventoryViewResult struct {
	Stats inventory.Stats
	Top   []*inventory.Entry
	View  *listing.Result
}

// InventoryViewHandler aggregates the cached inventory snapshot and runs
// the listing engine over the grouped result.
type InventoryViewHandler struct {
	inventoryRepo inventory.Repository
	queries       *listing.Memoizer
}

// NewInventoryViewHandler creates a new handler.
func NewInventoryViewHandler(inventoryRepo inventory.Repository, queries *listing.Memoizer) *InventoryViewHandler {
	return &InventoryViewHandler{inventoryRepo: inventoryRepo, queries: queries}
}

// Handle executes the inventory view query.
func (h *InventoryViewHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*InventoryViewQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	entries, err := h.inventoryRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	aggregated := inventory.Aggregate(entries)
	common.LoggerFromContext(ctx).Log("INFO", "inventory aggregated", map[string]interface{}{
		"entries":  aggregated.Stats.TotalEntries,
		"quantity": aggregated.Stats.TotalQuantity,
	})

	view := h.queries.Query(groupedRows(aggregated), InventoryListConfig(), query.State, nil)

	topN := query.TopN
	if topN <= 0 {
		topN = 5
	}

	return &InventoryViewResult{
		Stats: aggregated.Stats,
		Top:   aggregated.TopByQuantity(topN),
		View:  view,
	}, nil
}

// groupedRows converts the aggregated buckets into the engine's grouped
// collection, preserving the fixed category set so empty buckets survive.
func groupedRows(aggregated *inventory.Aggregated) listing.Collection {
	groups := make(map[string][]any, len(aggregated.Buckets))
	for _, cat := range catalog.AllCategories {
		bucket := aggregated.Buckets[cat]
		rows := make([]any, 0, len(bucket))
		for _, e := range bucket {
			rows = append(rows, &InventoryRow{
				Entry:     e,
				Material:  e.Material,
				Category:  string(cat),
				Quantity:  e.Quantity,
				UpdatedAt: e.UpdatedAt,
			})
		}
		groups[string(cat)] = rows
	}
	return listing.Grouped(groups)
}
