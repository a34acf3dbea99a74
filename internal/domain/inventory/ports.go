package inventory

import "context"

// Repository provides access to the cached player snapshot.
type Repository interface {
	ListEntries(ctx context.Context) ([]*Entry, error)
	ListWorkstations(ctx context.Context) ([]*OwnedWorkstation, error)
	PlayerState(ctx context.Context) (*PlayerResourceState, error)

	// ReplaceSnapshot swaps the cached player snapshot for a fresh one.
	ReplaceSnapshot(ctx context.Context, entries []*Entry, workstations []*OwnedWorkstation, state *PlayerResourceState) error
}
