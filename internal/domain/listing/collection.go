package listing

import "sort"

// Collection is the input to a listing query: either a flat slice of
// items or a pre-grouped map of sections. The variant is tagged so the
// engine knows whether to regroup its output.
type Collection struct {
	flat      []any
	grouped   map[string][]any
	isGrouped bool
}

// Flat wraps an ungrouped item slice.
func Flat(items []any) Collection {
	return Collection{flat: items}
}

// Grouped wraps a pre-sectioned map of items.
func Grouped(groups map[string][]any) Collection {
	return Collection{grouped: groups, isGrouped: true}
}

// IsGrouped reports which variant this collection holds.
func (c Collection) IsGrouped() bool {
	return c.isGrouped
}

// Flatten returns all items as one slice. Grouped collections flatten
// in sorted key order so the result is deterministic.
func (c Collection) Flatten() []any {
	if !c.isGrouped {
		return c.flat
	}
	keys := make([]string, 0, len(c.grouped))
	for k := range c.grouped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var items []any
	for _, k := range keys {
		items = append(items, c.grouped[k]...)
	}
	return items
}

// Len counts items across both variants.
func (c Collection) Len() int {
	if !c.isGrouped {
		return len(c.flat)
	}
	n := 0
	for _, items := range c.grouped {
		n += len(items)
	}
	return n
}

// fingerprint exposes the raw content for cache keying.
func (c Collection) fingerprint() any {
	if c.isGrouped {
		return c.grouped
	}
	return c.flat
}
