package listing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memoizer caches engine results keyed by a fingerprint of the inputs.
// Custom filter predicates cannot be hashed, so callers pass a liveState
// value covering everything the predicates read; a changed liveState
// yields a different key and a fresh evaluation.
type Memoizer struct {
	engine *Engine
	cache  *lru.Cache[string, *Result]
}

// NewMemoizer wraps an engine with an LRU result cache of the given size.
func NewMemoizer(engine *Engine, size int) (*Memoizer, error) {
	cache, err := lru.New[string, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("creating listing cache: %w", err)
	}
	return &Memoizer{engine: engine, cache: cache}, nil
}

// Query returns the cached result for identical inputs, evaluating the
// engine on a miss. Unkeyable inputs fall back to an uncached query.
func (m *Memoizer) Query(col Collection, cfg Config, st State, liveState any) *Result {
	key, err := m.key(col, cfg, st, liveState)
	if err != nil {
		return m.engine.Query(col, cfg, st)
	}
	if cached, ok := m.cache.Get(key); ok {
		return cached
	}
	result := m.engine.Query(col, cfg, st)
	m.cache.Add(key, result)
	return result
}

// Purge drops all cached results, typically after a snapshot refresh.
func (m *Memoizer) Purge() {
	m.cache.Purge()
}

func (m *Memoizer) key(col Collection, cfg Config, st State, liveState any) (string, error) {
	type filterFingerprint struct {
		Name    string `json:"name"`
		Default bool   `json:"default"`
	}
	filters := make([]filterFingerprint, 0, len(cfg.CustomFilters))
	for _, f := range cfg.CustomFilters {
		filters = append(filters, filterFingerprint{Name: f.Name, Default: f.Default})
	}

	payload := struct {
		Items         any                 `json:"items"`
		IsGrouped     bool                `json:"is_grouped"`
		SearchFields  []string            `json:"search_fields"`
		CategoryField string              `json:"category_field"`
		RarityField   string              `json:"rarity_field"`
		NameField     string              `json:"name_field"`
		QuantityField string              `json:"quantity_field"`
		UpdatedField  string              `json:"updated_field"`
		DefaultSort   SortKey             `json:"default_sort"`
		Grouped       bool                `json:"grouped"`
		Filters       []filterFingerprint `json:"filters"`
		State         State               `json:"state"`
		Live          any                 `json:"live"`
	}{
		Items:         col.fingerprint(),
		IsGrouped:     col.IsGrouped(),
		SearchFields:  cfg.SearchFields,
		CategoryField: cfg.CategoryField,
		RarityField:   cfg.RarityField,
		NameField:     cfg.NameField,
		QuantityField: cfg.QuantityField,
		UpdatedField:  cfg.UpdatedField,
		DefaultSort:   cfg.DefaultSort,
		Grouped:       cfg.Grouped,
		Filters:       filters,
		State:         st,
		Live:          liveState,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
