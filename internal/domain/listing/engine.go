package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Result is the fully evaluated listing: the surviving items (flat or
// grouped), facet options computed from the unfiltered input, counts
// and the expansion map for grouped displays.
type Result struct {
	Items               []any
	Groups              map[string][]any
	GroupOrder          []string
	AvailableCategories []string
	AvailableRarities   []string
	TotalCount          int
	FilteredCount       int
	Expanded            map[string]bool
}

// Engine evaluates listing queries. It holds a locale-aware collator so
// accented names sort the way players expect.
type Engine struct {
	collator *collate.Collator
}

// NewEngine creates an engine with French collation, matching the
// catalog's naming language.
func NewEngine() *Engine {
	return &Engine{collator: collate.New(language.French, collate.IgnoreCase)}
}

// Query runs the fixed pipeline over the collection: search, category
// facet, rarity facet, custom filters, then a stable sort. Grouped
// configs regroup after sorting so group members stay ordered. Facet
// options always come from the unfiltered input so narrowing one facet
// never hides the others' options.
func (e *Engine) Query(col Collection, cfg Config, st State) *Result {
	cfg = cfg.withDefaults()
	items := col.Flatten()

	result := &Result{
		TotalCount:          len(items),
		AvailableCategories: distinctValues(items, cfg.CategoryField),
		AvailableRarities:   distinctValues(items, cfg.RarityField),
		Expanded:            copyBoolMap(st.Expanded),
	}

	filtered := applySearch(items, cfg, st.Search)
	filtered = applyFacet(filtered, cfg.CategoryField, st.Category)
	filtered = applyFacet(filtered, cfg.RarityField, st.Rarity)
	filtered = applyCustomFilters(filtered, cfg, st)
	filtered = e.applySort(filtered, cfg, st.SortBy)

	result.FilteredCount = len(filtered)

	if !cfg.Grouped {
		result.Items = filtered
		return result
	}

	result.Groups = make(map[string][]any)
	for _, item := range filtered {
		key := StringAt(item, cfg.CategoryField)
		if _, seen := result.Groups[key]; !seen {
			result.GroupOrder = append(result.GroupOrder, key)
		}
		result.Groups[key] = append(result.Groups[key], item)
	}

	if st.Search != "" {
		// Sticky: searching expands every surviving group and the
		// expansion survives clearing the search.
		for _, key := range result.GroupOrder {
			if result.Expanded == nil {
				result.Expanded = make(map[string]bool)
			}
			result.Expanded[key] = true
		}
	}

	return result
}

func applySearch(items []any, cfg Config, needle string) []any {
	if needle == "" {
		out := make([]any, len(items))
		copy(out, items)
		return out
	}
	needle = strings.ToLower(needle)

	var out []any
	for _, item := range items {
		for _, field := range cfg.SearchFields {
			if strings.Contains(strings.ToLower(StringAt(item, field)), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func applyFacet(items []any, field, selected string) []any {
	if field == "" || selected == "" || selected == FacetAll {
		return items
	}
	var out []any
	for _, item := range items {
		if StringAt(item, field) == selected {
			out = append(out, item)
		}
	}
	return out
}

func applyCustomFilters(items []any, cfg Config, st State) []any {
	for _, f := range cfg.CustomFilters {
		if !st.FilterEnabled(f) || f.Predicate == nil {
			continue
		}
		var out []any
		for _, item := range items {
			if f.Predicate(item) {
				out = append(out, item)
			}
		}
		items = out
	}
	return items
}

func (e *Engine) applySort(items []any, cfg Config, key SortKey) []any {
	if key == "" {
		key = cfg.DefaultSort
	}

	switch key {
	case SortByQuantity:
		sort.SliceStable(items, func(i, j int) bool {
			return NumberAt(items[i], cfg.QuantityField) > NumberAt(items[j], cfg.QuantityField)
		})
	case SortByRarity:
		sort.SliceStable(items, func(i, j int) bool {
			return StringAt(items[i], cfg.RarityField) < StringAt(items[j], cfg.RarityField)
		})
	case SortByRecent:
		sort.SliceStable(items, func(i, j int) bool {
			return TimeAt(items[i], cfg.UpdatedField).After(TimeAt(items[j], cfg.UpdatedField))
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return e.collator.CompareString(StringAt(items[i], cfg.NameField), StringAt(items[j], cfg.NameField)) < 0
		})
	}
	return items
}

func distinctValues(items []any, field string) []string {
	if field == "" {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for _, item := range items {
		v := StringAt(item, field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func copyBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
