package listing

// SortKey selects one of the fixed sort orders.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByQuantity SortKey = "quantity"
	SortByRarity   SortKey = "rarity"
	SortByRecent   SortKey = "recent"
)

// FacetAll is the sentinel facet value that disables a facet filter.
const FacetAll = "all"

// CustomFilter is a named predicate toggle, such as "craftable".
// Default decides whether it applies when the player never touched it.
type CustomFilter struct {
	Name      string
	Default   bool
	Predicate func(item any) bool
}

// Config describes the shape of the items being listed: which dotted
// paths feed search, facets and sorting. It is fixed per screen, unlike
// State which changes with every interaction.
type Config struct {
	SearchFields  []string
	CategoryField string
	RarityField   string
	NameField     string
	QuantityField string
	UpdatedField  string
	DefaultSort   SortKey
	Grouped       bool
	CustomFilters []CustomFilter
}

func (c Config) withDefaults() Config {
	if c.NameField == "" {
		c.NameField = "name"
	}
	if c.QuantityField == "" {
		c.QuantityField = "quantity"
	}
	if c.UpdatedField == "" {
		c.UpdatedField = "updated_at"
	}
	if c.DefaultSort == "" {
		c.DefaultSort = SortByName
	}
	return c
}

// State carries the player's current interaction state for one listing.
// Zero values mean "no filtering": empty search, both facets on all,
// default sort, untouched toggles.
type State struct {
	Search   string
	Category string
	Rarity   string
	SortBy   SortKey
	Toggles  map[string]bool
	Expanded map[string]bool
}

// FilterEnabled resolves a custom filter toggle: an explicit player
// choice wins, otherwise the filter's default applies.
func (s State) FilterEnabled(f CustomFilter) bool {
	if enabled, ok := s.Toggles[f.Name]; ok {
		return enabled
	}
	return f.Default
}
