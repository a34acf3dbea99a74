package catalog

import "strings"

// Category groups materials and recipes for display.
type Category string

const (
	CategoryNourriture Category = "nourriture"
	CategoryBois       Category = "bois"
	CategoryMinerais   Category = "minerais"
	CategoryGemmes     Category = "gemmes"
	CategoryMagie      Category = "magie"
	CategoryDivers     Category = "divers"
)

// AllCategories lists every category in classification priority order.
// Divers is the catch-all and always comes last.
var AllCategories = []Category{
	CategoryNourriture,
	CategoryBois,
	CategoryMinerais,
	CategoryGemmes,
	CategoryMagie,
	CategoryDivers,
}

// classificationRule maps a keyword set to a category. Rules are evaluated
// in declaration order against the lower-cased material name; the first
// matching rule wins, so a "bois" match shadows a later "pierre" match.
type classificationRule struct {
	category Category
	keywords []string
}

var classificationRules = []classificationRule{
	{CategoryBois, []string{"bois", "planche", "bâton", "baton", "branche", "écorce"}},
	{CategoryMinerais, []string{"pierre", "minerai", "fer", "cuivre", "or", "argent", "étain", "charbon"}},
	{CategoryGemmes, []string{"rubis", "émeraude", "diamant", "saphir", "améthyste", "jaspe", "jade", "agate"}},
	{CategoryMagie, []string{"rune", "poussière", "essence", "cristal", "amulette", "parchemin"}},
}

// Classify maps a material to exactly one category.
// The is_food flag short-circuits the keyword rules; anything unmatched
// falls through to divers. Nil materials classify as divers so that a
// partially refreshed snapshot never breaks a view.
func Classify(m *Material) Category {
	if m == nil {
		return CategoryDivers
	}
	if m.IsFood {
		return CategoryNourriture
	}

	name := strings.ToLower(m.Name)
	for _, rule := range classificationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.category
			}
		}
	}

	return CategoryDivers
}

// ClassifyRecipe classifies a recipe through its result material.
func ClassifyRecipe(r *Recipe) Category {
	if r == nil {
		return CategoryDivers
	}
	return Classify(r.ResultMaterial)
}
