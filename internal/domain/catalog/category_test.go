package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
)

func TestClassify_FoodFlagWins(t *testing.T) {
	// A food item whose name also matches a keyword rule still classifies
	// as nourriture: the flag short-circuits the rules.
	m := &catalog.Material{ID: 1, Name: "Champignon des bois", IsFood: true}

	assert.Equal(t, catalog.CategoryNourriture, catalog.Classify(m))
}

func TestClassify_KeywordPriority(t *testing.T) {
	// "Bois de chêne pierreux" matches both bois and pierre; the earlier
	// bois rule wins.
	m := &catalog.Material{ID: 2, Name: "Bois de chêne pierreux"}

	assert.Equal(t, catalog.CategoryBois, catalog.Classify(m))
}

func TestClassify_ByKeyword(t *testing.T) {
	cases := []struct {
		name     string
		expected catalog.Category
	}{
		{"Planche en chêne", catalog.CategoryBois},
		{"Bâton noueux", catalog.CategoryBois},
		{"Minerai de fer", catalog.CategoryMinerais},
		{"Pierre brute", catalog.CategoryMinerais},
		{"Rubis poli", catalog.CategoryGemmes},
		{"Émeraude taillée", catalog.CategoryGemmes},
		{"Rune ancienne", catalog.CategoryMagie},
		{"Poussière d'étoile", catalog.CategoryMagie},
		{"Ficelle tressée", catalog.CategoryDivers},
		{"", catalog.CategoryDivers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &catalog.Material{ID: 1, Name: tc.name}
			assert.Equal(t, tc.expected, catalog.Classify(m))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, catalog.CategoryMinerais, catalog.Classify(&catalog.Material{ID: 1, Name: "MINERAI DE CUIVRE"}))
	assert.Equal(t, catalog.CategoryMinerais, catalog.Classify(&catalog.Material{ID: 2, Name: "minerai de cuivre"}))
}

func TestClassify_NilMaterial(t *testing.T) {
	assert.Equal(t, catalog.CategoryDivers, catalog.Classify(nil))
}

func TestClassify_Total(t *testing.T) {
	// Every material lands in exactly one of the known categories,
	// whatever the name looks like.
	known := make(map[catalog.Category]bool)
	for _, c := range catalog.AllCategories {
		known[c] = true
	}

	names := []string{
		"Hache en pierre", "Épée rouillée", "Bois flotté", "Saphir étoilé",
		"Essence de vie", "xyzzy", "  ", "Pain complet", "Charbon ardent",
	}
	for _, name := range names {
		cat := catalog.Classify(&catalog.Material{ID: 1, Name: name})
		assert.True(t, known[cat], "material %q classified outside the known set: %s", name, cat)
	}
}

func TestClassifyRecipe_UsesResultMaterial(t *testing.T) {
	recipe := &catalog.Recipe{
		ID:             10,
		Name:           "Fonte du fer",
		ResultMaterial: &catalog.Material{ID: 3, Name: "Lingot de fer"},
	}

	assert.Equal(t, catalog.CategoryMinerais, catalog.ClassifyRecipe(recipe))
}

func TestClassifyRecipe_MissingResult(t *testing.T) {
	assert.Equal(t, catalog.CategoryDivers, catalog.ClassifyRecipe(&catalog.Recipe{ID: 11, Name: "Recette cassée"}))
	assert.Equal(t, catalog.CategoryDivers, catalog.ClassifyRecipe(nil))
}
