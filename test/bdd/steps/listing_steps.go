package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
)

type listingItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Rarity   string `json:"rarity"`
	Quantity int    `json:"quantity"`
}

type listingContext struct {
	memoizer *listing.Memoizer
	items    []any
	grouped  bool

	result *listing.Result
	other  *listing.Result
}

// InitializeListingScenario registers the listing engine steps.
func InitializeListingScenario(ctx *godog.ScenarioContext) {
	c := &listingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		memoizer, err := listing.NewMemoizer(listing.NewEngine(), 16)
		if err != nil {
			return ctx, err
		}
		*c = listingContext{memoizer: memoizer}
		return ctx, nil
	})

	ctx.Step(`^a listing of items:$`, c.aListingOfItems)
	ctx.Step(`^the listing is grouped by category$`, c.theListingIsGrouped)
	ctx.Step(`^I run the listing query$`, c.iRunTheListingQuery)
	ctx.Step(`^I run the listing query twice$`, c.iRunTheListingQueryTwice)
	ctx.Step(`^I search for "([^"]*)"$`, c.iSearchFor)
	ctx.Step(`^I filter by category "([^"]*)"$`, c.iFilterByCategory)
	ctx.Step(`^I filter by category "([^"]*)" and rarity "([^"]*)"$`, c.iFilterByCategoryAndRarity)
	ctx.Step(`^I sort by "([^"]*)"$`, c.iSortBy)
	ctx.Step(`^the result should contain (\d+) of (\d+) items$`, c.theResultShouldContainNOfM)
	ctx.Step(`^the items should be in order "([^"]*)"$`, c.theItemsShouldBeInOrder)
	ctx.Step(`^the available categories should be "([^"]*)"$`, c.theAvailableCategoriesShouldBe)
	ctx.Step(`^the available rarities should be "([^"]*)"$`, c.theAvailableRaritiesShouldBe)
	ctx.Step(`^the group order should be "([^"]*)"$`, c.theGroupOrderShouldBe)
	ctx.Step(`^group "([^"]*)" should contain "([^"]*)"$`, c.groupShouldContain)
	ctx.Step(`^group "([^"]*)" should be expanded$`, c.groupShouldBeExpanded)
	ctx.Step(`^both results should be the same instance$`, c.bothResultsShouldBeTheSameInstance)
}

func (c *listingContext) config() listing.Config {
	return listing.Config{
		SearchFields:  []string{"name"},
		CategoryField: "category",
		RarityField:   "rarity",
		Grouped:       c.grouped,
	}
}

func (c *listingContext) query(st listing.State) {
	c.result = c.memoizer.Query(listing.Flat(c.items), c.config(), st, nil)
}

func (c *listingContext) aListingOfItems(table *godog.Table) error {
	for _, row := range dataRows(table) {
		name, err := cellValue(table, row, "name")
		if err != nil {
			return err
		}
		category, err := cellValue(table, row, "category")
		if err != nil {
			return err
		}
		rarity, err := cellValue(table, row, "rarity")
		if err != nil {
			return err
		}
		quantity, err := intCell(table, row, "quantity")
		if err != nil {
			return err
		}
		c.items = append(c.items, &listingItem{
			Name:     name,
			Category: category,
			Rarity:   rarity,
			Quantity: quantity,
		})
	}
	return nil
}

func (c *listingContext) theListingIsGrouped() error {
	c.grouped = true
	return nil
}

func (c *listingContext) iRunTheListingQuery() error {
	c.query(listing.State{})
	return nil
}

func (c *listingContext) iRunTheListingQueryTwice() error {
	c.query(listing.State{})
	c.other = c.result
	c.query(listing.State{})
	return nil
}

func (c *listingContext) iSearchFor(term string) error {
	c.query(listing.State{Search: term})
	return nil
}

func (c *listingContext) iFilterByCategory(category string) error {
	c.query(listing.State{Category: category})
	return nil
}

func (c *listingContext) iFilterByCategoryAndRarity(category, rarity string) error {
	c.query(listing.State{Category: category, Rarity: rarity})
	return nil
}

func (c *listingContext) iSortBy(key string) error {
	c.query(listing.State{SortBy: listing.SortKey(key)})
	return nil
}

func (c *listingContext) theResultShouldContainNOfM(filtered, total int) error {
	if c.result.FilteredCount != filtered || c.result.TotalCount != total {
		return fmt.Errorf("expected %d of %d, got %d of %d",
			filtered, total, c.result.FilteredCount, c.result.TotalCount)
	}
	return nil
}

func (c *listingContext) theItemsShouldBeInOrder(expected string) error {
	names := make([]string, 0, len(c.result.Items))
	for _, item := range c.result.Items {
		names = append(names, item.(*listingItem).Name)
	}
	return compareLists(splitList(expected), names)
}

func (c *listingContext) theAvailableCategoriesShouldBe(expected string) error {
	return compareLists(splitList(expected), c.result.AvailableCategories)
}

func (c *listingContext) theAvailableRaritiesShouldBe(expected string) error {
	return compareLists(splitList(expected), c.result.AvailableRarities)
}

func (c *listingContext) theGroupOrderShouldBe(expected string) error {
	return compareLists(splitList(expected), c.result.GroupOrder)
}

func (c *listingContext) groupShouldContain(group, expected string) error {
	items, ok := c.result.Groups[group]
	if !ok {
		return fmt.Errorf("no group %q in result", group)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.(*listingItem).Name)
	}
	return compareLists(splitList(expected), names)
}

func (c *listingContext) groupShouldBeExpanded(group string) error {
	if !c.result.Expanded[group] {
		return fmt.Errorf("group %q is not expanded", group)
	}
	return nil
}

func (c *listingContext) bothResultsShouldBeTheSameInstance() error {
	if c.result != c.other {
		return fmt.Errorf("expected the cached result, got a fresh evaluation")
	}
	return nil
}

func compareLists(expected, actual []string) error {
	if strings.Join(expected, "|") != strings.Join(actual, "|") {
		return fmt.Errorf("expected %v, got %v", expected, actual)
	}
	return nil
}
