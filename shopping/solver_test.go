package shopping_test

import (
	"testing"

	"github.com/santidefelice/cspkit/shopping"
)

func newSolver(t *testing.T, items []shopping.Item, budget int64, minItems int) *shopping.Solver {
	t.Helper()

	s, err := shopping.NewSolver(items, budget, minItems)
	if err != nil {
		t.Fatalf("failed to create solver: %s", err)
	}
	return s
}

func checkBasket(t *testing.T, b shopping.Basket, items []shopping.Item, budget int64, minItems int) {
	t.Helper()

	var total int64
	count := 0
	for _, line := range b.Lines {
		total += line.Subtotal
		count += line.Quantity

		for _, item := range items {
			if item.Name == line.Name {
				if sub := int64(line.Quantity) * item.Price; sub != line.Subtotal {
					t.Fatalf("line %s subtotal %d, expecting %d", line.Name, line.Subtotal, sub)
				}
				if item.MaxQuantity > 0 && line.Quantity > item.MaxQuantity {
					t.Fatalf("line %s exceeds quantity limit %d", line.Name, item.MaxQuantity)
				}
			}
		}
	}

	if total != b.Total {
		t.Fatalf("basket total %d does not match lines total %d", b.Total, total)
	}
	if count != b.Count {
		t.Fatalf("basket count %d does not match lines count %d", b.Count, count)
	}
	if b.Total > budget {
		t.Fatalf("basket total %d exceeds budget %d", b.Total, budget)
	}
	if b.Count < minItems {
		t.Fatalf("basket has %d items, minimum is %d", b.Count, minItems)
	}
}

func TestFindAllPartyShopping(t *testing.T) {
	items := []shopping.Item{
		{Name: "Soda", Price: 250},
		{Name: "Chips", Price: 300},
		{Name: "Cake", Price: 1500, MaxQuantity: 1},
		{Name: "Pizza", Price: 1200, MaxQuantity: 2},
	}
	budget := int64(3000)
	minItems := 5

	baskets := newSolver(t, items, budget, minItems).FindAll()
	if len(baskets) == 0 {
		t.Fatalf("expecting at least one valid combination")
	}

	for _, b := range baskets {
		checkBasket(t, b, items, budget, minItems)
	}
}

func TestFindAllRespectsQuantityLimits(t *testing.T) {
	items := []shopping.Item{
		{Name: "Cake", Price: 100, MaxQuantity: 1},
	}

	baskets := newSolver(t, items, 1000, 0).FindAll()

	// Quantity 0 and 1 only, even though ten cakes would fit the budget.
	if len(baskets) != 2 {
		t.Fatalf("expecting 2 combinations, got %d", len(baskets))
	}
}

func TestFindAllImpossible(t *testing.T) {
	items := []shopping.Item{
		{Name: "ExpensiveA", Price: 2000, MaxQuantity: 1},
		{Name: "ExpensiveB", Price: 2500, MaxQuantity: 1},
		{Name: "ExpensiveC", Price: 3000, MaxQuantity: 1},
	}

	baskets := newSolver(t, items, 1500, 2).FindAll()
	if len(baskets) != 0 {
		t.Fatalf("expecting no combination for an impossible budget, got %d", len(baskets))
	}
}

func TestEmptyBasketNeedsNoMinimum(t *testing.T) {
	items := []shopping.Item{
		{Name: "Water", Price: 100},
	}

	baskets := newSolver(t, items, 50, 0).FindAll()
	if len(baskets) != 1 {
		t.Fatalf("expecting only the empty basket, got %d combinations", len(baskets))
	}
	if baskets[0].Count != 0 || baskets[0].Total != 0 {
		t.Fatalf("expecting empty basket, got %s", baskets[0])
	}
}

func TestFindFirstMatchesEnumerationOrder(t *testing.T) {
	items := []shopping.Item{
		{Name: "Balloon", Price: 100},
		{Name: "Plate", Price: 200},
		{Name: "Cup", Price: 150},
	}
	budget := int64(1000)
	minItems := 3

	solver := newSolver(t, items, budget, minItems)

	all := solver.FindAll()
	if len(all) == 0 {
		t.Fatalf("expecting combinations for a flexible scenario")
	}

	first, ok := solver.FindFirst()
	if !ok {
		t.Fatalf("FindFirst found nothing while FindAll found %d combinations", len(all))
	}

	checkBasket(t, first, items, budget, minItems)

	if first.String() != all[0].String() {
		t.Fatalf("FindFirst returned %s, expecting first enumerated %s", first, all[0])
	}
}

func TestFindFirstTightBudget(t *testing.T) {
	items := []shopping.Item{
		{Name: "Water", Price: 100},
		{Name: "Sandwich", Price: 500},
		{Name: "Apple", Price: 50},
	}

	basket, ok := newSolver(t, items, 1000, 8).FindFirst()
	if !ok {
		t.Fatalf("eight cheap items should fit a $10.00 budget")
	}

	checkBasket(t, basket, items, 1000, 8)
}

func TestNewSolverRejectsBadItems(t *testing.T) {
	if _, err := shopping.NewSolver([]shopping.Item{{Name: "Free", Price: 0}}, 100, 0); err == nil {
		t.Fatalf("expecting error for zero-price item")
	}
	if _, err := shopping.NewSolver([]shopping.Item{{Name: "Neg", Price: 100, MaxQuantity: -1}}, 100, 0); err == nil {
		t.Fatalf("expecting error for negative quantity limit")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[int64]string{
		0:     "$0.00",
		5:     "$0.05",
		1250:  "$12.50",
		-325:  "-$3.25",
		10000: "$100.00",
	}

	for cents, want := range cases {
		if got := shopping.FormatPrice(cents); got != want {
			t.Errorf("FormatPrice(%d) = %q, expecting %q", cents, got, want)
		}
	}
}
