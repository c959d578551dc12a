package shopping

import "fmt"

// Line is one item choice inside a basket.
type Line struct {
	Name     string
	Quantity int
	Subtotal int64
}

// Basket is a valid purchase combination: total cost within budget and item
// count meeting the minimum.
type Basket struct {
	Lines []Line
	Total int64
	Count int
}

func (b Basket) String() string {
	if len(b.Lines) == 0 {
		return fmt.Sprintf("empty basket (%s)", FormatPrice(b.Total))
	}

	out := ""
	for _, line := range b.Lines {
		out += fmt.Sprintf("%s x%d = %s; ", line.Name, line.Quantity, FormatPrice(line.Subtotal))
	}
	return out + "total " + FormatPrice(b.Total)
}

// Solver enumerates purchase combinations by deciding a quantity for each
// item in turn, pruning branches that bust the budget or can no longer reach
// the minimum item count.
type Solver struct {
	items    []Item
	budget   int64
	minItems int
}

// NewSolver copies the item list. Items with a non-positive price are
// rejected, an unlimited free item would make the search space infinite.
func NewSolver(items []Item, budget int64, minItems int) (*Solver, error) {
	owned := make([]Item, len(items))
	copy(owned, items)

	for _, item := range owned {
		if item.Price <= 0 {
			return nil, fmt.Errorf("item %q has non-positive price %d", item.Name, item.Price)
		}
		if item.MaxQuantity < 0 {
			return nil, fmt.Errorf("item %q has negative quantity limit %d", item.Name, item.MaxQuantity)
		}
	}

	return &Solver{
		items:    owned,
		budget:   budget,
		minItems: minItems,
	}, nil
}

// FindAll returns every valid basket. Enumeration order is deterministic:
// item order as given, quantities ascending from zero.
func (s *Solver) FindAll() []Basket {
	var solutions []Basket

	s.search(0, nil, 0, 0, func(b Basket) bool {
		solutions = append(solutions, b)
		return false
	})

	return solutions
}

// FindFirst returns the first valid basket in enumeration order.
func (s *Solver) FindFirst() (Basket, bool) {
	var found Basket
	ok := false

	s.search(0, nil, 0, 0, func(b Basket) bool {
		found = b
		ok = true
		return true
	})

	return found, ok
}

// search walks the quantity decision tree. yield receives each complete
// valid basket and returns true to stop the search.
func (s *Solver) search(index int, lines []Line, cost int64, count int, yield func(Basket) bool) bool {
	if index == len(s.items) {
		if count >= s.minItems && cost <= s.budget {
			basket := Basket{
				Lines: make([]Line, len(lines)),
				Total: cost,
				Count: count,
			}
			copy(basket.Lines, lines)
			return yield(basket)
		}
		return false
	}

	// Feasibility pruning: give up when even maxed-out quantities of every
	// remaining item can not reach the minimum count.
	if count+s.maxRemainingCount(index, s.budget-cost) < s.minItems {
		return false
	}

	item := s.items[index]

	maxQuantity := item.MaxQuantity
	if maxQuantity == 0 {
		maxQuantity = int((s.budget - cost) / item.Price)
	}

	for quantity := 0; quantity <= maxQuantity; quantity++ {
		subtotal := int64(quantity) * item.Price
		newCost := cost + subtotal

		// Higher quantities only cost more, stop at the first overrun.
		if newCost > s.budget {
			break
		}

		next := lines
		if quantity > 0 {
			next = append(lines, Line{
				Name:     item.Name,
				Quantity: quantity,
				Subtotal: subtotal,
			})
		}

		if s.search(index+1, next, newCost, count+quantity, yield) {
			return true
		}
	}

	return false
}

// maxRemainingCount is an upper bound on how many more items the remaining
// positions can contribute with the remaining budget.
func (s *Solver) maxRemainingCount(index int, remaining int64) int {
	total := 0

	for i := index; i < len(s.items); i++ {
		item := s.items[i]
		affordable := int(remaining / item.Price)

		if item.MaxQuantity > 0 && item.MaxQuantity < affordable {
			total += item.MaxQuantity
		} else {
			total += affordable
		}
	}

	return total
}
