package shopping

import "fmt"

// Item is a purchasable product. Price is in cents to keep sums exact.
// MaxQuantity 0 means unlimited, bounded in practice by the budget.
type Item struct {
	Name        string
	Price       int64
	MaxQuantity int
}

func (i Item) String() string {
	if i.MaxQuantity == 0 {
		return fmt.Sprintf("%s(%s, unlimited)", i.Name, FormatPrice(i.Price))
	}
	return fmt.Sprintf("%s(%s, max %d)", i.Name, FormatPrice(i.Price), i.MaxQuantity)
}

// FormatPrice renders a cent amount as a dollar string, e.g. 1250 -> "$12.50".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
