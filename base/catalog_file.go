package base

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/santidefelice/cspkit/shopping"
)

// Represents a shopping problem stored on disk: the item catalog, a budget
// and the minimum item count a basket must reach.
type CatalogFile struct {
	Name     string
	Budget   int64 // cents
	MinItems int
	Items    []shopping.Item
}

type rawCatalogFile struct {
	Name     string      `json:"name"`
	Budget   json.Number `json:"budget"`
	MinItems int         `json:"min_items"`
	Items    []struct {
		Name        string      `json:"name"`
		Price       json.Number `json:"price"`
		MaxQuantity int         `json:"max_quantity,omitempty"`
	} `json:"items"`
}

// Generates catalog struct from JSON file. Prices and budget are dollar
// amounts, either numbers or strings, converted to cents.
func ReadCatalogFile(infoPath string) (*CatalogFile, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return nil, fmt.Errorf("can't read catalog file %s: %s", infoPath, err)
	}

	raw := &rawCatalogFile{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("unable to parse catalog data in %s: %s", infoPath, err)
	}

	budget, err := parsePriceNumber(raw.Budget)
	if err != nil {
		return nil, fmt.Errorf("invalid budget in %s: %s", infoPath, err)
	}

	info := &CatalogFile{
		Name:     raw.Name,
		Budget:   budget,
		MinItems: raw.MinItems,
		Items:    make([]shopping.Item, 0, len(raw.Items)),
	}

	for _, item := range raw.Items {
		price, err := parsePriceNumber(item.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for item %q in %s: %s", item.Name, infoPath, err)
		}

		info.Items = append(info.Items, shopping.Item{
			Name:        item.Name,
			Price:       price,
			MaxQuantity: item.MaxQuantity,
		})
	}

	return info, nil
}

// parsePriceNumber converts a JSON price value to cents. Plain decimal
// forms go through ParsePrice; exponent forms such as 2.5e1 are legal JSON
// numbers that json.Number keeps verbatim, those are rounded from float.
func parsePriceNumber(number json.Number) (int64, error) {
	text := number.String()
	if !strings.ContainsAny(text, "eE") {
		return ParsePrice(text)
	}

	value, err := number.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %s", text, err)
	}

	return int64(math.Round(value * 100)), nil
}

// ParsePrice converts a dollar amount such as "12.50", "$3" or "0.05" into
// cents. At most two fraction digits are accepted.
func ParsePrice(text string) (int64, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "$")
	if text == "" {
		return 0, fmt.Errorf("empty price")
	}

	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	whole, fraction, _ := strings.Cut(text, ".")
	if whole == "" {
		whole = "0"
	}

	var dollars int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid price %q", text)
		}
		dollars = dollars*10 + int64(r-'0')
	}
	cents := dollars * 100

	switch len(fraction) {
	case 0:
		// whole dollars only
	case 1:
		if fraction[0] < '0' || fraction[0] > '9' {
			return 0, fmt.Errorf("invalid price %q", text)
		}
		cents += int64(fraction[0]-'0') * 10
	case 2:
		for _, r := range fraction {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid price %q", text)
			}
		}
		cents += int64(fraction[0]-'0')*10 + int64(fraction[1]-'0')
	default:
		return 0, fmt.Errorf("price %q has more than two fraction digits", text)
	}

	if negative {
		cents = -cents
	}

	return cents, nil
}
