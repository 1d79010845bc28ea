package cart

import "github.com/shopspring/decimal"

// Derived read-only views over the item list. None of these mutate state.

// TotalItems is the sum of quantities across all lines.
func (s State) TotalItems() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// UniqueItems is the number of distinct product lines.
func (s State) UniqueItems() int {
	return len(s.Items)
}

// Total is the sum of price_en * quantity across all lines. Only the numeric
// English price is aggregated; the Farsi price is pre-formatted display text
// and is handled by the i18n helpers instead.
func (s State) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.PriceEn.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// MaxEstimatedMinutes is the largest per-line delivery estimate, used as the
// lower bound of the receipt's delivery window.
func (s State) MaxEstimatedMinutes() int {
	max := 0
	for _, item := range s.Items {
		if item.EstimatedMinutes > max {
			max = item.EstimatedMinutes
		}
	}
	return max
}
