// Package pricing contains the pure arithmetic behind transaction totals.
// Nothing here mutates its inputs or touches storage; callers persist the
// returned values.
package pricing

import "math"

// Line is the pricing view of a single transaction item. DiscountPercent is
// the effective percentage for this computation: the current product
// discount when the product still exists, otherwise the snapshot stored on
// the item.
type Line struct {
	Quantity        float64
	Price           int64 // unit price in the smallest currency unit
	DiscountPercent float64
	SubTotal        int64 // quantity x price, pre-discount
}

// ItemSubtotal computes quantity x unit price, rounded to the currency's
// integer unit. Discounts are never baked into the subtotal.
func ItemSubtotal(quantity float64, price int64) int64 {
	return int64(math.Round(quantity * float64(price)))
}

// ItemDiscount computes the discount amount for one line:
// floor(price x percent / 100) per unit, times the quantity.
func ItemDiscount(price int64, percent, quantity float64) int64 {
	perUnit := math.Floor(float64(price) * percent / 100)
	return int64(math.Round(perUnit * quantity))
}

// Subtotal sums the pre-discount line subtotals.
func Subtotal(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.SubTotal
	}
	return sum
}

// DiscountTotal sums the per-line discounts and stacks the manually entered
// transaction discount on top.
func DiscountTotal(lines []Line, manualDiscount int64) int64 {
	total := manualDiscount
	for _, l := range lines {
		total += ItemDiscount(l.Price, l.DiscountPercent, l.Quantity)
	}
	return total
}

// Total computes the amount due: subtotal minus all discounts, floored at
// zero.
func Total(lines []Line, manualDiscount int64) int64 {
	total := Subtotal(lines) - DiscountTotal(lines, manualDiscount)
	if total < 0 {
		return 0
	}
	return total
}
