// Package pricing holds the arithmetic shared by order creation, combo
// management, and the bulk-tier editor. Everything here is pure: callers
// fetch the rows, pricing does the math.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Tier is one quantity band of a bulk pricing set.
// MaxQuantity == nil means the band is unbounded above.
type Tier struct {
	MinQuantity        int32
	MaxQuantity        *int32
	DiscountPercentage decimal.Decimal
}

// EffectiveUnitPrice returns the sale price when one is set, otherwise the
// regular price.
func EffectiveUnitPrice(price decimal.Decimal, salePrice *decimal.Decimal) decimal.Decimal {
	if salePrice != nil {
		return *salePrice
	}
	return price
}

// MatchTier returns the tier whose [min, max] range contains quantity.
// When ranges overlap, the tier with the highest qualifying MinQuantity wins;
// this makes overlap resolution deterministic regardless of input order.
// Returns nil when no tier applies.
func MatchTier(tiers []Tier, quantity int32) *Tier {
	var best *Tier
	for i := range tiers {
		t := &tiers[i]
		if quantity < t.MinQuantity {
			continue
		}
		if t.MaxQuantity != nil && quantity > *t.MaxQuantity {
			continue
		}
		if best == nil || t.MinQuantity > best.MinQuantity {
			best = t
		}
	}
	return best
}

// Line is the priced form of a single order line.
type Line struct {
	Quantity           int32
	UnitPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	FinalUnitPrice     decimal.Decimal
	LineTotal          decimal.Decimal
}

// PriceLine applies the matching bulk tier (if any) to one order line.
// LineTotal is always quantity * FinalUnitPrice.
func PriceLine(unitPrice decimal.Decimal, quantity int32, tiers []Tier) Line {
	line := Line{
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		FinalUnitPrice: unitPrice,
	}
	if t := MatchTier(tiers, quantity); t != nil && t.DiscountPercentage.IsPositive() {
		line.DiscountPercentage = t.DiscountPercentage
		factor := decimal.NewFromInt(100).Sub(t.DiscountPercentage).Div(decimal.NewFromInt(100))
		line.FinalUnitPrice = unitPrice.Mul(factor).Round(2)
	}
	line.LineTotal = line.FinalUnitPrice.Mul(decimal.NewFromInt32(quantity)).Round(2)
	return line
}

// Totals is the order-level pricing summary.
type Totals struct {
	Subtotal          decimal.Decimal
	BulkDiscountTotal decimal.Decimal
	ShippingCost      decimal.Decimal
	FinalTotal        decimal.Decimal
}

// OrderTotals sums priced lines into the order summary. Subtotal is the
// pre-discount sum, so the invariant
// FinalTotal == Subtotal - BulkDiscountTotal + ShippingCost always holds.
func OrderTotals(lines []Line, shippingCost decimal.Decimal) Totals {
	subtotal := decimal.Zero
	discounted := decimal.Zero
	for _, l := range lines {
		qty := decimal.NewFromInt32(l.Quantity)
		subtotal = subtotal.Add(l.UnitPrice.Mul(qty))
		discounted = discounted.Add(l.LineTotal)
	}
	subtotal = subtotal.Round(2)
	discount := subtotal.Sub(discounted).Round(2)
	return Totals{
		Subtotal:          subtotal,
		BulkDiscountTotal: discount,
		ShippingCost:      shippingCost,
		FinalTotal:        subtotal.Sub(discount).Add(shippingCost).Round(2),
	}
}

// ComboConstituent is one product inside a combo with its price captured at
// save time.
type ComboConstituent struct {
	Price    decimal.Decimal
	Quantity int32
}

// ComboOriginalPrice recomputes the sum-of-parts price from current
// constituent prices. Stale client-supplied totals are never trusted.
func ComboOriginalPrice(constituents []ComboConstituent) decimal.Decimal {
	total := decimal.Zero
	for _, c := range constituents {
		total = total.Add(c.Price.Mul(decimal.NewFromInt32(c.Quantity)))
	}
	return total.Round(2)
}

// ComboSavings may be negative when a combo is priced above the sum of its
// parts; that is allowed and left visible to the admin.
func ComboSavings(originalPrice, comboPrice decimal.Decimal) decimal.Decimal {
	return originalPrice.Sub(comboPrice).Round(2)
}
