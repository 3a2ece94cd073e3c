package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func i32(v int32) *int32 { return &v }

func TestEffectiveUnitPrice(t *testing.T) {
	price := dec("100.00")
	sale := dec("80.00")

	if got := EffectiveUnitPrice(price, nil); !got.Equal(price) {
		t.Errorf("without sale price: got %s, want %s", got, price)
	}
	if got := EffectiveUnitPrice(price, &sale); !got.Equal(sale) {
		t.Errorf("with sale price: got %s, want %s", got, sale)
	}
}

func TestMatchTier(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, MaxQuantity: nil, DiscountPercentage: dec("10")},
		{MinQuantity: 50, MaxQuantity: i32(99), DiscountPercentage: dec("15")},
		{MinQuantity: 100, MaxQuantity: nil, DiscountPercentage: dec("20")},
	}

	cases := []struct {
		name     string
		quantity int32
		want     *string // discount percentage, nil = no match
	}{
		{"below all tiers", 5, nil},
		{"exactly at min", 10, strptr("10")},
		{"overlap resolves to highest min", 60, strptr("15")},
		{"above bounded tier max falls back", 99, strptr("15")},
		{"unbounded top tier", 250, strptr("20")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchTier(tiers, tc.quantity)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected no match, got tier min=%d", got.MinQuantity)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected tier with discount %s, got no match", *tc.want)
			}
			if !got.DiscountPercentage.Equal(dec(*tc.want)) {
				t.Errorf("got discount %s, want %s", got.DiscountPercentage, *tc.want)
			}
		})
	}
}

func TestMatchTierGapBetweenTiers(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, MaxQuantity: i32(20), DiscountPercentage: dec("5")},
		{MinQuantity: 50, MaxQuantity: nil, DiscountPercentage: dec("10")},
	}
	if got := MatchTier(tiers, 30); got != nil {
		t.Errorf("quantity in gap should not match, got tier min=%d", got.MinQuantity)
	}
}

func TestPriceLine(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, MaxQuantity: nil, DiscountPercentage: dec("10")},
	}

	t.Run("no tier match", func(t *testing.T) {
		line := PriceLine(dec("25.00"), 3, tiers)
		if !line.FinalUnitPrice.Equal(dec("25.00")) {
			t.Errorf("final unit price = %s, want 25.00", line.FinalUnitPrice)
		}
		if !line.LineTotal.Equal(dec("75.00")) {
			t.Errorf("line total = %s, want 75.00", line.LineTotal)
		}
		if !line.DiscountPercentage.IsZero() {
			t.Errorf("discount = %s, want 0", line.DiscountPercentage)
		}
	})

	t.Run("tier applied", func(t *testing.T) {
		line := PriceLine(dec("25.00"), 10, tiers)
		if !line.FinalUnitPrice.Equal(dec("22.50")) {
			t.Errorf("final unit price = %s, want 22.50", line.FinalUnitPrice)
		}
		if !line.LineTotal.Equal(dec("225.00")) {
			t.Errorf("line total = %s, want 225.00", line.LineTotal)
		}
	})

	t.Run("line total is quantity times final unit price", func(t *testing.T) {
		line := PriceLine(dec("19.99"), 13, tiers)
		want := line.FinalUnitPrice.Mul(decimal.NewFromInt(13)).Round(2)
		if !line.LineTotal.Equal(want) {
			t.Errorf("line total = %s, want %s", line.LineTotal, want)
		}
	})
}

func TestOrderTotals(t *testing.T) {
	tiers := []Tier{
		{MinQuantity: 10, MaxQuantity: nil, DiscountPercentage: dec("10")},
	}
	lines := []Line{
		PriceLine(dec("100.00"), 10, tiers), // 1000 gross, 900 net
		PriceLine(dec("40.00"), 2, nil),     // 80 gross, no discount
	}
	totals := OrderTotals(lines, dec("15.00"))

	if !totals.Subtotal.Equal(dec("1080.00")) {
		t.Errorf("subtotal = %s, want 1080.00", totals.Subtotal)
	}
	if !totals.BulkDiscountTotal.Equal(dec("100.00")) {
		t.Errorf("bulk discount = %s, want 100.00", totals.BulkDiscountTotal)
	}
	if !totals.FinalTotal.Equal(dec("995.00")) {
		t.Errorf("final total = %s, want 995.00", totals.FinalTotal)
	}

	// The summary invariant must survive rounding.
	recomputed := totals.Subtotal.Sub(totals.BulkDiscountTotal).Add(totals.ShippingCost)
	if !totals.FinalTotal.Equal(recomputed) {
		t.Errorf("final total %s != subtotal - discount + shipping %s", totals.FinalTotal, recomputed)
	}
}

func TestOrderTotalsEmpty(t *testing.T) {
	totals := OrderTotals(nil, dec("0"))
	if !totals.FinalTotal.IsZero() {
		t.Errorf("empty order final total = %s, want 0", totals.FinalTotal)
	}
}

func TestComboOriginalPrice(t *testing.T) {
	got := ComboOriginalPrice([]ComboConstituent{
		{Price: dec("30.00"), Quantity: 2},
		{Price: dec("12.50"), Quantity: 1},
	})
	if !got.Equal(dec("72.50")) {
		t.Errorf("original price = %s, want 72.50", got)
	}
}

func TestComboSavings(t *testing.T) {
	if got := ComboSavings(dec("72.50"), dec("60.00")); !got.Equal(dec("12.50")) {
		t.Errorf("savings = %s, want 12.50", got)
	}
	// A combo priced above its parts yields negative savings; it is not clamped.
	if got := ComboSavings(dec("50.00"), dec("55.00")); !got.Equal(dec("-5.00")) {
		t.Errorf("negative savings = %s, want -5.00", got)
	}
}

func strptr(s string) *string { return &s }
