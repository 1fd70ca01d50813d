// Package pricing resolves authoritative unit prices for cart lines.
// Every price is a parallel (NGN, USD) pair of integer major units; the two
// currencies are accumulated independently and never converted.
package pricing

import "github.com/example/bsg-server/internal/models"

// Pair is a price carried in both supported currencies.
type Pair struct {
	NGN int64
	USD int64
}

// Line is a priced quantity, the unit of subtotal accumulation.
type Line struct {
	Unit     Pair
	Quantity int
}

// Resolve maps a product and an optional size label to a unit price pair.
// A matching size entry overrides the base pair. An unmatched label falls
// back to the base pair rather than failing; the storefront offers only the
// labels a product actually has, so a mismatch means a stale client.
func Resolve(product *models.Product, size string) Pair {
	if size != "" {
		for _, s := range product.Sizes {
			if s.Label == size {
				return Pair{NGN: s.Price, USD: s.PriceUSD}
			}
		}
	}
	return Pair{NGN: product.Price, USD: product.PriceUSD}
}

// Subtotal sums unit price times quantity across lines, per currency.
func Subtotal(lines []Line) Pair {
	var total Pair
	for _, line := range lines {
		total.NGN += line.Unit.NGN * int64(line.Quantity)
		total.USD += line.Unit.USD * int64(line.Quantity)
	}
	return total
}
