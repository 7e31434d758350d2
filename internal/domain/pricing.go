package domain

// TotalPrice computes the reservation price at booking time:
// pack base price plus the sum of selected supplement prices.
// Decor and theme do not add cost.
func TotalPrice(pack *PackOffer, supplements []*SupplementService) float64 {
	total := pack.BasePrice
	for _, s := range supplements {
		total += s.Price
	}
	return total
}
