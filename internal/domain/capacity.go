package domain

// Seat counts of the standard table sizes
const (
	seatsSize2 = 2
	seatsSize4 = 4
	seatsSize6 = 6
	seatsSize8 = 8
)

// TheoreticalCapacity derives seating capacity from the table inventory:
// 2*size2 + 4*size4 + 6*size6 + 8*size8 + sum(custom.size * custom.count).
// Integer arithmetic only, client forms must reproduce it exactly.
func TheoreticalCapacity(tables TableInventory, custom []CustomTable) int {
	total := tables.Size2*seatsSize2 +
		tables.Size4*seatsSize4 +
		tables.Size6*seatsSize6 +
		tables.Size8*seatsSize8

	for _, c := range custom {
		total += c.Size * c.Count
	}
	return total
}
