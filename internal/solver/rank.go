package solver

import "sort"

// Rank orders accepted builds in place: total raw skill level descending,
// then total effective level descending, then fingerprint ascending so
// equal builds always land in the same order.
func Rank(results []BuildResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalRaw != results[j].TotalRaw {
			return results[i].TotalRaw > results[j].TotalRaw
		}
		if results[i].TotalEffective != results[j].TotalEffective {
			return results[i].TotalEffective > results[j].TotalEffective
		}
		return results[i].fp < results[j].fp
	})
}
