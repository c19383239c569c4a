package usecase

import "sort"

// RankLanguages counts the non-empty entries of langs and returns the
// distinct names by descending count. Equal counts keep first-seen order.
func RankLanguages(langs []string) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, l := range langs {
		if l == "" {
			continue
		}
		if _, ok := counts[l]; !ok {
			order = append(order, l)
		}
		counts[l]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}
