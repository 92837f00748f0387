package ranges

import "sort"

// Sort returns a sorted copy of rs with duplicates and zero ranges removed.
func Sort(rs []Range) []Range {
	if rs == nil {
		return nil
	}

	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.IsZero() {
			sorted = append(sorted, r)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})

	deduped := sorted[:0]
	for _, r := range sorted {
		if len(deduped) > 0 && deduped[len(deduped)-1] == r {
			continue
		}
		deduped = append(deduped, r)
	}

	return deduped
}

// Merge fuses ranges that touch, i.e. where one ends exactly where the next
// starts. Overlapping ranges are left alone. rs must already be sorted and
// free of duplicates, as returned by Sort.
func Merge(rs []Range) []Range {
	if rs == nil {
		return nil
	}

	merged := make([]Range, 0, len(rs))
	if len(rs) == 0 {
		return merged
	}

	acc := rs[0]
	for _, curr := range rs[1:] {
		if acc.end == curr.start {
			acc = Range{start: acc.start, end: curr.end}
			continue
		}

		merged = append(merged, acc)
		acc = curr
	}

	return append(merged, acc)
}
