package cashlog

import "iter"

// ComputeTotals returns an iterator over the entries, each with the running total of all
// amounts up to and including it.
//
// The iterator is lazy and pulls entries one by one, in order: there is exactly one output per
// input entry, and the total of the first entry is its own amount. Entries are copied, never
// modified. Iterating twice over the same input yields the same output.
func ComputeTotals(entries iter.Seq[Entry]) iter.Seq[EntryWithTotal] {
	return func(yield func(EntryWithTotal) bool) {
		var total Amount
		for entry := range entries {
			total = total.Add(entry.amount)
			if !yield(EntryWithTotal{Entry: entry, total: total}) {
				return
			}
		}
	}
}
