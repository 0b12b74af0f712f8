package cashlog

import (
	"iter"
	"slices"
)

// DefaultDelimiter is the delimiter used when none is known.
const DefaultDelimiter = ','

// Ledger is an ordered sequence of entries, together with the delimiter it was read with.
//
// A Ledger never sorts nor deduplicates its entries.
type Ledger struct {
	delimiter rune
	entries   []Entry
}

// NewLedger returns a ledger holding entries, in that order. A zero delimiter means
// DefaultDelimiter.
func NewLedger(delimiter rune, entries ...Entry) *Ledger {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Ledger{delimiter: delimiter, entries: slices.Clone(entries)}
}

// Delimiter returns the delimiter the ledger was read with.
func (l *Ledger) Delimiter() rune { return l.delimiter }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// At returns the i-th entry.
func (l *Ledger) At(i int) Entry { return l.entries[i] }

// Append adds entries at the end of the ledger.
func (l *Ledger) Append(entries ...Entry) { l.entries = append(l.entries, entries...) }

// Entries returns an iterator over the entries in their original order.
func (l *Ledger) Entries() iter.Seq[Entry] { return slices.Values(l.entries) }

// All returns an iterator over the entries and their index, in their original order.
func (l *Ledger) All() iter.Seq2[int, Entry] { return slices.All(l.entries) }

// Totals returns an iterator over the entries with their running total.
func (l *Ledger) Totals() iter.Seq[EntryWithTotal] { return ComputeTotals(l.Entries()) }
