package cashlog

import (
	"encoding/json"
	"time"
)

// Entry is one ledger record: a dated, signed amount with an optional description.
//
// Entry is an immutable value: fields are only set by NewEntry, and every derived record
// (like EntryWithTotal) is a new value.
type Entry struct {
	when   time.Time
	amount Amount
	desc   string
}

// NewEntry returns an Entry.
func NewEntry(when time.Time, amount Amount, desc string) Entry {
	return Entry{when: when, amount: amount, desc: desc}
}

// When returns the entry datetime, in the UTC offset it was read with.
func (e Entry) When() time.Time { return e.when }

// Amount returns the signed amount of the entry.
func (e Entry) Amount() Amount { return e.amount }

// Desc returns the free-form description, possibly empty.
func (e Entry) Desc() string { return e.desc }

// Equal reports whether e and f have the same instant, amount and description.
// Offsets and trailing zeros of amounts are not compared.
func (e Entry) Equal(f Entry) bool {
	return e.when.Equal(f.when) && e.amount.Equal(f.amount) && e.desc == f.desc
}

// MarshalJSON writes the entry as {"datetime":..,"amount":..,"desc":..}.
func (e Entry) MarshalJSON() ([]byte, error) { return json.Marshal(e.row()) }

// MarshalYAML writes the entry with the same keys as MarshalJSON.
func (e Entry) MarshalYAML() (interface{}, error) { return e.row(), nil }

func (e Entry) row() entryRow {
	return entryRow{Datetime: FormatDatetime(e.when), Amount: e.amount, Desc: e.desc}
}

// EntryWithTotal is an Entry with the running total of all amounts up to and including it.
type EntryWithTotal struct {
	Entry
	total Amount
}

// Total returns the running total at this entry.
func (e EntryWithTotal) Total() Amount { return e.total }

// MarshalJSON writes the entry as {"datetime":..,"amount":..,"total":..,"desc":..}.
func (e EntryWithTotal) MarshalJSON() ([]byte, error) { return json.Marshal(e.row()) }

// MarshalYAML writes the entry with the same keys as MarshalJSON.
func (e EntryWithTotal) MarshalYAML() (interface{}, error) { return e.row(), nil }

func (e EntryWithTotal) row() row {
	return row{Datetime: FormatDatetime(e.when), Amount: e.amount, Total: e.total, Desc: e.desc}
}

// entryRow and row are the JSON and YAML shapes of entries, fields in column order.
type entryRow struct {
	Datetime string `json:"datetime" yaml:"datetime"`
	Amount   Amount `json:"amount" yaml:"amount"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty"`
}

type row struct {
	Datetime string `json:"datetime" yaml:"datetime"`
	Amount   Amount `json:"amount" yaml:"amount"`
	Total    Amount `json:"total" yaml:"total"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty"`
}
