package cashlog

import (
	"testing"
	"time"
)

// day is a helper for tests to create a midnight UTC datetime.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// gifts are the entries described by every giftsCSV variant.
func gifts() []Entry {
	return []Entry{
		NewEntry(day(2020, time.January, 1), A(5), "First gift"),
		NewEntry(day(2020, time.January, 3), A(7.5), "Second gift"),
		NewEntry(day(2020, time.January, 5), A(-3.1), "First expense"),
		NewEntry(day(2020, time.January, 5), A(0), "Zero"),
		NewEntry(day(2020, time.January, 5), A(0), "Negative zero"),
	}
}

const giftsCSV = `datetime,amount,desc
2020-01-01 00:00:00+00:00,+5,First gift
2020-01-03 00:00:00+00:00,+7.500,Second gift
2020-01-05 00:00:00+00:00,-3.1,First expense
2020-01-05 00:00:00+00:00,+0,Zero
2020-01-05 00:00:00+00:00,-0,Negative zero
`

// assertEntries fails the test if got and want differ in length or in any entry.
func assertEntries(t *testing.T, got, want []Entry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("entry %d = {%v %v %q}, want {%v %v %q}", i,
				got[i].When(), got[i].Amount(), got[i].Desc(),
				want[i].When(), want[i].Amount(), want[i].Desc())
		}
	}
}
