package cashlog

import (
	"strings"
	"time"
)

// DatetimeFormat is the layout used to write datetimes. It always carries a numeric UTC offset
// and only writes the fractional seconds that are not zero.
const DatetimeFormat = "2006-01-02 15:04:05.999999999-07:00"

// readDatetimeFormats are the layouts accepted on read, tried in order.
// Fractional seconds are accepted after the seconds field even if the layout omits them.
var readDatetimeFormats = []string{
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04Z07:00",
}

// ParseDatetime parses a datetime carrying an explicit UTC offset, like
// "2020-01-01 00:00:00+00:00" or "2020-01-01T00:00:00Z".
//
// Surrounding blanks are ignored. A datetime without offset is ambiguous and is rejected.
func ParseDatetime(raw string) (time.Time, error) {
	str := strings.TrimSpace(raw)
	var firstErr error
	for _, layout := range readDatetimeFormats {
		t, err := time.Parse(layout, str)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &ParseError{Column: ColumnDatetime, Value: raw, Err: firstErr}
}

// MustParseDatetime is like ParseDatetime but panics on error.
func MustParseDatetime(raw string) time.Time {
	t, err := ParseDatetime(raw)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// FormatDatetime writes t in DatetimeFormat, which ParseDatetime reads back to the same instant
// and offset.
func FormatDatetime(t time.Time) string { return t.Format(DatetimeFormat) }
