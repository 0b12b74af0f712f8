// Package cashlog reads, checks and totals cash ledgers kept as delimited text files.
//
// A ledger file is a header row followed by one row per entry:
//
//	datetime,amount,desc
//	2020-01-01 00:00:00+00:00,+5,First gift
//	2020-01-05 00:00:00+00:00,-3.1,First expense
//
// The delimiter is whatever character follows the leading "datetime" token of the header, or
// the one declared by an optional "sep=<c>" first line. "datetime" and "amount" columns are
// required, "desc" is optional and a "total" column, as written back by this package, is
// ignored on read.
//
// The package is organized around a small pipeline:
//   - Normalization: ParseDatetime and ParseAmount turn raw fields into typed values.
//   - Detection: DetectDialect peeks at the head of a stream to find the delimiter.
//   - Decoding: a Decoder turns a stream into a Ledger, failing on the first bad row.
//   - Aggregation: ComputeTotals lazily attaches the running total to each Entry.
//   - Encoding: an Encoder writes entries, with or without totals, back as delimited rows.
//
// Nothing in this package logs, reads the environment or opens files: streams are owned by
// the caller.
package cashlog
