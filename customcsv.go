// # CustomCSV: A Streaming CSV Codec for Go
//
// CustomCSV is a from-scratch streaming CSV library: a character-level reader that turns an input stream into rows of fields, and a writer that turns rows of fields into correctly escaped CSV text.
//
// # Features
//
// - Streaming reader with a configurable delimiter and quote character, one-character lookahead, and lazy single-pass row production.
// - Lenient parsing: unexpected quote placement is never an error; every input has a deterministic interpretation.
// - Buffered writer with configurable delimiter, quote character, and line terminator; fields are quoted only when they contain a special character, with embedded quotes doubled.
// - LF, CRLF, and lone-CR row terminators, plus raw line breaks inside quoted fields.
// - Round-trip, property, fuzz, and interoperability tests against encoding/csv, and benchmarks comparing both implementations.
//
// # Getting Started
//
// The module path is `github.com/saiyasaswi-685/custom-csv-parser`. The cmd/csvbench binary generates synthetic data files and measures read/write throughput against encoding/csv.
package customcsv
