// Package modelfolio compares the holdings of a brokerage "Portfolio Value"
// export against a fixed model portfolio of target allocations.
//
// The core functionalities include:
//   - Report Parsing: reading the tab-delimited export line by line,
//     classifying each line and extracting the report date, the investment
//     cash balance and every open security position.
//   - Model Configuration: an immutable set of target symbols with desired
//     percentage weights, plus an alias table mapping brokerage symbols to
//     their model counterpart. Both are validated once at construction.
//   - Allocation Review: mapping every parsed holding onto the model,
//     summing balances per target symbol, and computing desired versus
//     actual dollars and percentages, with a reconciliation check on the
//     totals.
//
// All monetary arithmetic is exact (decimal based); rounding only happens
// when a value is rendered. This package serves as the foundational logic
// for the `mfl` command-line tool.
package modelfolio
