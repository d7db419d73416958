package modelfolio

import (
	"iter"
	"sort"
)

// Holding is a single security position extracted from the export: its
// symbol, display name and dollar balance.
type Holding struct {
	Symbol  string
	Name    string
	Balance Money
}

// Report is the parsed content of one "Portfolio Value" export: the report
// date, the investment cash balance, and every open security position keyed
// by symbol.
//
// A Report is built once by ParseReport and read-only afterwards.
type Report struct {
	// Date is the date token of the title line, verbatim. It is not
	// calendar-validated.
	Date string

	// Cash is the investment cash balance. The export lists it twice
	// (account level and aggregate level); the last occurrence wins.
	Cash Money

	holdings map[string]Holding
}

// Securities iterates over the holdings in symbol order.
func (r *Report) Securities() iter.Seq[Holding] {
	symbols := make([]string, 0, len(r.holdings))
	for s := range r.holdings {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return func(yield func(Holding) bool) {
		for _, s := range symbols {
			if !yield(r.holdings[s]) {
				return
			}
		}
	}
}

// Holding returns the position held for 'symbol'.
func (r *Report) Holding(symbol string) (Holding, bool) {
	h, ok := r.holdings[symbol]
	return h, ok
}

// Len returns the number of security positions in the report.
func (r *Report) Len() int { return len(r.holdings) }

// NetWorth returns the sum of all security balances. Cash is deliberately
// excluded: it is tracked and reported separately and never enters
// percent-of-portfolio calculations.
func (r *Report) NetWorth() Money {
	total := M(0, r.Cash.Currency())
	for _, h := range r.holdings {
		total = total.Add(h.Balance)
	}
	return total
}
