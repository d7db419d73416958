package modelfolio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// this file parses the tab-delimited "Portfolio Value" export.
//
// The export is line oriented with no schema beyond the title line, so each
// line is classified by pattern, in a fixed priority order. Any line that
// matches no pattern fails the whole parse: there is no skip-and-continue.

// MalformedLineError reports an input line that matches none of the
// recognized report line patterns.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("unexpected line in report: %q", e.Line)
}

// lineKind tags the classification of a single report line.
type lineKind int

const (
	lineIgnorable lineKind = iota // blank, header, placeholder or totals row
	lineTitle
	lineCash
	lineSecurity
	lineUnrecognized
)

// line is the result of classifying one raw report line: its kind and the
// fields extracted for that kind.
type line struct {
	kind lineKind

	date string // lineTitle: the date token, verbatim

	cash decimal.Decimal // lineCash: the cash balance

	// lineSecurity fields. Only name, symbol, shares and balance are
	// retained; price, cost basis and gain/loss are matched but unused.
	name    string
	symbol  string
	shares  Quantity
	balance decimal.Decimal
}

var (
	reTitle = regexp.MustCompile(`^Portfolio Value - As of (\d+/\d+/\d+)`)
	reCash  = regexp.MustCompile(`^\t+-Cash-\t+(\d+(?:,\d{3})*\.\d{2})`)

	reSecurity = regexp.MustCompile(`^\t+([\w\- ]+)` + // security name
		`\t+([A-Z0-9:]*)` + // symbol, possibly empty
		`\t(\d+(?:,\d{3})*\.\d{3})` + // shares
		`\t(\d+\.\d{3})` + // quote/price
		`\t\*?` + // estimated-price marker
		`\t+(-?\d+(?:,\d{3})*\.\d{2})` + // cost basis
		`\t+(?:-?\d+(?:,\d{3})*\.\d{2})?\*?` + // gain/loss, optional, optional marker
		`\t+(\d+(?:,\d{3})*\.\d{2})`) // balance

	ignorableRes = []*regexp.Regexp{
		regexp.MustCompile(`^\s*$`),
		regexp.MustCompile(`^\tSecurity\tSymbol\tShares\tQuote/Price\test\tCost`),
		regexp.MustCompile(`^\t\*Placeholder`),
		regexp.MustCompile(`^\tTOTAL Investments`),
	}
)

// number converts a matched decimal field, stripping comma separators.
func number(s string) decimal.Decimal {
	// the format has been checked by the regexp already.
	d, _ := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	return d
}

// classify tags one raw report line, in a single ordered pass:
// title, then cash, then security, then the ignorable patterns.
func classify(text string) line {
	if m := reTitle.FindStringSubmatch(text); m != nil {
		return line{kind: lineTitle, date: m[1]}
	}
	if m := reCash.FindStringSubmatch(text); m != nil {
		return line{kind: lineCash, cash: number(m[1])}
	}
	if m := reSecurity.FindStringSubmatch(text); m != nil {
		return line{
			kind:    lineSecurity,
			name:    m[1],
			symbol:  m[2],
			shares:  Q(number(m[3])),
			balance: number(m[6]),
		}
	}
	for _, re := range ignorableRes {
		if re.MatchString(text) {
			return line{kind: lineIgnorable}
		}
	}
	return line{kind: lineUnrecognized}
}

// ParseReport parses one "Portfolio Value" export from 'r', with monetary
// values in 'currency'.
//
// Lines are consumed strictly in order because later lines overwrite earlier
// state: the export lists the cash row twice (account level and aggregate
// level) and only the last value is kept, and a security symbol seen twice
// keeps its last position. The first title line sets the report date.
// Zero-share positions and positions with no symbol (the money market sweep
// row) are dropped.
//
// The first unrecognized line aborts the parse with a *MalformedLineError.
func ParseReport(r io.Reader, currency string) (*Report, error) {
	report := &Report{
		Cash:     M(0, currency),
		holdings: make(map[string]Holding),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		switch l := classify(text); l.kind {
		case lineTitle:
			if report.Date == "" {
				report.Date = l.date
			}
		case lineCash:
			report.Cash = M(l.cash, currency)
		case lineSecurity:
			if l.shares.IsZero() {
				// a closed position, its balance is stale.
				continue
			}
			if l.symbol == "" {
				// the money market sweep row has no symbol.
				continue
			}
			report.holdings[l.symbol] = Holding{
				Symbol:  l.symbol,
				Name:    l.name,
				Balance: M(l.balance, currency),
			}
		case lineIgnorable:
			// no state change.
		default:
			return nil, &MalformedLineError{Line: text}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read report: %w", err)
	}
	return report, nil
}
