package modelfolio

import "fmt"

// UnmappedSymbolError reports a parsed holding whose symbol is neither a
// model target nor a known alias.
type UnmappedSymbolError struct {
	Symbol string
}

func (e *UnmappedSymbolError) Error() string {
	return fmt.Sprintf("no model mapping for symbol %q", e.Symbol)
}

// HoldingReview is one parsed holding, resolved against the model.
type HoldingReview struct {
	Holding
	// Target is the canonical model symbol this holding counts against.
	Target string
	// PortfolioPercent is the holding's balance as a share of net worth.
	PortfolioPercent Percent
}

// TargetReview is one model target with its desired and actual positions.
type TargetReview struct {
	Target
	Desired       Money // net worth weighted by the target percent
	Actual        Money // sum of the balances of all holdings resolving here
	ActualPercent Percent
	Difference    Money // Actual - Desired
}

// Review is the desired-versus-actual comparison of one parsed report
// against a model portfolio.
type Review struct {
	Date     string
	Cash     Money
	NetWorth Money

	// Holdings lists every parsed position in symbol order.
	Holdings []HoldingReview
	// Targets lists every model target in model order, including targets
	// with no contributing holding.
	Targets []TargetReview

	// Totals over the target rows, cash included on both sides.
	TotalDesired        Money
	TotalActual         Money
	TotalDesiredPercent int
	TotalActualPercent  Percent

	// UnusedAliases lists the alias symbols never matched by any holding.
	UnusedAliases []string
}

// Reconciles reports whether the desired and actual totals agree at the
// cent level. They are algebraically equal (both are net worth plus cash),
// so a mismatch signals an aggregation bug and is reported as a warning,
// never an abort.
func (r *Review) Reconciles() bool {
	return r.TotalActual.SameCents(r.TotalDesired)
}

// NewReview aggregates the report's holdings onto the model targets and
// computes the desired-versus-actual comparison.
//
// Every holding must resolve to a target symbol, directly or through an
// alias; the first holding that does not aborts with a
// *UnmappedSymbolError. Every model target gets a row, a zero one when no
// holding resolves to it.
func NewReview(report *Report, model *Model) (*Review, error) {
	netWorth := report.NetWorth()

	r := &Review{
		Date:     report.Date,
		Cash:     report.Cash,
		NetWorth: netWorth,
	}

	// Resolve each holding and accumulate balances per target symbol.
	actual := make(map[string]Money)
	usedAliases := make(map[string]bool)
	for h := range report.Securities() {
		target, ok := model.Resolve(h.Symbol)
		if !ok {
			return nil, &UnmappedSymbolError{Symbol: h.Symbol}
		}
		if target != h.Symbol {
			usedAliases[h.Symbol] = true
		}
		actual[target] = actual[target].Add(h.Balance)
		r.Holdings = append(r.Holdings, HoldingReview{
			Holding:          h,
			Target:           target,
			PortfolioPercent: h.Balance.PercentOf(netWorth),
		})
	}

	// One row per model target, in model order, zero when nothing resolved
	// to it.
	totalDesired, totalActual := report.Cash, report.Cash
	for t := range model.Targets() {
		value, ok := actual[t.Symbol]
		if !ok {
			value = model.Zero()
		}
		desired := netWorth.Share(t.Percent)
		r.Targets = append(r.Targets, TargetReview{
			Target:        t,
			Desired:       desired,
			Actual:        value,
			ActualPercent: value.PercentOf(netWorth),
			Difference:    value.Sub(desired),
		})
		totalDesired = totalDesired.Add(desired)
		totalActual = totalActual.Add(value)
		r.TotalDesiredPercent += t.Percent
		r.TotalActualPercent += value.PercentOf(netWorth)
	}
	r.TotalDesired = totalDesired
	r.TotalActual = totalActual

	for _, alias := range model.Aliases() {
		if !usedAliases[alias] {
			r.UnusedAliases = append(r.UnusedAliases, alias)
		}
	}
	return r, nil
}
