package modelfolio

import (
	"fmt"
	"iter"
	"sort"
)

// Target is a single entry of the model portfolio: a security and the
// percentage of the portfolio it should represent.
type Target struct {
	Symbol  string
	Name    string
	Percent int
}

// Model is the immutable model portfolio: an ordered list of targets whose
// percentages sum to 100, and an alias table mapping brokerage symbols to
// the target symbol they count against.
//
// A Model is validated once by NewModel, so that the rest of the package can
// rely on its invariants.
type Model struct {
	currency string
	targets  []Target
	index    map[string]Target
	aliases  map[string]string
}

// ConfigurationError reports an invalid model configuration. It is detected
// at startup, before any input is read.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid model configuration: %s", e.Reason)
}

// NewModel creates a validated Model from its targets and aliases.
//
// It returns a *ConfigurationError if a target symbol is empty or duplicated,
// if the target percentages do not sum to 100, or if an alias maps to a
// symbol that is not part of the model.
func NewModel(currency string, targets []Target, aliases map[string]string) (*Model, error) {
	if len(targets) == 0 {
		return nil, &ConfigurationError{Reason: "model has no targets"}
	}

	m := &Model{
		currency: currency,
		targets:  make([]Target, 0, len(targets)),
		index:    make(map[string]Target, len(targets)),
		aliases:  make(map[string]string, len(aliases)),
	}
	if m.currency == "" {
		m.currency = "USD"
	}

	sum := 0
	for _, t := range targets {
		if t.Symbol == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("target %q has an empty symbol", t.Name)}
		}
		if _, exists := m.index[t.Symbol]; exists {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("duplicate target symbol %q", t.Symbol)}
		}
		m.targets = append(m.targets, t)
		m.index[t.Symbol] = t
		sum += t.Percent
	}
	if sum != 100 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("target percentages sum to %d, not 100", sum)}
	}

	for alias, target := range aliases {
		if _, ok := m.index[target]; !ok {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("alias %q maps to %q which is not a target symbol", alias, target)}
		}
		if _, ok := m.index[alias]; ok {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("alias %q shadows a target symbol", alias)}
		}
		m.aliases[alias] = target
	}
	return m, nil
}

// Currency returns the model's reporting currency.
func (m *Model) Currency() string { return m.currency }

// Targets iterates over the model targets in declaration order.
func (m *Model) Targets() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, t := range m.targets {
			if !yield(t) {
				return
			}
		}
	}
}

// Resolve maps a brokerage symbol to its canonical target symbol: the symbol
// itself when it is a target, otherwise its alias. ok is false when the
// symbol has no mapping at all.
func (m *Model) Resolve(symbol string) (target string, ok bool) {
	if _, isTarget := m.index[symbol]; isTarget {
		return symbol, true
	}
	target, ok = m.aliases[symbol]
	return target, ok
}

// Aliases returns the alias table keys in sorted order.
func (m *Model) Aliases() []string {
	keys := make([]string, 0, len(m.aliases))
	for alias := range m.aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)
	return keys
}

// Alias returns the target symbol for 'alias'.
func (m *Model) Alias(alias string) string { return m.aliases[alias] }

// Zero returns a zero money value in the model's currency.
func (m *Model) Zero() Money { return M(0, m.currency) }
