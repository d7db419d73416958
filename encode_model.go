package modelfolio

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// this file contains the model configuration format and the built-in model.
// The format is TOML so the model stays human readable and easy to edit.

// DecodeModel decodes and validates a model portfolio from 'r' in TOML.
//
// The format is a top level 'currency' string, one [[target]] table per model
// entry with 'symbol', 'name' and 'percent' properties, and an optional
// [alias] table mapping brokerage symbols to target symbols:
//
//	currency = "USD"
//
//	[[target]]
//	symbol = "VTSAX"
//	name = "Vanguard Total Stock Market"
//	percent = 30
//
//	[alias]
//	FXAIX = "VTSAX"
func DecodeModel(r io.Reader) (*Model, error) {
	type jtarget struct {
		Symbol  string `toml:"symbol"`
		Name    string `toml:"name"`
		Percent int    `toml:"percent"`
	}
	var jmodel struct {
		Currency string            `toml:"currency"`
		Targets  []jtarget         `toml:"target"`
		Aliases  map[string]string `toml:"alias"`
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read model configuration: %w", err)
	}
	if err := toml.Unmarshal(data, &jmodel); err != nil {
		return nil, fmt.Errorf("cannot parse model configuration: %w", err)
	}

	targets := make([]Target, 0, len(jmodel.Targets))
	for _, t := range jmodel.Targets {
		targets = append(targets, Target{Symbol: t.Symbol, Name: t.Name, Percent: t.Percent})
	}
	return NewModel(jmodel.Currency, targets, jmodel.Aliases)
}

// LoadModel reads and validates a model portfolio from the TOML file at 'path'.
func LoadModel(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open model file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeModel(f)
}

// DefaultModel returns the built-in model portfolio: Bob Brinker's Model
// Portfolio III recommendations as of July 2020, with the alias table for
// the funds actually held against them.
func DefaultModel() *Model {
	m, err := NewModel("USD",
		[]Target{
			{Symbol: "AKREX", Name: "Akre Focus Fund", Percent: 5},
			{Symbol: "VDADX", Name: "Vanguard Dividend Appreciation", Percent: 5},
			{Symbol: "VHGEX", Name: "Vanguard Global Equity", Percent: 10},
			{Symbol: "VTSAX", Name: "Vanguard Total Stock Market", Percent: 30},
			{Symbol: "DLSNX", Name: "DoubleLine Low Duration Bond", Percent: 20},
			{Symbol: "OSTIX", Name: "Osterweis Strategic Income Fund", Percent: 10},
			{Symbol: "VFSTX", Name: "Vanguard Short-term Investment Grade", Percent: 20},
		},
		map[string]string{
			"FSHBX": "DLSNX",
			"FADMX": "OSTIX",
			"QQQ":   "VTSAX",
			"FXAIX": "VTSAX",
			"FSKAX": "VTSAX",
			"VFWAX": "VHGEX",
			"FBNDX": "VFSTX",
		})
	if err != nil {
		// the built-in model is a constant, it cannot be invalid.
		panic(err)
	}
	return m
}
