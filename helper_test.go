package modelfolio

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// newTestModel returns a tiny two-target model used across the tests.
func newTestModel() *Model {
	m, err := NewModel("USD",
		[]Target{
			{Symbol: "A", Name: "Alpha Fund", Percent: 5},
			{Symbol: "B", Name: "Beta Fund", Percent: 95},
		},
		map[string]string{"X": "A"})
	if err != nil {
		panic(err)
	}
	return m
}
