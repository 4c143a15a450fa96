package harness

// Scenario defines a single fault-tree conformance test: source text
// to analyze, plus the minimal cut sets and quantities each named
// gate is expected to produce.
type Scenario struct {
	// Name uniquely identifies this scenario; also the golden file's base name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Source is the fault-tree source text to analyze, inline.
	Source string `yaml:"source"`

	// Gates maps gate ID to that gate's expected result.
	Gates map[string]ExpectedGate `yaml:"gates"`
}

// ExpectedGate is one gate's expected minimal-cut-set listing and
// aggregated quantity.
type ExpectedGate struct {
	// MinimalCutSets lists the expected minimal cut sets, each as a
	// sorted list of event IDs, in the engine's deterministic order.
	MinimalCutSets [][]string `yaml:"minimal_cut_sets"`

	// Quantity is the expected aggregated quantity, as decimal text or
	// one of "NaN", "+Inf" — strconv.ParseFloat's vocabulary — so
	// IEEE-754 sentinels round-trip through YAML.
	Quantity string `yaml:"quantity"`

	// Dimension is the expected dimension: "probability" or "rate".
	Dimension string `yaml:"dimension"`
}
