package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// (typos) are rejected, matching the strictness of the fault-tree
// source parser itself.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Source == "" {
		return fmt.Errorf("source is required")
	}
	if len(s.Gates) == 0 {
		return fmt.Errorf("gates is required and must be non-empty")
	}
	for id, g := range s.Gates {
		if g.Quantity == "" {
			return fmt.Errorf("gates[%s].quantity is required", id)
		}
		if g.Dimension != "probability" && g.Dimension != "rate" {
			return fmt.Errorf("gates[%s].dimension must be probability or rate, got %q", id, g.Dimension)
		}
	}
	return nil
}
