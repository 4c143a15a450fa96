package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/result"
)

// toCanonicalMap converts a result.Tree to a map[string]any, since
// ir.MarshalCanonical only handles maps, slices, and primitives, not
// arbitrary struct types.
func toCanonicalMap(tr *result.Tree) map[string]any {
	events := make([]any, len(tr.Events))
	for i, ev := range tr.Events {
		events[i] = map[string]any{
			"id":        ev.ID,
			"label":     ev.Label,
			"dimension": string(ev.Dimension),
			"quantity":  ev.Quantity,
		}
	}

	gates := make([]any, len(tr.Gates))
	for i, g := range tr.Gates {
		cutSets := make([]any, len(g.MinimalCutSets))
		for j, cs := range g.MinimalCutSets {
			ids := make([]any, len(cs.EventIDs))
			for k, id := range cs.EventIDs {
				ids[k] = id
			}
			cutSets[j] = map[string]any{
				"event_ids": ids,
				"quantity":  cs.Quantity,
				"dimension": string(cs.Dimension),
			}
		}

		contributions := make(map[string]any, len(g.Contributions))
		for id, v := range g.Contributions {
			contributions[id] = v
		}
		importances := make(map[string]any, len(g.Importances))
		for id, v := range g.Importances {
			importances[id] = v
		}

		gates[i] = map[string]any{
			"id":               g.ID,
			"label":            g.Label,
			"type":             string(g.Type),
			"quantity":         g.Quantity,
			"dimension":        string(g.Dimension),
			"minimal_cut_sets": cutSets,
			"contributions":    contributions,
			"importances":      importances,
		}
	}

	return map[string]any{
		"time_unit": tr.TimeUnit,
		"events":    events,
		"gates":     gates,
	}
}

// AssertGolden compares tr's canonical JSON rendering against the
// golden file testdata/golden/{name}.golden. The file is written only
// when the test binary is invoked with -update; a missing file fails
// the test.
func AssertGolden(t *testing.T, name string, tr *result.Tree) {
	t.Helper()

	data, err := ir.MarshalCanonical(toCanonicalMap(tr))
	if err != nil {
		t.Fatalf("marshal canonical result: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
