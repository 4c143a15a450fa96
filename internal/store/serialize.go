package store

import (
	"encoding/json"
	"strconv"

	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/result"
)

// quantity round-trips a float64 through JSON as a decimal string, so
// NaN and +Inf — both valid quantities per spec.md §4.4 — survive
// standard encoding/json, which refuses to marshal either as a bare
// JSON number.
type quantity string

func fromFloat(f float64) quantity {
	return quantity(strconv.FormatFloat(f, 'g', -1, 64))
}

func (q quantity) toFloat() (float64, error) {
	return strconv.ParseFloat(string(q), 64)
}

type cutSetDoc struct {
	EventIDs  []string     `json:"event_ids"`
	Quantity  quantity     `json:"quantity"`
	Dimension ir.Dimension `json:"dimension"`
}

type gateDoc struct {
	ID             string            `json:"id"`
	Label          string            `json:"label"`
	Type           ir.GateType       `json:"type"`
	Quantity       quantity          `json:"quantity"`
	Dimension      ir.Dimension      `json:"dimension"`
	MinimalCutSets []cutSetDoc       `json:"minimal_cut_sets"`
	Contributions  map[string]string `json:"contributions"`
	Importances    map[string]string `json:"importances"`
}

type eventDoc struct {
	ID        string       `json:"id"`
	Label     string       `json:"label"`
	Dimension ir.Dimension `json:"dimension"`
	Quantity  quantity     `json:"quantity"`
}

type treeDoc struct {
	TimeUnit string     `json:"time_unit"`
	Events   []eventDoc `json:"events"`
	Gates    []gateDoc  `json:"gates"`
}

func encodeTree(tree *result.Tree) ([]byte, error) {
	doc := treeDoc{TimeUnit: tree.TimeUnit}

	for _, ev := range tree.Events {
		doc.Events = append(doc.Events, eventDoc{
			ID:        ev.ID,
			Label:     ev.Label,
			Dimension: ev.Dimension,
			Quantity:  fromFloat(ev.Quantity),
		})
	}

	for _, g := range tree.Gates {
		gd := gateDoc{
			ID:            g.ID,
			Label:         g.Label,
			Type:          g.Type,
			Quantity:      fromFloat(g.Quantity),
			Dimension:     g.Dimension,
			Contributions: make(map[string]string, len(g.Contributions)),
			Importances:   make(map[string]string, len(g.Importances)),
		}
		for _, cs := range g.MinimalCutSets {
			gd.MinimalCutSets = append(gd.MinimalCutSets, cutSetDoc{
				EventIDs:  cs.EventIDs,
				Quantity:  fromFloat(cs.Quantity),
				Dimension: cs.Dimension,
			})
		}
		for id, v := range g.Contributions {
			gd.Contributions[id] = string(fromFloat(v))
		}
		for id, v := range g.Importances {
			gd.Importances[id] = string(fromFloat(v))
		}
		doc.Gates = append(doc.Gates, gd)
	}

	return json.Marshal(doc)
}

func decodeTree(data []byte) (*result.Tree, error) {
	var doc treeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	tree := &result.Tree{TimeUnit: doc.TimeUnit}

	for _, ev := range doc.Events {
		q, err := ev.Quantity.toFloat()
		if err != nil {
			return nil, err
		}
		tree.Events = append(tree.Events, result.EventSummary{
			ID:        ev.ID,
			Label:     ev.Label,
			Dimension: ev.Dimension,
			Quantity:  q,
		})
	}

	for _, gd := range doc.Gates {
		gq, err := gd.Quantity.toFloat()
		if err != nil {
			return nil, err
		}
		g := result.GateResult{
			ID:            gd.ID,
			Label:         gd.Label,
			Type:          gd.Type,
			Quantity:      gq,
			Dimension:     gd.Dimension,
			Contributions: make(map[string]float64, len(gd.Contributions)),
			Importances:   make(map[string]float64, len(gd.Importances)),
		}
		for _, csd := range gd.MinimalCutSets {
			csq, err := csd.Quantity.toFloat()
			if err != nil {
				return nil, err
			}
			g.MinimalCutSets = append(g.MinimalCutSets, result.CutSet{
				EventIDs:  csd.EventIDs,
				Quantity:  csq,
				Dimension: csd.Dimension,
			})
		}
		for id, s := range gd.Contributions {
			v, err := quantity(s).toFloat()
			if err != nil {
				return nil, err
			}
			g.Contributions[id] = v
		}
		for id, s := range gd.Importances {
			v, err := quantity(s).toFloat()
			if err != nil {
				return nil, err
			}
			g.Importances[id] = v
		}
		tree.Gates = append(tree.Gates, g)
	}

	return tree, nil
}
