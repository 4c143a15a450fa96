package cli

import (
	"github.com/sfta-dev/sfta/internal/compiler"
	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/parser"
)

// buildTree runs the full parse-and-validate pipeline over source,
// returning the first apperr.Error encountered unwrapped, so callers
// can classify it by taxonomy kind.
func buildTree(source string) (*ir.FaultTree, error) {
	doc, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return compiler.Build(doc)
}
