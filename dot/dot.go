package dot

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/snowdrift/game"
)

// ErrNilGraph indicates a render call without a graph.
var ErrNilGraph = errors.New("dot: graph must not be nil")

// Node fill colors, one per strategy.
const (
	cooperatorColor = "red"
	defectorColor   = "blue"
)

// filePerm is the mode for exported .dot files.
const filePerm = 0o644

// Marshal renders g as an undirected Graphviz DOT document. The title,
// if non-empty, becomes the figure label. Node and edge order follow the
// graph's deterministic enumeration.
func Marshal(g *game.Graph, title string) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	var sb strings.Builder
	sb.WriteString("graph snowdrift {\n")
	if title != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", title))
		sb.WriteString("  labelloc=t;\n")
	}
	sb.WriteString("  node [shape=circle style=filled fontcolor=white];\n")

	for _, id := range g.Nodes() {
		s, err := g.StrategyOf(id)
		if err != nil {
			return "", fmt.Errorf("dot: %w", err)
		}
		color := defectorColor
		if s == game.Cooperator {
			color = cooperatorColor
		}
		sb.WriteString(fmt.Sprintf("  %d [fillcolor=%s];\n", id, color))
	}

	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("  %d -- %d;\n", e.U, e.V))
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

// WriteFile renders g and writes the document to path.
func WriteFile(path string, g *game.Graph, title string) error {
	doc, err := Marshal(g, title)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, []byte(doc), filePerm); err != nil {
		return fmt.Errorf("dot: write %s: %w", path, err)
	}

	return nil
}
