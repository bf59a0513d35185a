// Package chart renders language distribution charts as Graphviz DOT and SVG.
package chart

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// ToDOT converts language statistics into a Graphviz DOT graph: a root node
// for the user with one node per language, edges labeled with the repository
// count. The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(username string, stats []github.LanguageStat) string {
	var buf bytes.Buffer
	buf.WriteString("digraph languages {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [fillcolor=lightblue, fontsize=18];\n", username)
	total := 0
	for _, s := range stats {
		total += s.Count
	}
	for _, s := range stats {
		label := fmt.Sprintf("%s\n%d repos", s.Language, s.Count)
		if s.Count == 1 {
			label = fmt.Sprintf("%s\n1 repo", s.Language)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", s.Language, label)
		fmt.Fprintf(&buf, "  %q -> %q [penwidth=%.1f];\n", username, s.Language, edgeWidth(s.Count, total))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// edgeWidth scales the edge pen width with the language's share, clamped so
// single-repo languages stay visible.
func edgeWidth(count, total int) float64 {
	if total == 0 {
		return 1
	}
	w := 1 + 5*float64(count)/float64(total)
	return w
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
