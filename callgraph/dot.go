package callgraph

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT writes g in the DOT format, grouping nodes by declaring
// type the way a package-grouped call graph groups by package, so the
// result can be rendered with Graphviz.
func WriteDOT(w io.Writer, g *Graph) error {
	b := bufio.NewWriter(w)
	defer b.Flush()

	b.WriteString("digraph callgraph {\n")
	b.WriteString("\tgraph [fontname=\"Helvetica\", overlap=false, normalize=true];\n")
	b.WriteString("\tnode [fontname=\"Helvetica\" shape=box];\n")
	b.WriteString("\tedge [fontname=\"Helvetica\"];\n")

	ids := make(map[string]int)
	idFor := func(name string) int {
		if id, ok := ids[name]; ok {
			return id
		}
		id := len(ids)
		ids[name] = id
		return id
	}

	byType := make(map[string][]string)
	for _, m := range g.ReachableMethods() {
		name := m.String()
		idFor(name)
		typeName := "shared"
		if m.Method != nil && m.Method.Declaring != nil {
			typeName = m.Method.Declaring.String()
		}
		byType[typeName] = append(byType[typeName], name)
	}

	for typeName, names := range byType {
		fmt.Fprintf(b, "\tsubgraph \"cluster_%s\" {\n", typeName)
		fmt.Fprintf(b, "\t\tlabel = %q;\n", typeName)
		for _, name := range names {
			fmt.Fprintf(b, "\t\tn%d [label=%q];\n", idFor(name), name)
		}
		b.WriteString("\t}\n")
	}

	for _, e := range g.Edges() {
		callerName := "unknown"
		if e.Site != nil {
			callerName = e.Site.String()
		}
		calleeName := e.Callee.String()
		fmt.Fprintf(b, "\tn%d -> n%d [label=%q];\n", idFor(callerName), idFor(calleeName), e.Kind.String())
	}

	b.WriteString("}\n")
	return nil
}
