// Package graphviz serializes diagram models into Graphviz DOT source and
// drives the dot executable to render them.
package graphviz

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/pankaj-dahiya-devops/netscope/internal/diagram"
)

// Graph converts a diagram model into its dot graph form. Cluster
// identifiers in the output are assigned by the dot library; model cluster
// IDs survive as subgraph lookup keys only.
func Graph(m *diagram.Model) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.ID(m.Name)
	g.Attr("rankdir", "TB")
	g.Attr("bgcolor", "white")
	g.Attr("fontname", "Helvetica")
	g.NodeInitializer(nodeDefaults)
	g.EdgeInitializer(edgeDefaults)

	w := &writer{nodes: make(map[string]dot.Node)}
	for _, cluster := range m.Clusters {
		w.cluster(g, cluster)
	}
	for _, edge := range m.Edges {
		w.edge(g, edge)
	}
	return g
}

// Source returns the DOT text of the model.
func Source(m *diagram.Model) string {
	return Graph(m).String()
}

func nodeDefaults(n dot.Node) {
	n.Attr("fontname", "Helvetica")
	n.Attr("fontsize", "12")
}

func edgeDefaults(e dot.Edge) {
	e.Attr("fontname", "Helvetica")
	e.Attr("fontsize", "11")
}

// writer tracks created nodes so edges can reference them wherever they
// were declared. Every node is declared exactly once, in its owning
// cluster.
type writer struct {
	nodes map[string]dot.Node
}

func (w *writer) cluster(parent *dot.Graph, c *diagram.Cluster) {
	sub := parent.Subgraph(c.ID, dot.ClusterOption{})
	sub.NodeInitializer(nodeDefaults)
	if c.Label != nil {
		sub.Attr("label", dot.HTML(labelHTML(c.Label)))
	}

	style := c.Style
	if style.Style != "" {
		sub.Attr("style", style.Style)
	}
	if style.Color != "" {
		sub.Attr("color", style.Color)
	}
	if style.BGColor != "" {
		sub.Attr("bgcolor", style.BGColor)
	}
	if style.FontSize != "" {
		sub.Attr("fontsize", style.FontSize)
	}
	if style.FontName != "" {
		sub.Attr("fontname", style.FontName)
	}
	if style.SameRank {
		sub.Attr("rank", "same")
	}

	for _, node := range c.Nodes {
		w.node(sub, node)
	}
	for _, child := range c.Children {
		w.cluster(sub, child)
	}
}

func (w *writer) node(g *dot.Graph, node diagram.Node) {
	n := g.Node(node.ID)
	if node.Placeholder {
		n.Attr("label", "")
		n.Attr("shape", "point")
		n.Attr("width", "0.01")
		n.Attr("height", "0.01")
		n.Attr("style", "invis")
	} else {
		n.Attr("shape", "plaintext")
		if node.Label != nil {
			n.Attr("label", dot.HTML(labelHTML(node.Label)))
		}
	}
	if node.Group != "" {
		n.Attr("group", node.Group)
	}
	w.nodes[node.ID] = n
}

func (w *writer) edge(g *dot.Graph, e diagram.Edge) {
	from, ok := w.nodes[e.From]
	if !ok {
		return
	}
	to, ok := w.nodes[e.To]
	if !ok {
		return
	}

	edge := g.Edge(from, to)
	if e.FromPort != "" {
		edge.Attr("tailport", e.FromPort)
	}
	if e.Color != "" {
		edge.Attr("color", e.Color)
	}
	if e.Style != "" {
		edge.Attr("style", e.Style)
	}
	if e.Weight != 0 {
		edge.Attr("weight", strconv.Itoa(e.Weight))
	}
}
