// Package diagram assembles the renderer-agnostic description of a network
// diagram: clusters, nodes, edges and their structured labels. Serializing
// the description into a concrete backend lives in diagram/graphviz.
package diagram

import "github.com/pankaj-dahiya-devops/netscope/internal/panel"

// Model is a complete diagram. Clusters, their nodes and the edge list are
// ordered; adapters must preserve the order so output stays reproducible.
type Model struct {
	Name     string
	Clusters []*Cluster
	Edges    []Edge
}

// Cluster is a bordered subgraph. Every node belongs to exactly one
// cluster, the innermost one that should enclose it when drawn.
type Cluster struct {
	ID       string
	Label    panel.Label
	Style    ClusterStyle
	Nodes    []Node
	Children []*Cluster
}

// ClusterStyle carries the visual attributes of a cluster border.
type ClusterStyle struct {
	Style    string
	Color    string
	BGColor  string
	FontSize string
	FontName string
	SameRank bool
}

// Node is a single diagram node. Placeholder nodes are invisible points
// that keep empty grid cells occupied; they have no label.
type Node struct {
	ID          string
	Label       panel.Label
	Group       string
	Placeholder bool
}

// Edge connects two nodes by ID. FromPort addresses a named section of the
// source node's label. A zero Weight means the renderer default.
type Edge struct {
	From     string
	FromPort string
	To       string
	Color    string
	Style    string
	Weight   int
}

var (
	vpcClusterStyle = ClusterStyle{
		Style:    "rounded",
		Color:    "#4a5568",
		BGColor:  "#f8fafc",
		FontSize: "13",
		FontName: "Helvetica",
	}

	tierClusterStyle = ClusterStyle{
		Style:    "dashed",
		Color:    "gray",
		SameRank: true,
	}

	legendClusterStyle = ClusterStyle{
		Style:    "rounded",
		Color:    "#b7b7b7",
		BGColor:  "#f7f7f7",
		FontSize: "11",
	}

	globalClusterStyle = ClusterStyle{
		Style:    "rounded",
		Color:    "#4a5568",
		BGColor:  "#f7fafc",
		FontSize: "12",
		FontName: "Helvetica",
	}
)
