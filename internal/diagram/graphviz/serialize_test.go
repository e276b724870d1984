package graphviz

import (
	"strings"
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/diagram"
	"github.com/pankaj-dahiya-devops/netscope/internal/panel"
)

func sampleModel() *diagram.Model {
	return &diagram.Model{
		Name: "aws_network",
		Clusters: []*diagram.Cluster{
			{
				ID:    "vpc-1",
				Label: panel.BoldText("VPC vpc-1"),
				Style: diagram.ClusterStyle{Style: "rounded", Color: "#4a5568", BGColor: "#f8fafc", FontSize: "13", FontName: "Helvetica"},
				Nodes: []diagram.Node{
					{ID: "vpc-1_internet", Label: panel.BoldText("Internet"), Group: "internet"},
				},
				Children: []*diagram.Cluster{
					{
						ID:    "vpc-1_public",
						Label: panel.BoldText("Public Subnets"),
						Style: diagram.ClusterStyle{Style: "dashed", Color: "gray", SameRank: true},
						Nodes: []diagram.Node{
							{ID: "subnet-1", Label: panel.BoldText("subnet-1"), Group: "eu-west-1a"},
							{ID: "placeholder_vpc-1_public_eu-west-1b", Group: "eu-west-1b", Placeholder: true},
						},
					},
				},
			},
		},
		Edges: []diagram.Edge{
			{From: "vpc-1_internet", To: "subnet-1", Color: "#4a5568", Style: "dashed"},
			{From: "subnet-1", FromPort: "routes", To: "vpc-1_internet", Color: "#2f855a"},
			{From: "subnet-1", To: "placeholder_vpc-1_public_eu-west-1b", Style: "invis", Weight: 10},
		},
	}
}

func TestSourceGraphHeader(t *testing.T) {
	out := Source(sampleModel())
	if !strings.HasPrefix(out, "digraph") {
		t.Fatalf("unexpected prefix: %q", out[:40])
	}
	if !strings.Contains(out, "aws_network") {
		t.Error("missing graph id")
	}
	for _, attr := range []string{"rankdir", `"TB"`, "bgcolor", `"white"`, "Helvetica"} {
		if !strings.Contains(out, attr) {
			t.Errorf("missing graph attribute %q", attr)
		}
	}
}

func TestSourceEmitsClusters(t *testing.T) {
	out := Source(sampleModel())
	if got := strings.Count(out, "subgraph "); got != 2 {
		t.Errorf("subgraph count = %d, want 2", got)
	}
	if !strings.Contains(out, `"same"`) {
		t.Error("missing same-rank constraint")
	}
	if !strings.Contains(out, "<<B>Public Subnets</B>>") {
		t.Error("missing HTML cluster label")
	}
}

func TestSourcePlaceholderNode(t *testing.T) {
	out := Source(sampleModel())
	for _, attr := range []string{`"point"`, `"0.01"`, `"invis"`} {
		if !strings.Contains(out, attr) {
			t.Errorf("missing placeholder attribute %q", attr)
		}
	}
}

func TestSourceEdgeAttributes(t *testing.T) {
	out := Source(sampleModel())
	if got := strings.Count(out, "->"); got != 3 {
		t.Errorf("edge count = %d, want 3", got)
	}
	if !strings.Contains(out, "tailport") || !strings.Contains(out, `"routes"`) {
		t.Error("missing tailport attribute")
	}
	if !strings.Contains(out, "weight") {
		t.Error("missing weight attribute")
	}
}

// Edges naming nodes that no cluster declared are dropped rather than
// conjuring implicit nodes at the graph root.
func TestSourceSkipsEdgesToUnknownNodes(t *testing.T) {
	m := sampleModel()
	m.Edges = append(m.Edges, diagram.Edge{From: "subnet-1", To: "never-declared"})

	out := Source(m)
	if strings.Contains(out, "never-declared") {
		t.Error("unexpected implicit node")
	}
	if got := strings.Count(out, "->"); got != 3 {
		t.Errorf("edge count = %d, want 3", got)
	}
}

func TestSourceDeterministic(t *testing.T) {
	first := Source(sampleModel())
	for i := 0; i < 3; i++ {
		if next := Source(sampleModel()); next != first {
			t.Fatal("source differs between identical models")
		}
	}
}
