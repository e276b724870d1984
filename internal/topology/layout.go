package topology

import (
	"fmt"
	"sort"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// Grid arranges one VPC's diagram nodes into tier rows and availability
// zone columns. Rendering backends force each column to stack in tier
// order by chaining its nodes with invisible high-weight edges; for that
// to work every (tier, zone) cell must hold at least one node, so empty
// cells are filled with invisible placeholders before chaining.
type Grid struct {
	vpcID string
	azs   []string
	cells map[cellKey][]string
}

type cellKey struct {
	tier models.Tier
	az   string
}

// Placeholder is an invisible filler node for an otherwise empty grid cell.
type Placeholder struct {
	ID   string
	Tier models.Tier
	AZ   string
}

// NewGrid returns an empty grid over the given availability zones. Zones
// are sorted; a nil or empty list collapses to a single unnamed zone so
// layout still produces one column.
func NewGrid(vpcID string, azs []string) *Grid {
	sorted := make([]string, 0, len(azs))
	sorted = append(sorted, azs...)
	sort.Strings(sorted)
	if len(sorted) == 0 {
		sorted = []string{""}
	}
	return &Grid{
		vpcID: vpcID,
		azs:   sorted,
		cells: make(map[cellKey][]string),
	}
}

// AZs returns the grid's availability zone columns in order.
func (g *Grid) AZs() []string {
	return g.azs
}

// CenterAZ returns the middle availability zone. Gateways and other nodes
// without a zone of their own anchor here so they land in a deterministic
// column.
func (g *Grid) CenterAZ() string {
	return g.azs[len(g.azs)/2]
}

// Place records nodeID in the (tier, az) cell. An unknown or empty zone
// anchors to the center column so every placed node ends up chained.
func (g *Grid) Place(tier models.Tier, az, nodeID string) {
	if !g.knownAZ(az) {
		az = g.CenterAZ()
	}
	key := cellKey{tier: tier, az: az}
	g.cells[key] = append(g.cells[key], nodeID)
}

// Occupants returns the node IDs currently in the (tier, az) cell.
func (g *Grid) Occupants(tier models.Tier, az string) []string {
	return g.cells[cellKey{tier: tier, az: az}]
}

// FillPlaceholders inserts an invisible placeholder into every empty
// (tier, az) cell and returns the placeholders created. After it runs,
// no cell is empty. Calling it again is a no-op: placeholders occupy
// their cells, so a second pass creates nothing.
func (g *Grid) FillPlaceholders() []Placeholder {
	var created []Placeholder
	for _, tier := range models.TierOrder {
		for _, az := range g.azs {
			key := cellKey{tier: tier.Tier, az: az}
			if len(g.cells[key]) > 0 {
				continue
			}
			p := Placeholder{
				ID:   fmt.Sprintf("placeholder_%s_%s_%s", g.vpcID, tier.Tier, az),
				Tier: tier.Tier,
				AZ:   az,
			}
			g.cells[key] = []string{p.ID}
			created = append(created, p)
		}
	}
	return created
}

// TierNodes returns every node in the given tier, walking the zone
// columns in order. Used to declare tier cluster membership.
func (g *Grid) TierNodes(tier models.Tier) []string {
	var nodes []string
	for _, az := range g.azs {
		nodes = append(nodes, g.cells[cellKey{tier: tier, az: az}]...)
	}
	return nodes
}

// ColumnChains returns, per availability zone, the full top-to-bottom node
// sequence across all tiers. Consecutive pairs of each chain become
// invisible ordering edges. Call after FillPlaceholders so chains span
// every tier.
func (g *Grid) ColumnChains() [][]string {
	chains := make([][]string, 0, len(g.azs))
	for _, az := range g.azs {
		var chain []string
		for _, tier := range models.TierOrder {
			chain = append(chain, g.cells[cellKey{tier: tier.Tier, az: az}]...)
		}
		chains = append(chains, chain)
	}
	return chains
}

func (g *Grid) knownAZ(az string) bool {
	for _, known := range g.azs {
		if known == az {
			return true
		}
	}
	return false
}
