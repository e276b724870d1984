package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/panel"
	"github.com/pankaj-dahiya-devops/netscope/internal/topology"
)

// Edge colors of the route and association arrows.
const (
	internetEdgeColor = "#4a5568"
	igwRouteColor     = "#2f855a"
	endpointColor     = "#4c51bf"
	genericRouteColor = "#2c5282"
	databaseEdgeColor = "#d97706"
	columnChainWeight = 10
)

// Build assembles the full diagram model: one cluster per VPC in snapshot
// order, then the global services cluster. A nil context skips the network
// section entirely; an empty summary slice skips the global cluster.
func Build(ctx *topology.Context, globals []models.GlobalServiceSummary) *Model {
	m := &Model{Name: "aws_network"}
	hasGlobal := len(globals) > 0

	if ctx != nil {
		for _, vpc := range ctx.VPCs {
			a := &vpcAssembly{
				model:    m,
				ctx:      ctx,
				vpc:      vpc,
				grid:     topology.NewGrid(vpc.ID, ctx.AvailabilityZones(vpc.ID)),
				defs:     map[string]Node{},
				external: map[string]string{},
				natByID:  map[string]string{},
				igwByID:  map[string]string{},
			}
			m.Clusters = append(m.Clusters, a.build(hasGlobal))
		}
	}

	if hasGlobal {
		m.Clusters = append(m.Clusters, buildGlobalCluster(m, globals))
	}
	return m
}

// vpcAssembly accumulates one VPC cluster. defs holds grid-placed nodes
// until tier construction decides which cluster owns them; external maps
// resource IDs to already-created node IDs so each target renders once.
type vpcAssembly struct {
	model   *Model
	ctx     *topology.Context
	vpc     models.VPC
	cluster *Cluster
	grid    *topology.Grid

	defs     map[string]Node
	external map[string]string

	natNodes []string
	natByID  map[string]string
	igwNodes []string
	igwByID  map[string]string
}

func (a *vpcAssembly) build(hasGlobal bool) *Cluster {
	a.cluster = &Cluster{
		ID:    a.vpc.ID,
		Label: panel.VPCPanel(a.vpc),
		Style: vpcClusterStyle,
	}

	a.addInternet()
	cells := a.buildCells()
	a.addNATGateways()
	a.addInternetGateways()

	for _, natNode := range a.natNodes {
		for _, igwNode := range a.igwNodes {
			a.edge(Edge{From: natNode, To: igwNode, Style: "dashed", Color: panel.PeeringPalette.HeaderBG})
		}
	}

	a.addSubnets(cells)
	a.addEndpoints()
	a.addDatabases()
	a.addTiers()
	a.addColumnChains()
	a.cluster.Children = append(a.cluster.Children, a.legend(hasGlobal))

	return a.cluster
}

func (a *vpcAssembly) edge(e Edge) {
	a.model.Edges = append(a.model.Edges, e)
}

// anchorAZ maps a zone onto one of the grid's columns, defaulting to the
// center for unknown or missing zones.
func (a *vpcAssembly) anchorAZ(az string) string {
	for _, known := range a.grid.AZs() {
		if known == az {
			return az
		}
	}
	return a.grid.CenterAZ()
}

func (a *vpcAssembly) addInternet() {
	a.cluster.Nodes = append(a.cluster.Nodes, Node{
		ID:    a.vpc.ID + "_internet",
		Label: panel.InternetCard(a.vpc.ID),
		Group: "internet",
	})
}

// buildCells classifies every subnet of the VPC into a display cell,
// ordered by availability zone.
func (a *vpcAssembly) buildCells() []models.SubnetCell {
	subnets := append([]models.Subnet(nil), a.ctx.SubnetsByVPC[a.vpc.ID]...)
	sort.SliceStable(subnets, func(i, j int) bool {
		return subnets[i].AvailabilityZone < subnets[j].AvailabilityZone
	})

	cells := make([]models.SubnetCell, 0, len(subnets))
	for _, subnet := range subnets {
		table := a.ctx.ResolveRouteTable(subnet.ID, a.vpc.ID)
		tier, isolated := topology.Classify(subnet, table)
		fill, font := panel.SubnetColors(tier, isolated)
		cells = append(cells, models.SubnetCell{
			SubnetID:       subnet.ID,
			Name:           subnet.Name,
			CIDR:           subnet.CIDRBlock,
			AZ:             subnet.AvailabilityZone,
			Classification: string(tier),
			Tier:           tier,
			Color:          fill,
			FontColor:      font,
			RouteSummary:   topology.Summarize(table),
			Isolated:       isolated,
			Instances:      topology.SummarizeInstances(a.ctx.InstancesBySubnet[subnet.ID]),
		})
	}
	return cells
}

func (a *vpcAssembly) addNATGateways() {
	for _, nat := range a.ctx.NATGatewaysByVPC[a.vpc.ID] {
		az := nat.AvailabilityZone
		if subnet := a.ctx.SubnetByID[nat.SubnetID]; subnet != nil {
			az = subnet.AvailabilityZone
		}

		nodeID := nat.ID + "_node"
		group := a.anchorAZ(az)
		if group == "" {
			group = nat.ID
		}
		a.defs[nodeID] = Node{ID: nodeID, Label: panel.NATGatewayPanel(nat, az), Group: group}
		a.grid.Place(models.TierIngress, az, nodeID)

		a.natNodes = append(a.natNodes, nodeID)
		a.natByID[nat.ID] = nodeID
		a.external[nat.ID] = nodeID
	}
}

func (a *vpcAssembly) addInternetGateways() {
	center := a.grid.CenterAZ()
	for _, igw := range a.ctx.IGWsByVPC[a.vpc.ID] {
		nodeID := igw.ID + "_node"
		group := center
		if group == "" {
			group = "internet"
		}
		a.defs[nodeID] = Node{ID: nodeID, Label: panel.InternetGatewayPanel(igw), Group: group}
		a.grid.Place(models.TierIngress, center, nodeID)

		a.edge(Edge{From: a.vpc.ID + "_internet", To: nodeID, Color: internetEdgeColor, Style: "dashed"})

		a.igwNodes = append(a.igwNodes, nodeID)
		a.igwByID[igw.ID] = nodeID
		a.external[igw.ID] = nodeID
	}
}

func (a *vpcAssembly) addSubnets(cells []models.SubnetCell) {
	for _, cell := range cells {
		a.defs[cell.SubnetID] = Node{
			ID:    cell.SubnetID,
			Label: panel.SubnetCellLabel(cell),
			Group: a.anchorAZ(cell.AZ),
		}
		a.grid.Place(cell.Tier, cell.AZ, cell.SubnetID)

		if cell.RouteSummary == nil {
			continue
		}
		for _, route := range cell.RouteSummary.Routes {
			if route.Target == "" {
				continue
			}
			var target, color string
			switch route.TargetType {
			case models.TargetNATGateway:
				target = a.natByID[route.Target]
				color = panel.PeeringPalette.HeaderBG
			case models.TargetInternetGateway, models.TargetEgressOnlyIGW:
				target = a.igwByID[route.Target]
				if target == "" {
					target = a.ensureExternal(route.Target, route.TargetType)
				}
				color = igwRouteColor
			case models.TargetVPCEndpoint:
				// Only wired when the endpoint already has a node; the
				// dotted association edges cover the usual case.
				target = a.external[route.Target]
				color = endpointColor
			default:
				target = a.ensureExternal(route.Target, route.TargetType)
				color = genericRouteColor
			}
			if target == "" {
				continue
			}
			a.edge(Edge{From: cell.SubnetID, FromPort: "routes", To: target, Color: color})
		}
	}
}

// ensureExternal lazily creates the node for a route target outside the
// subnet grid. Targets with no display form (instances, network
// interfaces, unrecognized gateways) yield no node and the edge is
// skipped.
func (a *vpcAssembly) ensureExternal(id string, typ models.TargetType) string {
	if id == "" {
		return ""
	}
	if nodeID, ok := a.external[id]; ok {
		return nodeID
	}

	var label panel.Label
	switch typ {
	case models.TargetPeering:
		label = panel.PeeringPanel(id, a.ctx.PeeringByID[id])
	case models.TargetVirtualPrivateGW:
		label = panel.VirtualPrivateGatewayPanel(id, a.ctx.VPNsByGateway[id], a.ctx.CustomerGateways)
	default:
		card, ok := panel.GatewayCard(id, typ)
		if !ok {
			return ""
		}
		label = card
	}

	nodeID := id + "_node"
	a.cluster.Nodes = append(a.cluster.Nodes, Node{ID: nodeID, Label: label})
	a.external[id] = nodeID
	return nodeID
}

func (a *vpcAssembly) addEndpoints() {
	center := a.grid.CenterAZ()
	for _, endpoint := range a.ctx.EndpointsByVPC[a.vpc.ID] {
		nodeID := endpoint.ID + "_node"

		az := center
		if strings.EqualFold(endpoint.Type, "interface") && len(endpoint.SubnetIDs) > 0 {
			if subnet := a.ctx.SubnetByID[endpoint.SubnetIDs[0]]; subnet != nil {
				az = subnet.AvailabilityZone
			}
		}

		a.defs[nodeID] = Node{ID: nodeID, Label: panel.EndpointCard(endpoint)}
		a.grid.Place(models.TierShared, az, nodeID)
		a.external[endpoint.ID] = nodeID

		for _, subnetID := range endpoint.SubnetIDs {
			if a.ctx.HasExplicitRouteTable(subnetID) {
				a.edge(Edge{From: nodeID, To: subnetID, Color: endpointColor, Style: "dotted"})
			}
		}
	}
}

func (a *vpcAssembly) addDatabases() {
	center := a.grid.CenterAZ()
	for _, db := range a.ctx.DBInstancesByVPC[a.vpc.ID] {
		identifier := db.Identifier
		if identifier == "" {
			identifier = "instance"
		}
		nodeID := "rds_" + strings.ReplaceAll(identifier, "-", "_")

		az := center
		for _, zone := range db.AvailabilityZones {
			if zone != "" {
				az = zone
				break
			}
		}

		a.defs[nodeID] = Node{ID: nodeID, Label: panel.RDSCard(db), Group: a.anchorAZ(az)}
		a.grid.Place(models.TierPrivateData, az, nodeID)

		for _, subnetID := range db.SubnetIDs {
			if subnet := a.ctx.SubnetByID[subnetID]; subnet != nil && subnet.VPCID == a.vpc.ID {
				a.edge(Edge{From: subnetID, To: nodeID, Color: databaseEdgeColor, Style: "dashed"})
			}
		}
	}
}

// addTiers materializes one cluster per tier with its grid row: real nodes
// where cells are occupied, invisible placeholders where they are not.
func (a *vpcAssembly) addTiers() {
	a.grid.FillPlaceholders()
	for _, tier := range models.TierOrder {
		tc := &Cluster{
			ID:    fmt.Sprintf("%s_%s", a.vpc.ID, tier.Tier),
			Label: panel.BoldText(tier.Title),
			Style: tierClusterStyle,
		}
		for _, az := range a.grid.AZs() {
			for _, nodeID := range a.grid.Occupants(tier.Tier, az) {
				if def, ok := a.defs[nodeID]; ok {
					tc.Nodes = append(tc.Nodes, def)
					continue
				}
				tc.Nodes = append(tc.Nodes, Node{ID: nodeID, Group: az, Placeholder: true})
			}
		}
		a.cluster.Children = append(a.cluster.Children, tc)
	}
}

// addColumnChains threads each AZ column with invisible weighted edges so
// the engine keeps tiers vertically aligned.
func (a *vpcAssembly) addColumnChains() {
	for _, chain := range a.grid.ColumnChains() {
		for i := 0; i+1 < len(chain); i++ {
			a.edge(Edge{From: chain[i], To: chain[i+1], Style: "invis", Weight: columnChainWeight})
		}
	}
}

func (a *vpcAssembly) legend(hasGlobal bool) *Cluster {
	lc := &Cluster{
		ID:    "legend_" + a.vpc.ID,
		Label: panel.BoldText("Legend"),
		Style: legendClusterStyle,
	}
	var prev string
	for _, entry := range panel.LegendEntries(hasGlobal) {
		nodeID := fmt.Sprintf("legend_%s_%s", entry.Key, a.vpc.ID)
		lc.Nodes = append(lc.Nodes, Node{ID: nodeID, Label: entry.Card})
		if prev != "" {
			a.edge(Edge{From: prev, To: nodeID, Style: "invis"})
		}
		prev = nodeID
	}
	return lc
}

func buildGlobalCluster(m *Model, globals []models.GlobalServiceSummary) *Cluster {
	gc := &Cluster{
		ID:    "global_services",
		Label: panel.BoldText("Global / Regional Services"),
		Style: globalClusterStyle,
	}
	var prev string
	for i, summary := range globals {
		nodeID := fmt.Sprintf("global_service_%d", i)
		gc.Nodes = append(gc.Nodes, Node{ID: nodeID, Label: panel.ServiceLabel(summary)})
		if prev != "" {
			m.Edges = append(m.Edges, Edge{From: prev, To: nodeID, Style: "invis"})
		}
		prev = nodeID
	}
	return gc
}
