// Package topology derives diagram structure from a raw network snapshot:
// it indexes resources for fast lookup, resolves route targets, assigns
// subnets to security tiers, condenses route tables for display, and lays
// every VPC out on a tier-by-availability-zone grid.
package topology

import (
	"sort"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// Context indexes one region's network snapshot for constant-time lookups
// during diagram generation. Build it with NewContext once per render; it
// is read-only afterwards and holds no cross-render state.
type Context struct {
	Region string

	// VPCs preserves the snapshot's VPC order so diagrams are stable.
	VPCs []models.VPC

	SubnetsByVPC     map[string][]models.Subnet
	SubnetByID       map[string]*models.Subnet
	RouteTablesByVPC map[string][]*models.RouteTable
	RouteTableByID   map[string]*models.RouteTable

	// mainRouteTable and subnetRouteTable back ResolveRouteTable; both map
	// to route table IDs.
	mainRouteTable   map[string]string
	subnetRouteTable map[string]string

	NATGatewaysByVPC map[string][]models.NATGateway
	IGWsByVPC        map[string][]models.InternetGateway
	EndpointsByVPC   map[string][]models.VPCEndpoint
	PeeringByID      map[string]*models.VPCPeeringConnection

	VPNsByGateway    map[string][]models.VPNConnection
	CustomerGateways map[string]*models.CustomerGateway

	InstancesBySubnet map[string][]models.Instance
	DBInstancesByVPC  map[string][]models.DBInstance
}

// NewContext builds every index the diagram pipeline needs from snap.
func NewContext(snap *models.NetworkSnapshot) *Context {
	c := &Context{
		Region:            snap.Region,
		VPCs:              snap.VPCs,
		SubnetsByVPC:      make(map[string][]models.Subnet),
		SubnetByID:        make(map[string]*models.Subnet),
		RouteTablesByVPC:  make(map[string][]*models.RouteTable),
		RouteTableByID:    make(map[string]*models.RouteTable),
		mainRouteTable:    make(map[string]string),
		subnetRouteTable:  make(map[string]string),
		NATGatewaysByVPC:  make(map[string][]models.NATGateway),
		IGWsByVPC:         make(map[string][]models.InternetGateway),
		EndpointsByVPC:    make(map[string][]models.VPCEndpoint),
		PeeringByID:       make(map[string]*models.VPCPeeringConnection),
		VPNsByGateway:     make(map[string][]models.VPNConnection),
		CustomerGateways:  make(map[string]*models.CustomerGateway),
		InstancesBySubnet: make(map[string][]models.Instance),
		DBInstancesByVPC:  make(map[string][]models.DBInstance),
	}

	for i := range snap.Subnets {
		subnet := &snap.Subnets[i]
		c.SubnetsByVPC[subnet.VPCID] = append(c.SubnetsByVPC[subnet.VPCID], *subnet)
		c.SubnetByID[subnet.ID] = subnet
	}

	for i := range snap.RouteTables {
		table := &snap.RouteTables[i]
		c.RouteTablesByVPC[table.VPCID] = append(c.RouteTablesByVPC[table.VPCID], table)
		c.RouteTableByID[table.ID] = table
		if table.Main {
			c.mainRouteTable[table.VPCID] = table.ID
		}
		for _, subnetID := range table.SubnetIDs {
			c.subnetRouteTable[subnetID] = table.ID
		}
	}

	for _, nat := range snap.NATGateways {
		// Deleted and failed NAT gateways linger in API responses; they
		// would only clutter the ingress tier.
		if nat.State == "deleted" || nat.State == "failed" {
			continue
		}
		c.NATGatewaysByVPC[nat.VPCID] = append(c.NATGatewaysByVPC[nat.VPCID], nat)
	}

	for _, igw := range snap.InternetGateways {
		for _, att := range igw.Attachments {
			if att.VPCID != "" {
				c.IGWsByVPC[att.VPCID] = append(c.IGWsByVPC[att.VPCID], igw)
			}
		}
	}

	for _, endpoint := range snap.VPCEndpoints {
		c.EndpointsByVPC[endpoint.VPCID] = append(c.EndpointsByVPC[endpoint.VPCID], endpoint)
	}

	for i := range snap.PeeringConnections {
		peering := &snap.PeeringConnections[i]
		if peering.ID != "" {
			c.PeeringByID[peering.ID] = peering
		}
	}

	for _, vpn := range snap.VPNConnections {
		if vpn.VPNGatewayID != "" {
			c.VPNsByGateway[vpn.VPNGatewayID] = append(c.VPNsByGateway[vpn.VPNGatewayID], vpn)
		}
	}

	for i := range snap.CustomerGateways {
		cgw := &snap.CustomerGateways[i]
		if cgw.ID != "" {
			c.CustomerGateways[cgw.ID] = cgw
		}
	}

	for _, instance := range snap.Instances {
		if instance.SubnetID != "" {
			c.InstancesBySubnet[instance.SubnetID] = append(c.InstancesBySubnet[instance.SubnetID], instance)
		}
	}

	for _, db := range snap.DBInstances {
		if db.VPCID != "" {
			c.DBInstancesByVPC[db.VPCID] = append(c.DBInstancesByVPC[db.VPCID], db)
		}
	}

	return c
}

// ResolveRouteTable returns the route table serving subnetID: the table it
// is explicitly associated with when one exists, otherwise the VPC's main
// table. Nil when the VPC has neither.
func (c *Context) ResolveRouteTable(subnetID, vpcID string) *models.RouteTable {
	tableID := c.subnetRouteTable[subnetID]
	if tableID == "" {
		tableID = c.mainRouteTable[vpcID]
	}
	if tableID == "" {
		return nil
	}
	return c.RouteTableByID[tableID]
}

// HasExplicitRouteTable reports whether subnetID carries its own route
// table association rather than falling back to the VPC main table.
func (c *Context) HasExplicitRouteTable(subnetID string) bool {
	_, ok := c.subnetRouteTable[subnetID]
	return ok
}

// AvailabilityZones returns the sorted distinct availability zones of a
// VPC's subnets. The result is never empty: a VPC without zoned subnets
// yields a single unnamed zone so grid layout always has one column.
func (c *Context) AvailabilityZones(vpcID string) []string {
	seen := make(map[string]struct{})
	var azs []string
	for _, subnet := range c.SubnetsByVPC[vpcID] {
		if subnet.AvailabilityZone == "" {
			continue
		}
		if _, ok := seen[subnet.AvailabilityZone]; ok {
			continue
		}
		seen[subnet.AvailabilityZone] = struct{}{}
		azs = append(azs, subnet.AvailabilityZone)
	}
	sort.Strings(azs)
	if len(azs) == 0 {
		azs = []string{""}
	}
	return azs
}
