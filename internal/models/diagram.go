package models

import (
	"fmt"
	"strings"
)

// Tier is the security tier a subnet (or gateway row) is grouped under in
// the topology diagram.
type Tier string

const (
	TierIngress     Tier = "ingress"
	TierPublic      Tier = "public"
	TierPrivateApp  Tier = "private_app"
	TierPrivateData Tier = "private_data"
	TierShared      Tier = "shared"
)

// TierTitle is the display heading of one diagram tier.
type TierTitle struct {
	Tier  Tier
	Title string
}

// TierOrder is the fixed top-to-bottom ordering of diagram tiers. Layout and
// rendering iterate this slice; its order is load-bearing.
var TierOrder = []TierTitle{
	{TierIngress, "Ingress (IGW / NAT)"},
	{TierPublic, "Public Subnets"},
	{TierPrivateApp, "Private App Subnets"},
	{TierPrivateData, "Private Data Subnets"},
	{TierShared, "Shared / Directories"},
}

// TargetType classifies the resolved target of a route table entry. The set
// is closed; the panel formatter switches exhaustively over it.
type TargetType string

const (
	TargetNATGateway       TargetType = "nat_gateway"
	TargetTransitGateway   TargetType = "transit_gateway"
	TargetPeering          TargetType = "vpc_peering_connection"
	TargetVPCEndpoint      TargetType = "vpc_endpoint"
	TargetEgressOnlyIGW    TargetType = "egress_only_internet_gateway"
	TargetInternetGateway  TargetType = "internet_gateway"
	TargetVirtualPrivateGW TargetType = "virtual_private_gateway"
	TargetGateway          TargetType = "gateway"
	TargetInstance         TargetType = "instance"
	TargetNetworkInterface TargetType = "network_interface"
	TargetCarrierGateway   TargetType = "carrier_gateway"
	TargetLocalGateway     TargetType = "local_gateway"
)

// RouteDetail is the display form of a single resolved route table entry.
type RouteDetail struct {
	Destination string     `json:"destination"`
	Target      string     `json:"target,omitempty"`
	TargetType  TargetType `json:"target_type,omitempty"`
	State       string     `json:"state,omitempty"`
	Description string     `json:"description,omitempty"`
}

// DisplayText returns the human-readable one-line form of the route:
// "destination → target" with a trailing "[state]" when the state is
// anything other than active.
func (d RouteDetail) DisplayText() string {
	targetText := d.Description
	if targetText == "" {
		targetText = d.Target
	}
	base := d.Destination
	if targetText != "" {
		base = fmt.Sprintf("%s → %s", d.Destination, targetText)
	}
	if d.State != "" && strings.ToLower(d.State) != "active" {
		base += fmt.Sprintf(" [%s]", d.State)
	}
	return base
}

// RouteSummary is the compact display form of a route table.
type RouteSummary struct {
	RouteTableID string        `json:"route_table_id"`
	Name         string        `json:"name,omitempty"`
	Routes       []RouteDetail `json:"routes"`
}

// InstanceSummary is the compact display form of an EC2 instance inside a
// subnet cell.
type InstanceSummary struct {
	InstanceID string `json:"instance_id"`
	Name       string `json:"name,omitempty"`
	State      string `json:"state,omitempty"`
	PrivateIP  string `json:"private_ip,omitempty"`
}

// DisplayText returns "name (id) [state] ip" with absent parts omitted.
func (s InstanceSummary) DisplayText() string {
	namePart := s.InstanceID
	if s.Name != "" {
		namePart = fmt.Sprintf("%s (%s)", s.Name, s.InstanceID)
	}
	parts := []string{namePart}
	if s.State != "" {
		parts = append(parts, fmt.Sprintf("[%s]", s.State))
	}
	if s.PrivateIP != "" {
		parts = append(parts, s.PrivateIP)
	}
	return strings.Join(parts, " ")
}

// SubnetCell carries everything needed to render one subnet and its route
// table as a diagram cell. Built fresh per render, never persisted.
type SubnetCell struct {
	SubnetID       string            `json:"subnet_id"`
	Name           string            `json:"name,omitempty"`
	CIDR           string            `json:"cidr,omitempty"`
	AZ             string            `json:"az,omitempty"`
	Classification string            `json:"classification"`
	Tier           Tier              `json:"tier"`
	Color          string            `json:"color"`
	FontColor      string            `json:"font_color"`
	RouteSummary   *RouteSummary     `json:"route_summary,omitempty"`
	Isolated       bool              `json:"isolated"`
	Instances      []InstanceSummary `json:"instances,omitempty"`
}

// GlobalServiceSummary is the panel content for one account-wide service
// that has no VPC affinity.
type GlobalServiceSummary struct {
	Title     string   `json:"title"`
	Lines     []string `json:"lines"`
	FillColor string   `json:"fill_color"`
	FontColor string   `json:"font_color"`
}
