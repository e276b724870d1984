package models

// ---------------------------------------------------------------------------
// AWS network resource models (collected by the topology provider, consumed
// by the topology pipeline and the rule engine). Collectors convert SDK
// output into these records; nothing downstream touches SDK types.
// ---------------------------------------------------------------------------

// VPC represents a collected VPC and its address space.
type VPC struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	CIDRBlock      string   `json:"cidr_block"`
	CIDRBlocks     []string `json:"cidr_blocks,omitempty"`
	IPv6CIDRBlocks []string `json:"ipv6_cidr_blocks,omitempty"`
	DHCPOptionsID  string   `json:"dhcp_options_id,omitempty"`
	IsDefault      bool     `json:"is_default"`
}

// Subnet represents a collected subnet.
type Subnet struct {
	ID                   string `json:"id"`
	VPCID                string `json:"vpc_id"`
	Name                 string `json:"name,omitempty"`
	CIDRBlock            string `json:"cidr_block"`
	AvailabilityZone     string `json:"availability_zone"`
	MapPublicIPOnLaunch  bool   `json:"map_public_ip_on_launch"`
}

// Route is a single route table entry. In well-formed data at most one
// target-bearing field is populated; malformed records may carry several,
// which the target resolver disambiguates by fixed precedence.
type Route struct {
	DestinationCIDR     string `json:"destination_cidr,omitempty"`
	DestinationIPv6CIDR string `json:"destination_ipv6_cidr,omitempty"`
	State               string `json:"state,omitempty"`

	NATGatewayID           string `json:"nat_gateway_id,omitempty"`
	TransitGatewayID       string `json:"transit_gateway_id,omitempty"`
	VPCPeeringConnectionID string `json:"vpc_peering_connection_id,omitempty"`
	VPCEndpointID          string `json:"vpc_endpoint_id,omitempty"`
	EgressOnlyIGWID        string `json:"egress_only_igw_id,omitempty"`
	GatewayID              string `json:"gateway_id,omitempty"`
	InstanceID             string `json:"instance_id,omitempty"`
	NetworkInterfaceID     string `json:"network_interface_id,omitempty"`
	CarrierGatewayID       string `json:"carrier_gateway_id,omitempty"`
	LocalGatewayID         string `json:"local_gateway_id,omitempty"`
}

// Destination returns the IPv4 destination when present, the IPv6
// destination otherwise. Empty when the entry has no destination at all.
func (r Route) Destination() string {
	if r.DestinationCIDR != "" {
		return r.DestinationCIDR
	}
	return r.DestinationIPv6CIDR
}

// RouteTable represents a collected route table with its associations.
// Main is true when the table is the VPC's main route table; SubnetIDs lists
// the subnets explicitly associated with it.
type RouteTable struct {
	ID        string   `json:"id"`
	VPCID     string   `json:"vpc_id"`
	Name      string   `json:"name,omitempty"`
	Main      bool     `json:"main"`
	Routes    []Route  `json:"routes"`
	SubnetIDs []string `json:"subnet_ids,omitempty"`
}

// NATGateway represents a collected NAT gateway.
// BytesOut is the CloudWatch BytesOutToDestination sum over the metric
// window; nil when metric enrichment was unavailable.
type NATGateway struct {
	ID               string   `json:"id"`
	VPCID            string   `json:"vpc_id"`
	SubnetID         string   `json:"subnet_id"`
	State            string   `json:"state"`
	PublicIP         string   `json:"public_ip,omitempty"`
	AvailabilityZone string   `json:"availability_zone,omitempty"`
	BytesOut         *float64 `json:"bytes_out,omitempty"`
}

// IGWAttachment records one VPC attachment of an internet gateway.
type IGWAttachment struct {
	VPCID string `json:"vpc_id"`
	State string `json:"state,omitempty"`
}

// InternetGateway represents a collected internet gateway.
type InternetGateway struct {
	ID          string          `json:"id"`
	Name        string          `json:"name,omitempty"`
	Attachments []IGWAttachment `json:"attachments,omitempty"`
}

// VPCEndpoint represents a collected VPC endpoint.
type VPCEndpoint struct {
	ID          string   `json:"id"`
	VPCID       string   `json:"vpc_id"`
	Type        string   `json:"type"`
	ServiceName string   `json:"service_name"`
	SubnetIDs   []string `json:"subnet_ids,omitempty"`
}

// PeeringVPCInfo describes one side of a VPC peering connection.
type PeeringVPCInfo struct {
	VPCID   string   `json:"vpc_id"`
	OwnerID string   `json:"owner_id,omitempty"`
	Region  string   `json:"region,omitempty"`
	CIDRs   []string `json:"cidrs,omitempty"`
}

// VPCPeeringConnection represents a collected peering connection.
type VPCPeeringConnection struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	StatusCode    string         `json:"status_code,omitempty"`
	StatusMessage string         `json:"status_message,omitempty"`
	Requester     PeeringVPCInfo `json:"requester"`
	Accepter      PeeringVPCInfo `json:"accepter"`
}

// VPNTelemetry is the reported health of one VPN tunnel endpoint.
type VPNTelemetry struct {
	OutsideIP string `json:"outside_ip,omitempty"`
	Status    string `json:"status,omitempty"`
}

// VPNConnection represents a collected site-to-site VPN connection.
type VPNConnection struct {
	ID                string         `json:"id"`
	Name              string         `json:"name,omitempty"`
	VPNGatewayID      string         `json:"vpn_gateway_id,omitempty"`
	CustomerGatewayID string         `json:"customer_gateway_id,omitempty"`
	Type              string         `json:"type,omitempty"`
	State             string         `json:"state,omitempty"`
	Telemetry         []VPNTelemetry `json:"telemetry,omitempty"`
}

// CustomerGateway represents a collected customer gateway.
type CustomerGateway struct {
	ID        string `json:"id"`
	IPAddress string `json:"ip_address,omitempty"`
}

// Volume is an EBS volume attached to a collected instance.
type Volume struct {
	ID        string `json:"id"`
	Encrypted bool   `json:"encrypted"`
}

// Instance represents a collected EC2 instance with the attributes the
// diagram and the network rules need.
type Instance struct {
	ID                     string   `json:"id"`
	SubnetID               string   `json:"subnet_id,omitempty"`
	VPCID                  string   `json:"vpc_id,omitempty"`
	Name                   string   `json:"name,omitempty"`
	State                  string   `json:"state,omitempty"`
	PrivateIP              string   `json:"private_ip,omitempty"`
	HasInstanceProfile     bool     `json:"has_instance_profile"`
	MetadataTokensRequired bool     `json:"metadata_tokens_required"`
	Volumes                []Volume `json:"volumes,omitempty"`
}

// SecurityGroupRule represents a single permission entry of a security group,
// flattened to one CIDR per record.
type SecurityGroupRule struct {
	GroupID  string `json:"group_id"`
	Inbound  bool   `json:"inbound"`
	Protocol string `json:"protocol"`
	FromPort int32  `json:"from_port"`
	ToPort   int32  `json:"to_port"`
	CIDR     string `json:"cidr"`
	IPv6     bool   `json:"ipv6"`
}

// NetworkACLEntry represents one network ACL entry, flattened like
// SecurityGroupRule.
type NetworkACLEntry struct {
	ACLID    string `json:"acl_id"`
	Egress   bool   `json:"egress"`
	Allow    bool   `json:"allow"`
	CIDR     string `json:"cidr"`
	FromPort int32  `json:"from_port"`
	ToPort   int32  `json:"to_port"`
	AllPorts bool   `json:"all_ports"`
}

// DBInstance represents a collected RDS database instance.
type DBInstance struct {
	Identifier         string   `json:"identifier"`
	VPCID              string   `json:"vpc_id,omitempty"`
	Engine             string   `json:"engine,omitempty"`
	Class              string   `json:"class,omitempty"`
	Status             string   `json:"status,omitempty"`
	PubliclyAccessible bool     `json:"publicly_accessible"`
	StorageEncrypted   bool     `json:"storage_encrypted"`
	SubnetIDs          []string `json:"subnet_ids,omitempty"`
	AvailabilityZones  []string `json:"availability_zones,omitempty"`
}

// LoadBalancer represents a collected ELBv2 load balancer.
// RequestCount is the CloudWatch RequestCount sum over the metric window;
// nil when metric enrichment was unavailable. Only application load
// balancers are enriched — NLB and GWLB publish different metrics.
type LoadBalancer struct {
	ARN          string   `json:"arn"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Scheme       string   `json:"scheme,omitempty"`
	VPCID        string   `json:"vpc_id,omitempty"`
	RequestCount *float64 `json:"request_count,omitempty"`
}

// NetworkSnapshot holds every network resource collected from one region.
// It is the read-only input of the topology pipeline and of the network
// rule pack; built once per run, never mutated afterwards.
type NetworkSnapshot struct {
	Region             string                 `json:"region"`
	VPCs               []VPC                  `json:"vpcs"`
	Subnets            []Subnet               `json:"subnets"`
	RouteTables        []RouteTable           `json:"route_tables"`
	NATGateways        []NATGateway           `json:"nat_gateways"`
	InternetGateways   []InternetGateway      `json:"internet_gateways"`
	VPCEndpoints       []VPCEndpoint          `json:"vpc_endpoints"`
	PeeringConnections []VPCPeeringConnection `json:"peering_connections"`
	VPNConnections     []VPNConnection        `json:"vpn_connections"`
	CustomerGateways   []CustomerGateway      `json:"customer_gateways"`
	Instances          []Instance             `json:"instances"`
	SecurityGroupRules []SecurityGroupRule    `json:"security_group_rules"`
	NetworkACLEntries  []NetworkACLEntry      `json:"network_acl_entries"`
	DBInstances        []DBInstance           `json:"db_instances"`
	LoadBalancers      []LoadBalancer         `json:"load_balancers"`
}
