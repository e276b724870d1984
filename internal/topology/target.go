package topology

import (
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// ResolveTarget maps a single route entry to the resource it points at,
// returning the target identifier, its type, and an optional description.
// All three are empty for the implicit local route.
//
// Malformed route entries can carry more than one target field at once; the
// precedence below decides which one wins and must not be reordered:
// NAT gateway → transit gateway → peering → VPC endpoint → egress-only IGW →
// generic gateway ID (disambiguated by prefix) → instance → ENI → carrier
// gateway → local gateway.
func ResolveTarget(route models.Route) (id string, typ models.TargetType, desc string) {
	if route.NATGatewayID != "" {
		return route.NATGatewayID, models.TargetNATGateway, ""
	}
	if route.TransitGatewayID != "" {
		return route.TransitGatewayID, models.TargetTransitGateway, ""
	}
	if route.VPCPeeringConnectionID != "" {
		return route.VPCPeeringConnectionID, models.TargetPeering, ""
	}
	if route.VPCEndpointID != "" {
		return route.VPCEndpointID, models.TargetVPCEndpoint, ""
	}
	if route.EgressOnlyIGWID != "" {
		return route.EgressOnlyIGWID, models.TargetEgressOnlyIGW, ""
	}
	if route.GatewayID != "" {
		return resolveGatewayID(route.GatewayID)
	}
	if route.InstanceID != "" {
		return route.InstanceID, models.TargetInstance, ""
	}
	if route.NetworkInterfaceID != "" {
		return route.NetworkInterfaceID, models.TargetNetworkInterface, ""
	}
	if route.CarrierGatewayID != "" {
		return route.CarrierGatewayID, models.TargetCarrierGateway, ""
	}
	if route.LocalGatewayID != "" {
		return route.LocalGatewayID, models.TargetLocalGateway, ""
	}
	return "", "", ""
}

// resolveGatewayID classifies the catch-all GatewayId field by identifier
// prefix. Routes pointing at "local" (any casing) resolve to nothing.
func resolveGatewayID(gatewayID string) (string, models.TargetType, string) {
	if strings.EqualFold(gatewayID, "local") {
		return "", "", ""
	}
	switch {
	case strings.HasPrefix(gatewayID, "igw-"):
		return gatewayID, models.TargetInternetGateway, ""
	case strings.HasPrefix(gatewayID, "eigw-"):
		return gatewayID, models.TargetEgressOnlyIGW, ""
	case strings.HasPrefix(gatewayID, "vgw-"):
		return gatewayID, models.TargetVirtualPrivateGW, ""
	case strings.HasPrefix(gatewayID, "tgw-"):
		return gatewayID, models.TargetTransitGateway, ""
	case strings.HasPrefix(gatewayID, "pcx-"):
		return gatewayID, models.TargetPeering, ""
	case strings.HasPrefix(gatewayID, "vpce-"):
		return gatewayID, models.TargetVPCEndpoint, ""
	}
	return gatewayID, models.TargetGateway, ""
}
