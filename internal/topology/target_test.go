package topology

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// TestResolveTarget_NATBeatsGateway verifies the precedence order when a
// malformed entry carries both a NAT gateway and a gateway ID.
func TestResolveTarget_NATBeatsGateway(t *testing.T) {
	route := models.Route{
		DestinationCIDR: "0.0.0.0/0",
		NATGatewayID:    "nat-9",
		GatewayID:       "igw-9",
	}
	id, typ, desc := ResolveTarget(route)
	if id != "nat-9" {
		t.Errorf("target: got %q; want nat-9", id)
	}
	if typ != models.TargetNATGateway {
		t.Errorf("type: got %q; want nat_gateway", typ)
	}
	if desc != "" {
		t.Errorf("description: got %q; want empty", desc)
	}
}

func TestResolveTarget_PrecedenceOrder(t *testing.T) {
	tests := []struct {
		name     string
		route    models.Route
		wantID   string
		wantType models.TargetType
	}{
		{
			name: "transit gateway beats peering",
			route: models.Route{
				TransitGatewayID:       "tgw-1",
				VPCPeeringConnectionID: "pcx-1",
			},
			wantID:   "tgw-1",
			wantType: models.TargetTransitGateway,
		},
		{
			name: "peering beats endpoint",
			route: models.Route{
				VPCPeeringConnectionID: "pcx-1",
				VPCEndpointID:          "vpce-1",
			},
			wantID:   "pcx-1",
			wantType: models.TargetPeering,
		},
		{
			name: "endpoint beats egress-only IGW",
			route: models.Route{
				VPCEndpointID:   "vpce-1",
				EgressOnlyIGWID: "eigw-1",
			},
			wantID:   "vpce-1",
			wantType: models.TargetVPCEndpoint,
		},
		{
			name: "egress-only IGW beats gateway",
			route: models.Route{
				EgressOnlyIGWID: "eigw-1",
				GatewayID:       "igw-1",
			},
			wantID:   "eigw-1",
			wantType: models.TargetEgressOnlyIGW,
		},
		{
			name: "gateway beats instance",
			route: models.Route{
				GatewayID:  "igw-1",
				InstanceID: "i-1",
			},
			wantID:   "igw-1",
			wantType: models.TargetInternetGateway,
		},
		{
			name: "instance beats network interface",
			route: models.Route{
				InstanceID:         "i-1",
				NetworkInterfaceID: "eni-1",
			},
			wantID:   "i-1",
			wantType: models.TargetInstance,
		},
		{
			name: "network interface beats carrier gateway",
			route: models.Route{
				NetworkInterfaceID: "eni-1",
				CarrierGatewayID:   "cagw-1",
			},
			wantID:   "eni-1",
			wantType: models.TargetNetworkInterface,
		},
		{
			name: "carrier gateway beats local gateway",
			route: models.Route{
				CarrierGatewayID: "cagw-1",
				LocalGatewayID:   "lgw-1",
			},
			wantID:   "cagw-1",
			wantType: models.TargetCarrierGateway,
		},
		{
			name:     "local gateway alone",
			route:    models.Route{LocalGatewayID: "lgw-1"},
			wantID:   "lgw-1",
			wantType: models.TargetLocalGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, typ, _ := ResolveTarget(tt.route)
			if id != tt.wantID {
				t.Errorf("target: got %q; want %q", id, tt.wantID)
			}
			if typ != tt.wantType {
				t.Errorf("type: got %q; want %q", typ, tt.wantType)
			}
		})
	}
}

func TestResolveTarget_GatewayPrefixes(t *testing.T) {
	tests := []struct {
		gatewayID string
		wantType  models.TargetType
	}{
		{"igw-0abc", models.TargetInternetGateway},
		{"eigw-0abc", models.TargetEgressOnlyIGW},
		{"vgw-0abc", models.TargetVirtualPrivateGW},
		{"tgw-0abc", models.TargetTransitGateway},
		{"pcx-0abc", models.TargetPeering},
		{"vpce-0abc", models.TargetVPCEndpoint},
		{"something-else", models.TargetGateway},
	}

	for _, tt := range tests {
		t.Run(tt.gatewayID, func(t *testing.T) {
			id, typ, _ := ResolveTarget(models.Route{GatewayID: tt.gatewayID})
			if id != tt.gatewayID {
				t.Errorf("target: got %q; want %q", id, tt.gatewayID)
			}
			if typ != tt.wantType {
				t.Errorf("type: got %q; want %q", typ, tt.wantType)
			}
		})
	}
}

func TestResolveTarget_LocalRoute(t *testing.T) {
	for _, gatewayID := range []string{"local", "Local", "LOCAL"} {
		id, typ, desc := ResolveTarget(models.Route{
			DestinationCIDR: "10.0.0.0/16",
			GatewayID:       gatewayID,
		})
		if id != "" || typ != "" || desc != "" {
			t.Errorf("gateway %q: got (%q, %q, %q); want all empty", gatewayID, id, typ, desc)
		}
	}
}

func TestResolveTarget_EmptyRoute(t *testing.T) {
	id, typ, desc := ResolveTarget(models.Route{DestinationCIDR: "0.0.0.0/0"})
	if id != "" || typ != "" || desc != "" {
		t.Errorf("got (%q, %q, %q); want all empty", id, typ, desc)
	}
}
