package topology

import (
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// Subnet name tags are free-form; these substrings are the only signal
// available for separating data and directory subnets from app subnets.
var (
	dataNameHints   = []string{"data", "db", "database"}
	sharedNameHints = []string{"directory", "shared", "ad", "ds"}
)

// Classify assigns a subnet its diagram tier and isolation flag from the
// route table it resolves to. table may be nil when the VPC has no main
// route table.
//
// A subnet is public when a default route points at an internet gateway
// and no NAT route overrides it, or when MapPublicIpOnLaunch is set. It is
// isolated while no default route exists at all. Routes are scanned in
// table order; a NAT route seen after an IGW route for the same
// destination wins, and the reverse also holds. The AWS API has returned
// them IGW-first for years, so keep the scan order as is.
func Classify(subnet models.Subnet, table *models.RouteTable) (models.Tier, bool) {
	public := false
	isolated := true

	if table != nil {
		for _, route := range table.Routes {
			dest := route.Destination()
			if dest != "0.0.0.0/0" && dest != "::/0" {
				continue
			}
			isolated = false
			if strings.HasPrefix(route.GatewayID, "igw-") {
				public = true
			}
			if route.NATGatewayID != "" {
				public = false
			}
		}
	}

	if subnet.MapPublicIPOnLaunch {
		public = true
		isolated = false
	}

	if public {
		return models.TierPublic, false
	}

	name := strings.ToLower(subnet.Name)
	for _, hint := range dataNameHints {
		if strings.Contains(name, hint) {
			return models.TierPrivateData, isolated
		}
	}
	for _, hint := range sharedNameHints {
		if strings.Contains(name, hint) {
			return models.TierShared, isolated
		}
	}
	return models.TierPrivateApp, isolated
}
