package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// VPNStateRule flags site-to-site VPN connections that are not in the
// available state. Connections still being provisioned or torn down report
// states like "pending" and "deleting"; anything but "available" means the
// link is not carrying traffic.
type VPNStateRule struct{}

func (r VPNStateRule) ID() string      { return "VPN_STATE" }
func (r VPNStateRule) Name() string    { return "VPN Connection Not Available" }
func (r VPNStateRule) Service() string { return "vpc" }

// Evaluate returns one MEDIUM finding per VPN connection outside the
// available state. Connections with no reported state are skipped.
func (r VPNStateRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, vpn := range ctx.Network.VPNConnections {
		if vpn.State == "" || vpn.State == "available" {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), vpn.ID),
			RuleID:         r.ID(),
			ResourceID:     vpn.ID,
			ResourceType:   models.ResourceVPNConnection,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    fmt.Sprintf("Site-to-site VPN connection not in available state (state=%s).", vpn.State),
			Recommendation: "Check the connection in the VPC console; delete it if it is no longer needed.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"state": vpn.State,
			},
		})
	}
	return findings
}
