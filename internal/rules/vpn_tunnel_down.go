package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// VPNTunnelDownRule flags VPN tunnel endpoints whose telemetry reports a
// status other than UP. A connection is only redundant while both of its
// tunnels are healthy.
type VPNTunnelDownRule struct{}

func (r VPNTunnelDownRule) ID() string      { return "VPN_TUNNEL_DOWN" }
func (r VPNTunnelDownRule) Name() string    { return "VPN Tunnel Down" }
func (r VPNTunnelDownRule) Service() string { return "vpc" }

// Evaluate returns one HIGH finding per tunnel endpoint that is not UP.
// Endpoints with no reported status are skipped.
func (r VPNTunnelDownRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, vpn := range ctx.Network.VPNConnections {
		for _, tunnel := range vpn.Telemetry {
			if tunnel.Status == "" || tunnel.Status == "UP" {
				continue
			}
			endpoint := tunnel.OutsideIP
			if endpoint == "" {
				endpoint = "unknown"
			}
			findings = append(findings, models.Finding{
				ID:             fmt.Sprintf("%s-%s-%s", r.ID(), vpn.ID, endpoint),
				RuleID:         r.ID(),
				ResourceID:     vpn.ID,
				ResourceType:   models.ResourceVPNConnection,
				Region:         ctx.Network.Region,
				AccountID:      ctx.AccountID,
				Profile:        ctx.Profile,
				Severity:       models.SeverityHigh,
				Explanation:    fmt.Sprintf("VPN tunnel endpoint %s is reporting status %s.", endpoint, tunnel.Status),
				Recommendation: "Investigate the tunnel on both the AWS and customer gateway sides and restore it before the remaining tunnel fails.",
				DetectedAt:     time.Now().UTC(),
				Metadata: map[string]any{
					"outside_ip": tunnel.OutsideIP,
					"status":     tunnel.Status,
				},
			})
		}
	}
	return findings
}
