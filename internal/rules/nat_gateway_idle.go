package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
)

// NATGatewayIdleRule flags available NAT gateways whose outbound traffic over
// the metric window stayed under a threshold. A NAT gateway costs the same
// whether it routes traffic or not, so idle ones are pure spend.
type NATGatewayIdleRule struct{}

func (r NATGatewayIdleRule) ID() string      { return "NAT_GATEWAY_IDLE" }
func (r NATGatewayIdleRule) Name() string    { return "Idle NAT Gateway" }
func (r NATGatewayIdleRule) Service() string { return "vpc" }

// Evaluate returns one LOW finding per available NAT gateway that moved less
// than max_gb (default 1 GB) out over the metric window. Gateways without
// metric data are skipped rather than assumed idle.
func (r NATGatewayIdleRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	maxGB := policy.GetThreshold(r.ID(), "max_gb", 1.0, ctx.Policy)
	var findings []models.Finding
	for _, nat := range ctx.Network.NATGateways {
		if nat.State != "available" || nat.BytesOut == nil {
			continue
		}
		gb := *nat.BytesOut / (1024 * 1024 * 1024)
		if gb >= maxGB {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), nat.ID),
			RuleID:         r.ID(),
			ResourceID:     nat.ID,
			ResourceType:   models.ResourceNATGateway,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityLow,
			Explanation:    "NAT Gateway has negligible traffic.",
			Recommendation: "Confirm nothing depends on the gateway and delete it, or replace it with VPC endpoints for the services it fronts.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"gb_out":    gb,
				"threshold": maxGB,
			},
		})
	}
	return findings
}
