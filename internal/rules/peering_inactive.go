package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// PeeringInactiveRule flags VPC peering connections that are not active.
// Pending-acceptance, failed, and rejected connections linger in the console
// for weeks and usually mean a cross-account handshake was never finished.
type PeeringInactiveRule struct{}

func (r PeeringInactiveRule) ID() string      { return "PEERING_INACTIVE" }
func (r PeeringInactiveRule) Name() string    { return "VPC Peering Connection Not Active" }
func (r PeeringInactiveRule) Service() string { return "vpc" }

// Evaluate returns one MEDIUM finding per peering connection outside the
// active state. Connections with no reported status are skipped.
func (r PeeringInactiveRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, peering := range ctx.Network.PeeringConnections {
		if peering.StatusCode == "" || peering.StatusCode == "active" {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), peering.ID),
			RuleID:         r.ID(),
			ResourceID:     peering.ID,
			ResourceType:   models.ResourcePeering,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    fmt.Sprintf("VPC peering connection not active (status=%s).", peering.StatusCode),
			Recommendation: "Accept the peering request on the accepter side, or delete the connection if it was abandoned.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"status":         peering.StatusCode,
				"status_message": peering.StatusMessage,
			},
		})
	}
	return findings
}
