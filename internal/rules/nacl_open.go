package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// NACLOpenRule flags network ACL allow entries whose CIDR is the entire
// internet. Deny entries with the same CIDR are the normal way to close a
// subnet down and are ignored.
type NACLOpenRule struct{}

func (r NACLOpenRule) ID() string      { return "NACL_OPEN" }
func (r NACLOpenRule) Name() string    { return "Network ACL Open To The Internet" }
func (r NACLOpenRule) Service() string { return "vpc" }

// Evaluate returns one HIGH finding per world-open allow entry.
func (r NACLOpenRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, entry := range ctx.Network.NetworkACLEntries {
		if !entry.Allow {
			continue
		}
		if entry.CIDR != "0.0.0.0/0" && entry.CIDR != "::/0" {
			continue
		}
		direction := "ingress"
		if entry.Egress {
			direction = "egress"
		}
		family := "ipv4"
		if entry.CIDR == "::/0" {
			family = "ipv6"
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s-%s-%s-%d-%d", r.ID(), entry.ACLID, direction, family, entry.FromPort, entry.ToPort),
			RuleID:         r.ID(),
			ResourceID:     entry.ACLID,
			ResourceType:   models.ResourceNetworkACL,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityHigh,
			Explanation:    fmt.Sprintf("Network ACL allows %s from the entire internet %s.", direction, naclPortRange(entry)),
			Recommendation: "Replace the open allow entry with entries scoped to the CIDR ranges the subnet actually exchanges traffic with.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"cidr": entry.CIDR,
			},
		})
	}
	return findings
}

func naclPortRange(entry models.NetworkACLEntry) string {
	if entry.AllPorts {
		return "on all ports"
	}
	if entry.FromPort == entry.ToPort {
		return fmt.Sprintf("on port %d", entry.FromPort)
	}
	return fmt.Sprintf("on ports %d-%d", entry.FromPort, entry.ToPort)
}
