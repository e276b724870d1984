package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// SubnetAutoPublicIPRule flags subnets that hand every launched instance a
// public IPv4 address. Workloads in such subnets are internet-reachable the
// moment a security group slips.
type SubnetAutoPublicIPRule struct{}

func (r SubnetAutoPublicIPRule) ID() string      { return "SUBNET_AUTO_PUBLIC_IP" }
func (r SubnetAutoPublicIPRule) Name() string    { return "Subnet Auto-Assigns Public IPs" }
func (r SubnetAutoPublicIPRule) Service() string { return "vpc" }

// Evaluate returns one MEDIUM finding per subnet with MapPublicIpOnLaunch set.
func (r SubnetAutoPublicIPRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, subnet := range ctx.Network.Subnets {
		if !subnet.MapPublicIPOnLaunch {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), subnet.ID),
			RuleID:         r.ID(),
			ResourceID:     subnet.ID,
			ResourceType:   models.ResourceSubnet,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    "Subnet automatically assigns public IPv4 addresses on launch.",
			Recommendation: "Disable auto-assignment and attach Elastic IPs only to the instances that need them.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"vpc_id": subnet.VPCID,
				"cidr":   subnet.CIDRBlock,
			},
		})
	}
	return findings
}
