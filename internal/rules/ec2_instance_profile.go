package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// EC2NoInstanceProfileRule flags instances launched without an IAM instance
// profile. Workloads on such instances end up with long-lived access keys
// baked into the AMI or user data instead of role credentials.
type EC2NoInstanceProfileRule struct{}

func (r EC2NoInstanceProfileRule) ID() string      { return "EC2_NO_INSTANCE_PROFILE" }
func (r EC2NoInstanceProfileRule) Name() string    { return "Instance Without IAM Profile" }
func (r EC2NoInstanceProfileRule) Service() string { return "ec2" }

// Evaluate returns one MEDIUM finding per instance with no instance profile.
func (r EC2NoInstanceProfileRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, instance := range ctx.Network.Instances {
		if instance.HasInstanceProfile {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), instance.ID),
			RuleID:         r.ID(),
			ResourceID:     instance.ID,
			ResourceType:   models.ResourceEC2Instance,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    "Instance is not associated with an IAM instance profile.",
			Recommendation: "Attach an instance profile scoped to the permissions the workload needs and remove any static credentials.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
