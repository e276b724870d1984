package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// EC2IMDSv2Rule flags instances whose metadata service still answers
// unauthenticated v1 requests. SSRF against any process on the instance can
// then read the role credentials.
type EC2IMDSv2Rule struct{}

func (r EC2IMDSv2Rule) ID() string      { return "EC2_IMDSV2_NOT_REQUIRED" }
func (r EC2IMDSv2Rule) Name() string    { return "IMDSv2 Not Required" }
func (r EC2IMDSv2Rule) Service() string { return "ec2" }

// Evaluate returns one MEDIUM finding per instance not enforcing IMDSv2.
func (r EC2IMDSv2Rule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, instance := range ctx.Network.Instances {
		if instance.MetadataTokensRequired {
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
			Explanation:    "Instance metadata service does not require IMDSv2 tokens.",
			Recommendation: "Set HttpTokens to required on the instance metadata options.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
