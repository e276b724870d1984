package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// RDSPublicAccessRule flags RDS instances that are publicly accessible.
type RDSPublicAccessRule struct{}

func (r RDSPublicAccessRule) ID() string      { return "RDS_PUBLIC_ACCESS" }
func (r RDSPublicAccessRule) Name() string    { return "Publicly Accessible RDS Instance" }
func (r RDSPublicAccessRule) Service() string { return "rds" }

// Evaluate returns one HIGH finding per publicly accessible database.
func (r RDSPublicAccessRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, db := range ctx.Network.DBInstances {
		if !db.PubliclyAccessible {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), db.Identifier),
			RuleID:         r.ID(),
			ResourceID:     db.Identifier,
			ResourceType:   models.ResourceRDSInstance,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityHigh,
			Explanation:    "RDS instance is publicly accessible.",
			Recommendation: "Disable public accessibility and reach the database through a bastion or VPN instead.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
