package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// RDSUnencryptedRule flags RDS instances without storage encryption.
type RDSUnencryptedRule struct{}

func (r RDSUnencryptedRule) ID() string      { return "RDS_UNENCRYPTED" }
func (r RDSUnencryptedRule) Name() string    { return "Unencrypted RDS Storage" }
func (r RDSUnencryptedRule) Service() string { return "rds" }

// Evaluate returns one HIGH finding per database without encrypted storage.
func (r RDSUnencryptedRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, db := range ctx.Network.DBInstances {
		if db.StorageEncrypted {
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
			Explanation:    "RDS storage is not encrypted.",
			Recommendation: "Create an encrypted snapshot copy and restore the database from it; encryption cannot be enabled in place.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
