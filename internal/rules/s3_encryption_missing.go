package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// S3EncryptionMissingRule flags buckets without default server-side
// encryption configured.
type S3EncryptionMissingRule struct{}

func (r S3EncryptionMissingRule) ID() string      { return "S3_ENCRYPTION_MISSING" }
func (r S3EncryptionMissingRule) Name() string    { return "S3 Bucket Encryption Missing" }
func (r S3EncryptionMissingRule) Service() string { return "s3" }

// Evaluate returns one MEDIUM finding per bucket without default encryption.
func (r S3EncryptionMissingRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, bucket := range ctx.Account.Buckets {
		if bucket.DefaultEncryptionEnabled {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), bucket.Name),
			RuleID:         r.ID(),
			ResourceID:     bucket.Name,
			ResourceType:   models.ResourceS3Bucket,
			Region:         "global",
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    "Bucket encryption is not enabled.",
			Recommendation: "Configure default SSE-S3 or SSE-KMS encryption on the bucket.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
