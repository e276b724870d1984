package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// S3PublicBucketRule flags buckets that are publicly accessible through
// their ACL or bucket policy and not shielded by a public access block.
type S3PublicBucketRule struct{}

func (r S3PublicBucketRule) ID() string      { return "S3_PUBLIC_BUCKET" }
func (r S3PublicBucketRule) Name() string    { return "Publicly Accessible S3 Bucket" }
func (r S3PublicBucketRule) Service() string { return "s3" }

// Evaluate returns one HIGH finding per public bucket.
func (r S3PublicBucketRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, bucket := range ctx.Account.Buckets {
		if !bucket.Public {
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
			Severity:       models.SeverityHigh,
			Explanation:    "Bucket allows public access through its ACL or bucket policy.",
			Recommendation: "Enable the bucket-level public access block and serve public content through CloudFront instead.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
