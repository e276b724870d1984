package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
)

// IAMAccessKeyStaleRule flags access keys older than max_age_days (default
// 90). Inactive keys are flagged too; a disabled stale key is still a
// credential that should have been deleted.
type IAMAccessKeyStaleRule struct{}

func (r IAMAccessKeyStaleRule) ID() string      { return "IAM_ACCESS_KEY_STALE" }
func (r IAMAccessKeyStaleRule) Name() string    { return "Stale IAM Access Key" }
func (r IAMAccessKeyStaleRule) Service() string { return "iam" }

// Evaluate returns one MEDIUM finding per key past the age threshold. Keys
// without a creation date are skipped.
func (r IAMAccessKeyStaleRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	maxAgeDays := policy.GetThreshold(r.ID(), "max_age_days", 90, ctx.Policy)
	maxAge := time.Duration(maxAgeDays*24) * time.Hour
	now := time.Now().UTC()

	var findings []models.Finding
	for _, user := range ctx.Account.IAMUsers {
		for _, key := range user.AccessKeys {
			if key.CreateDate.IsZero() || now.Sub(key.CreateDate) <= maxAge {
				continue
			}
			resource := fmt.Sprintf("%s:%s", user.UserName, key.ID)
			findings = append(findings, models.Finding{
				ID:             fmt.Sprintf("%s-%s", r.ID(), resource),
				RuleID:         r.ID(),
				ResourceID:     resource,
				ResourceType:   models.ResourceIAMAccessKey,
				Region:         "global",
				AccountID:      ctx.AccountID,
				Profile:        ctx.Profile,
				Severity:       models.SeverityMedium,
				Explanation:    fmt.Sprintf("Access key is older than %d days.", int(maxAgeDays)),
				Recommendation: "Rotate the key and delete the old one once nothing uses it.",
				DetectedAt:     time.Now().UTC(),
				Metadata: map[string]any{
					"age_days": int(now.Sub(key.CreateDate).Hours() / 24),
					"status":   key.Status,
				},
			})
		}
	}
	return findings
}
