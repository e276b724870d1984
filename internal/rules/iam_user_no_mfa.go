package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// IAMUserNoMFARule flags console users without MFA. API-only users (no login
// profile) authenticate with access keys and are covered by the stale-key
// rule instead.
type IAMUserNoMFARule struct{}

func (r IAMUserNoMFARule) ID() string      { return "IAM_USER_NO_MFA" }
func (r IAMUserNoMFARule) Name() string    { return "IAM User Without MFA" }
func (r IAMUserNoMFARule) Service() string { return "iam" }

// Evaluate returns one MEDIUM finding per console user without MFA.
func (r IAMUserNoMFARule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, user := range ctx.Account.IAMUsers {
		if !user.HasLoginProfile || user.MFAEnabled {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), user.UserName),
			RuleID:         r.ID(),
			ResourceID:     user.UserName,
			ResourceType:   models.ResourceIAMUser,
			Region:         "global",
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    "IAM user does not have MFA enabled.",
			Recommendation: "Require a virtual or hardware MFA device for every user with console access.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
