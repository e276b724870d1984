package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// GuardDutyDisabledRule flags regions where no GuardDuty detector is enabled.
type GuardDutyDisabledRule struct{}

func (r GuardDutyDisabledRule) ID() string      { return "GUARDDUTY_DISABLED" }
func (r GuardDutyDisabledRule) Name() string    { return "GuardDuty Disabled" }
func (r GuardDutyDisabledRule) Service() string { return "guardduty" }

// Evaluate returns one MEDIUM finding per region without an active detector.
func (r GuardDutyDisabledRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, status := range ctx.Account.GuardDuty {
		if status.Enabled {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s-%s", r.ID(), ctx.AccountID, status.Region),
			RuleID:         r.ID(),
			ResourceID:     ctx.AccountID,
			ResourceType:   models.ResourceGuardDuty,
			Region:         status.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    fmt.Sprintf("AWS GuardDuty is not enabled in region %s.", status.Region),
			Recommendation: "Enable GuardDuty in every region the account operates in, or via an organization-wide delegated administrator.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
