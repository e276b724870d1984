package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// ConfigRecorderDisabledRule flags regions where AWS Config is not recording
// resource changes.
type ConfigRecorderDisabledRule struct{}

func (r ConfigRecorderDisabledRule) ID() string      { return "CONFIG_RECORDER_DISABLED" }
func (r ConfigRecorderDisabledRule) Name() string    { return "AWS Config Not Recording" }
func (r ConfigRecorderDisabledRule) Service() string { return "config" }

// Evaluate returns one MEDIUM finding per region without an active recorder.
func (r ConfigRecorderDisabledRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, status := range ctx.Account.Config {
		if status.Enabled {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s-%s", r.ID(), ctx.AccountID, status.Region),
			RuleID:         r.ID(),
			ResourceID:     ctx.AccountID,
			ResourceType:   models.ResourceConfigRecorder,
			Region:         status.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    fmt.Sprintf("AWS Config is not recording in region %s.", status.Region),
			Recommendation: "Create a configuration recorder and delivery channel in the region so resource changes are tracked.",
			DetectedAt:     time.Now().UTC(),
		})
	}
	return findings
}
