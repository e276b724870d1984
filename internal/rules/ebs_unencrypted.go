package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// EBSUnencryptedRule flags EBS volumes attached to collected instances that
// do not have encryption at rest enabled.
type EBSUnencryptedRule struct{}

func (r EBSUnencryptedRule) ID() string      { return "EBS_UNENCRYPTED" }
func (r EBSUnencryptedRule) Name() string    { return "Unencrypted EBS Volume" }
func (r EBSUnencryptedRule) Service() string { return "ec2" }

// Evaluate returns one HIGH finding per unencrypted volume. The resource ID
// is "instance:volume" so the same volume on two instances reads distinctly.
func (r EBSUnencryptedRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, instance := range ctx.Network.Instances {
		for _, volume := range instance.Volumes {
			if volume.Encrypted {
				continue
			}
			resource := fmt.Sprintf("%s:%s", instance.ID, volume.ID)
			findings = append(findings, models.Finding{
				ID:             fmt.Sprintf("%s-%s", r.ID(), resource),
				RuleID:         r.ID(),
				ResourceID:     resource,
				ResourceType:   models.ResourceEBSVolume,
				Region:         ctx.Network.Region,
				AccountID:      ctx.AccountID,
				Profile:        ctx.Profile,
				Severity:       models.SeverityHigh,
				Explanation:    "EBS volume is not encrypted.",
				Recommendation: "Snapshot the volume, copy the snapshot with encryption enabled, and swap the encrypted copy in.",
				DetectedAt:     time.Now().UTC(),
				Metadata: map[string]any{
					"instance_id": instance.ID,
					"volume_id":   volume.ID,
				},
			})
		}
	}
	return findings
}
