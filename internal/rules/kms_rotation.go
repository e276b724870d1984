package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// KMSRotationDisabledRule flags customer-managed keys with automatic key
// rotation switched off. Keys whose rotation status could not be read are
// skipped rather than guessed at.
type KMSRotationDisabledRule struct{}

func (r KMSRotationDisabledRule) ID() string      { return "KMS_ROTATION_DISABLED" }
func (r KMSRotationDisabledRule) Name() string    { return "KMS Key Rotation Disabled" }
func (r KMSRotationDisabledRule) Service() string { return "kms" }

// Evaluate returns one MEDIUM finding per key with rotation disabled. Keys
// are labeled "alias (id)" when an alias exists.
func (r KMSRotationDisabledRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, key := range ctx.Account.KMSKeys {
		if !key.RotationKnown || key.RotationEnabled {
			continue
		}
		resource := key.ID
		if key.Alias != "" {
			resource = fmt.Sprintf("%s (%s)", key.Alias, key.ID)
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), key.ID),
			RuleID:         r.ID(),
			ResourceID:     resource,
			ResourceType:   models.ResourceKMSKey,
			Region:         "global",
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityMedium,
			Explanation:    "Automatic key rotation is disabled.",
			Recommendation: "Enable yearly automatic rotation on the key.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"key_id": key.ID,
				"alias":  key.Alias,
			},
		})
	}
	return findings
}
