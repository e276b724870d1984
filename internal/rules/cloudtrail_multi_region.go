package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// CloudTrailMultiRegionRule flags accounts with no multi-region trail.
type CloudTrailMultiRegionRule struct{}

func (r CloudTrailMultiRegionRule) ID() string      { return "CLOUDTRAIL_NOT_MULTI_REGION" }
func (r CloudTrailMultiRegionRule) Name() string    { return "No Multi-Region CloudTrail" }
func (r CloudTrailMultiRegionRule) Service() string { return "cloudtrail" }

// Evaluate returns a single MEDIUM finding when no trail covers all regions.
func (r CloudTrailMultiRegionRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	if ctx.Account.CloudTrail.HasMultiRegionTrail {
		return nil
	}
	return []models.Finding{{
		ID:             fmt.Sprintf("%s-%s", r.ID(), ctx.AccountID),
		RuleID:         r.ID(),
		ResourceID:     ctx.AccountID,
		ResourceType:   models.ResourceCloudTrail,
		Region:         "global",
		AccountID:      ctx.AccountID,
		Profile:        ctx.Profile,
		Severity:       models.SeverityMedium,
		Explanation:    "No multi-region CloudTrail trail is configured. API activity in some regions may go unlogged.",
		Recommendation: "Create an organization or account trail with multi-region logging enabled.",
		DetectedAt:     time.Now().UTC(),
	}}
}
