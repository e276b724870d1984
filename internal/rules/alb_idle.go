package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
)

// ALBIdleRule flags application load balancers that served at most max_requests
// (default 0) requests over the metric window.
type ALBIdleRule struct{}

func (r ALBIdleRule) ID() string      { return "ALB_IDLE" }
func (r ALBIdleRule) Name() string    { return "Idle Application Load Balancer" }
func (r ALBIdleRule) Service() string { return "elb" }

// Evaluate returns one LOW finding per idle ALB. Load balancers without
// request metrics are skipped rather than assumed idle.
func (r ALBIdleRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	maxRequests := policy.GetThreshold(r.ID(), "max_requests", 0, ctx.Policy)
	var findings []models.Finding
	for _, lb := range ctx.Network.LoadBalancers {
		if lb.Type != "application" || lb.RequestCount == nil {
			continue
		}
		if *lb.RequestCount > maxRequests {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), lb.Name),
			RuleID:         r.ID(),
			ResourceID:     lb.Name,
			ResourceType:   models.ResourceLoadBalancer,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityLow,
			Explanation:    "Application Load Balancer has received no traffic over the evaluation period.",
			Recommendation: "Delete the load balancer if its targets are gone, or point health checks at it to confirm it still serves a purpose.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"arn":           lb.ARN,
				"request_count": *lb.RequestCount,
			},
		})
	}
	return findings
}
