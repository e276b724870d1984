package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/topology"
)

// RouteBlackholeRule flags route table entries in the blackhole state. A
// blackholed route silently drops traffic, usually because its target (a NAT
// gateway, peering connection, or instance) was deleted out from under it.
type RouteBlackholeRule struct{}

func (r RouteBlackholeRule) ID() string      { return "ROUTE_BLACKHOLE" }
func (r RouteBlackholeRule) Name() string    { return "Blackholed Route" }
func (r RouteBlackholeRule) Service() string { return "vpc" }

// Evaluate returns one MEDIUM finding per blackholed route entry.
func (r RouteBlackholeRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for i := range ctx.Network.RouteTables {
		table := &ctx.Network.RouteTables[i]
		summary := topology.Summarize(table)
		if summary == nil {
			continue
		}
		for _, route := range summary.Routes {
			if route.State != "blackhole" {
				continue
			}
			explanation := fmt.Sprintf("Route to %s is blackholed.", route.Destination)
			if route.Target != "" {
				explanation = fmt.Sprintf("Route to %s via %s is blackholed.", route.Destination, route.Target)
			}
			findings = append(findings, models.Finding{
				ID:             fmt.Sprintf("%s-%s-%s", r.ID(), table.ID, route.Destination),
				RuleID:         r.ID(),
				ResourceID:     table.ID,
				ResourceType:   models.ResourceRouteTable,
				Region:         ctx.Network.Region,
				AccountID:      ctx.AccountID,
				Profile:        ctx.Profile,
				Severity:       models.SeverityMedium,
				Explanation:    explanation,
				Recommendation: "Remove the route or recreate its target; blackholed entries drop matching traffic without logging.",
				DetectedAt:     time.Now().UTC(),
				Metadata: map[string]any{
					"destination": route.Destination,
					"target":      route.Target,
				},
			})
		}
	}
	return findings
}
