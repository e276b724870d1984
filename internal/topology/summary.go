package topology

import (
	"fmt"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// prettyTargetNames supplies display names for target types that carry no
// natural description of their own.
var prettyTargetNames = map[models.TargetType]string{
	models.TargetTransitGateway:   "Transit Gateway",
	models.TargetPeering:          "VPC Peering",
	models.TargetVirtualPrivateGW: "Virtual Private Gateway",
	models.TargetCarrierGateway:   "Carrier Gateway",
	models.TargetLocalGateway:     "Local Gateway",
}

// Summarize reduces a route table to its display-worthy routes. Entries
// without a destination are skipped. Resolved targets are always kept;
// targetless entries survive only when their state is not "active" (a
// blackhole route is worth showing) and then carry the state as their
// description. Plain local routes are dropped.
func Summarize(table *models.RouteTable) *models.RouteSummary {
	if table == nil {
		return nil
	}

	var details []models.RouteDetail
	for _, route := range table.Routes {
		dest := route.Destination()
		if dest == "" {
			continue
		}
		target, targetType, desc := ResolveTarget(route)
		if target == "" && desc == "" {
			if route.State == "" || strings.EqualFold(route.State, "active") {
				continue
			}
			desc = route.State
		}
		if desc == "" {
			if pretty, ok := prettyTargetNames[targetType]; ok {
				desc = fmt.Sprintf("%s (%s)", pretty, target)
			}
		}
		details = append(details, models.RouteDetail{
			Destination: dest,
			Target:      target,
			TargetType:  targetType,
			State:       route.State,
			Description: desc,
		})
	}

	return &models.RouteSummary{
		RouteTableID: table.ID,
		Name:         table.Name,
		Routes:       details,
	}
}

// SummarizeInstances projects instances onto their display form, keeping
// the collector's order.
func SummarizeInstances(instances []models.Instance) []models.InstanceSummary {
	if len(instances) == 0 {
		return nil
	}
	summaries := make([]models.InstanceSummary, len(instances))
	for i, instance := range instances {
		summaries[i] = models.InstanceSummary{
			InstanceID: instance.ID,
			Name:       instance.Name,
			State:      instance.State,
			PrivateIP:  instance.PrivateIP,
		}
	}
	return summaries
}
