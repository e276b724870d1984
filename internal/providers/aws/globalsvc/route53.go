package globalsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	route53svc "github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildRoute53Summary lists hosted zones as "name (zoneID)". The trailing
// dot on zone names and the "/hostedzone/" prefix on IDs are stripped.
func buildRoute53Summary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := route53svc.NewListHostedZonesPaginator(src.Route53, &route53svc.ListHostedZonesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}
		for _, zone := range page.HostedZones {
			name := strings.TrimSuffix(aws.ToString(zone.Name), ".")
			id := hostedZoneID(aws.ToString(zone.Id))
			switch {
			case name != "" && id != "":
				lines = append(lines, fmt.Sprintf("%s (%s)", name, id))
			case name != "":
				lines = append(lines, name)
			case id != "":
				lines = append(lines, id)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "Amazon Route 53",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#e9d8fd",
		FontColor: "#44337a",
	}, nil
}

// hostedZoneID strips the "/hostedzone/" path prefix the API puts on zone
// IDs.
func hostedZoneID(raw string) string {
	if idx := strings.LastIndex(raw, "/"); idx >= 0 {
		return raw[idx+1:]
	}
	return raw
}
