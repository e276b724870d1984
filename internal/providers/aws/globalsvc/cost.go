package globalsvc

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	ce "github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// costLookbackDays is the Cost Explorer window for the spend panel.
const costLookbackDays = 30

// buildCostSummary shows the account's top services by unblended cost over
// the last 30 days, one "service: $amount" line each, most expensive first.
// Zero-cost services are omitted.
func buildCostSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	start, end := costDateRange(costLookbackDays)

	serviceTotals := make(map[string]float64)

	var nextToken *string
	for {
		out, err := src.Cost.GetCostAndUsage(ctx, &ce.GetCostAndUsageInput{
			TimePeriod: &cetypes.DateInterval{
				Start: aws.String(start),
				End:   aws.String(end),
			},
			Granularity: cetypes.GranularityMonthly,
			Metrics:     []string{"UnblendedCost"},
			GroupBy: []cetypes.GroupDefinition{
				{
					Key:  aws.String("SERVICE"),
					Type: cetypes.GroupDefinitionTypeDimension,
				},
			},
			NextPageToken: nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("GetCostAndUsage: %w", err)
		}

		for _, result := range out.ResultsByTime {
			for _, group := range result.Groups {
				if len(group.Keys) == 0 {
					continue
				}
				metric, ok := group.Metrics["UnblendedCost"]
				if !ok {
					continue
				}
				serviceTotals[group.Keys[0]] += parseCostAmount(metric.Amount)
			}
		}

		if out.NextPageToken == nil {
			break
		}
		nextToken = out.NextPageToken
	}

	type serviceCost struct {
		service string
		cost    float64
	}
	ranked := make([]serviceCost, 0, len(serviceTotals))
	for service, cost := range serviceTotals {
		if cost > 0 {
			ranked = append(ranked, serviceCost{service: service, cost: cost})
		}
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].cost != ranked[j].cost {
			return ranked[i].cost > ranked[j].cost
		}
		return ranked[i].service < ranked[j].service
	})

	lines := make([]string, 0, len(ranked))
	for _, sc := range ranked {
		lines = append(lines, fmt.Sprintf("%s: $%.2f", sc.service, sc.cost))
	}

	return &models.GlobalServiceSummary{
		Title:     "AWS Cost Explorer",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#ecfeff",
		FontColor: "#155e75",
	}, nil
}

// costDateRange returns the [start, end) interval Cost Explorer expects,
// covering the daysBack days up to today in UTC.
func costDateRange(daysBack int) (start, end string) {
	now := time.Now().UTC()
	end = now.Format("2006-01-02")
	start = now.AddDate(0, 0, -daysBack).Format("2006-01-02")
	return start, end
}

// parseCostAmount converts a Cost Explorer metric amount to a float, treating
// missing or malformed amounts as zero.
func parseCostAmount(amount *string) float64 {
	if amount == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(*amount, 64)
	return v
}
