package globalsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	ecssvc "github.com/aws/aws-sdk-go-v2/service/ecs"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildECSSummary lists ECS clusters by the name segment of their ARNs.
func buildECSSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := ecssvc.NewListClustersPaginator(src.ECS, &ecssvc.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list ECS clusters: %w", err)
		}
		for _, arn := range page.ClusterArns {
			if label := ecsClusterLabel(arn); label != "" {
				lines = append(lines, label)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "Amazon ECS",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#fed7aa",
		FontColor: "#7c2d12",
	}, nil
}

// ecsClusterLabel extracts the cluster name from its ARN, trying the final
// path segment first and the final colon segment as a fallback.
func ecsClusterLabel(arn string) string {
	if arn == "" {
		return "Cluster"
	}
	if idx := strings.LastIndex(arn, "/"); idx >= 0 {
		if candidate := arn[idx+1:]; candidate != "" {
			return candidate
		}
	}
	if idx := strings.LastIndex(arn, ":"); idx >= 0 {
		if candidate := arn[idx+1:]; candidate != "" {
			return candidate
		}
	}
	return arn
}
