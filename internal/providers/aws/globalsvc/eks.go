package globalsvc

import (
	"context"
	"fmt"
	"sort"

	ekssvc "github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildEKSSummary lists EKS cluster names for the global services panel.
func buildEKSSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := ekssvc.NewListClustersPaginator(src.EKS, &ekssvc.ListClustersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list EKS clusters: %w", err)
		}
		for _, name := range page.Clusters {
			if name != "" {
				lines = append(lines, name)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "Amazon EKS",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#bfdbfe",
		FontColor: "#1e3a8a",
	}, nil
}
