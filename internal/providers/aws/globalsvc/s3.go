package globalsvc

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3svc "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildS3Summary lists bucket names for the global services panel.
func buildS3Summary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	out, err := src.S3.ListBuckets(ctx, &s3svc.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	var lines []string
	for _, bucket := range out.Buckets {
		if name := aws.ToString(bucket.Name); name != "" {
			lines = append(lines, name)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "Amazon S3",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#fefcbf",
		FontColor: "#744210",
	}, nil
}
