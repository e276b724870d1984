package globalsvc

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	smsvc "github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildSecretsSummary lists Secrets Manager secret names. Only names are
// shown; secret values are never fetched.
func buildSecretsSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := smsvc.NewListSecretsPaginator(src.Secrets, &smsvc.ListSecretsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list secrets: %w", err)
		}
		for _, secret := range page.SecretList {
			if name := aws.ToString(secret.Name); name != "" {
				lines = append(lines, name)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "AWS Secrets Manager",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#fce7f3",
		FontColor: "#9d174d",
	}, nil
}
