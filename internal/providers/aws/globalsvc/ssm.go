package globalsvc

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ssmsvc "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildSSMSummary lists Systems Manager managed instances with their ping
// status and platform, e.g. "i-0abc (Ping: Online; Linux)".
func buildSSMSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string
	paginator := ssmsvc.NewDescribeInstanceInformationPaginator(src.SSM, &ssmsvc.DescribeInstanceInformationInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe managed instances: %w", err)
		}
		for _, instance := range page.InstanceInformationList {
			if label := managedInstanceLabel(instance); label != "" {
				lines = append(lines, label)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "AWS Systems Manager",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#dcfce7",
		FontColor: "#166534",
	}, nil
}

func managedInstanceLabel(instance ssmtypes.InstanceInformation) string {
	instanceID := aws.ToString(instance.InstanceId)
	if instanceID == "" {
		return ""
	}

	var details []string
	if ping := string(instance.PingStatus); ping != "" {
		details = append(details, "Ping: "+ping)
	}
	if platform := string(instance.PlatformType); platform != "" {
		details = append(details, platform)
	}
	if len(details) == 0 {
		return instanceID
	}
	return fmt.Sprintf("%s (%s)", instanceID, strings.Join(details, "; "))
}
