package account

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cloudtrailsvc "github.com/aws/aws-sdk-go-v2/service/cloudtrail"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectCloudTrailStatus calls DescribeTrails to determine whether at least
// one multi-region trail exists for the account. IncludeShadowTrails is false
// so only trails owned by this account are returned (not shadow copies).
//
// Returns HasMultiRegionTrail == false on error (conservative: treat as not configured).
func collectCloudTrailStatus(ctx context.Context, client cloudTrailAPIClient) (models.CloudTrailStatus, error) {
	out, err := client.DescribeTrails(ctx, &cloudtrailsvc.DescribeTrailsInput{
		IncludeShadowTrails: aws.Bool(false),
	})
	if err != nil {
		return models.CloudTrailStatus{}, err
	}

	for _, trail := range out.TrailList {
		if aws.ToBool(trail.IsMultiRegionTrail) {
			return models.CloudTrailStatus{HasMultiRegionTrail: true}, nil
		}
	}
	return models.CloudTrailStatus{HasMultiRegionTrail: false}, nil
}
