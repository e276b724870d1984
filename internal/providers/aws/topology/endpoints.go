package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectVPCEndpoints pages through all VPC endpoints in the region.
func collectVPCEndpoints(ctx context.Context, ec2Client topoEC2Client) ([]models.VPCEndpoint, error) {
	paginator := ec2svc.NewDescribeVpcEndpointsPaginator(ec2Client, &ec2svc.DescribeVpcEndpointsInput{})

	var endpoints []models.VPCEndpoint
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcEndpoints page: %w", err)
		}
		for _, ep := range page.VpcEndpoints {
			endpoints = append(endpoints, toVPCEndpoint(ep))
		}
	}
	return endpoints, nil
}

// toVPCEndpoint converts an SDK VPC endpoint to the internal model. SubnetIDs
// is populated for interface endpoints; gateway endpoints attach to route
// tables instead and leave it empty.
func toVPCEndpoint(ep ec2types.VpcEndpoint) models.VPCEndpoint {
	return models.VPCEndpoint{
		ID:          aws.ToString(ep.VpcEndpointId),
		VPCID:       aws.ToString(ep.VpcId),
		Type:        string(ep.VpcEndpointType),
		ServiceName: aws.ToString(ep.ServiceName),
		SubnetIDs:   ep.SubnetIds,
	}
}
