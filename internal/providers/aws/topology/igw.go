package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectInternetGateways pages through all internet gateways in the region.
func collectInternetGateways(ctx context.Context, ec2Client topoEC2Client) ([]models.InternetGateway, error) {
	paginator := ec2svc.NewDescribeInternetGatewaysPaginator(ec2Client, &ec2svc.DescribeInternetGatewaysInput{})

	var gateways []models.InternetGateway
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeInternetGateways page: %w", err)
		}
		for _, igw := range page.InternetGateways {
			gateways = append(gateways, toInternetGateway(igw))
		}
	}
	return gateways, nil
}

// toInternetGateway converts an SDK internet gateway to the internal model,
// keeping one attachment record per attached VPC.
func toInternetGateway(igw ec2types.InternetGateway) models.InternetGateway {
	gw := models.InternetGateway{
		ID:   aws.ToString(igw.InternetGatewayId),
		Name: nameTag(igw.Tags),
	}
	for _, att := range igw.Attachments {
		gw.Attachments = append(gw.Attachments, models.IGWAttachment{
			VPCID: aws.ToString(att.VpcId),
			State: string(att.State),
		})
	}
	return gw
}
