package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectPeeringConnections pages through all VPC peering connections in the
// region, keeping both sides' VPC info and CIDR sets for the diagram's
// peering panels.
func collectPeeringConnections(ctx context.Context, ec2Client topoEC2Client) ([]models.VPCPeeringConnection, error) {
	paginator := ec2svc.NewDescribeVpcPeeringConnectionsPaginator(
		ec2Client, &ec2svc.DescribeVpcPeeringConnectionsInput{})

	var connections []models.VPCPeeringConnection
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcPeeringConnections page: %w", err)
		}
		for _, conn := range page.VpcPeeringConnections {
			connections = append(connections, toPeeringConnection(conn))
		}
	}
	return connections, nil
}

// toPeeringConnection converts an SDK peering connection to the internal model.
func toPeeringConnection(conn ec2types.VpcPeeringConnection) models.VPCPeeringConnection {
	pc := models.VPCPeeringConnection{
		ID:        aws.ToString(conn.VpcPeeringConnectionId),
		Name:      nameTag(conn.Tags),
		Requester: toPeeringVPCInfo(conn.RequesterVpcInfo),
		Accepter:  toPeeringVPCInfo(conn.AccepterVpcInfo),
	}
	if conn.Status != nil {
		pc.StatusCode = string(conn.Status.Code)
		pc.StatusMessage = aws.ToString(conn.Status.Message)
	}
	return pc
}

// toPeeringVPCInfo converts one side of a peering connection, merging the
// primary CIDR with the IPv4 and IPv6 CIDR sets in order without duplicates.
func toPeeringVPCInfo(info *ec2types.VpcPeeringConnectionVpcInfo) models.PeeringVPCInfo {
	if info == nil {
		return models.PeeringVPCInfo{}
	}

	var cidrs []string
	seen := make(map[string]struct{})
	add := func(cidr string) {
		if cidr == "" {
			return
		}
		if _, ok := seen[cidr]; ok {
			return
		}
		seen[cidr] = struct{}{}
		cidrs = append(cidrs, cidr)
	}

	add(aws.ToString(info.CidrBlock))
	for _, block := range info.CidrBlockSet {
		add(aws.ToString(block.CidrBlock))
	}
	for _, block := range info.Ipv6CidrBlockSet {
		add(aws.ToString(block.Ipv6CidrBlock))
	}

	return models.PeeringVPCInfo{
		VPCID:   aws.ToString(info.VpcId),
		OwnerID: aws.ToString(info.OwnerId),
		Region:  aws.ToString(info.Region),
		CIDRs:   cidrs,
	}
}
