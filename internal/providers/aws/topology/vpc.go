package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectVPCs pages through all VPCs in the region and converts them to
// internal models, including every associated IPv4 and IPv6 CIDR block.
func collectVPCs(ctx context.Context, ec2Client topoEC2Client) ([]models.VPC, error) {
	paginator := ec2svc.NewDescribeVpcsPaginator(ec2Client, &ec2svc.DescribeVpcsInput{})

	var vpcs []models.VPC
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeVpcs page: %w", err)
		}
		for _, v := range page.Vpcs {
			vpcs = append(vpcs, toVPC(v))
		}
	}
	return vpcs, nil
}

// toVPC converts an SDK VPC to the internal model. Secondary CIDR
// associations are kept only while in the associated state.
func toVPC(v ec2types.Vpc) models.VPC {
	var cidrs []string
	for _, assoc := range v.CidrBlockAssociationSet {
		if assoc.CidrBlockState != nil && assoc.CidrBlockState.State != ec2types.VpcCidrBlockStateCodeAssociated {
			continue
		}
		if cidr := aws.ToString(assoc.CidrBlock); cidr != "" {
			cidrs = append(cidrs, cidr)
		}
	}

	var ipv6CIDRs []string
	for _, assoc := range v.Ipv6CidrBlockAssociationSet {
		if assoc.Ipv6CidrBlockState != nil && assoc.Ipv6CidrBlockState.State != ec2types.VpcCidrBlockStateCodeAssociated {
			continue
		}
		if cidr := aws.ToString(assoc.Ipv6CidrBlock); cidr != "" {
			ipv6CIDRs = append(ipv6CIDRs, cidr)
		}
	}

	return models.VPC{
		ID:             aws.ToString(v.VpcId),
		Name:           nameTag(v.Tags),
		CIDRBlock:      aws.ToString(v.CidrBlock),
		CIDRBlocks:     cidrs,
		IPv6CIDRBlocks: ipv6CIDRs,
		DHCPOptionsID:  aws.ToString(v.DhcpOptionsId),
		IsDefault:      aws.ToBool(v.IsDefault),
	}
}

// collectSubnets pages through all subnets in the region.
func collectSubnets(ctx context.Context, ec2Client topoEC2Client) ([]models.Subnet, error) {
	paginator := ec2svc.NewDescribeSubnetsPaginator(ec2Client, &ec2svc.DescribeSubnetsInput{})

	var subnets []models.Subnet
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeSubnets page: %w", err)
		}
		for _, s := range page.Subnets {
			subnets = append(subnets, toSubnet(s))
		}
	}
	return subnets, nil
}

// toSubnet converts an SDK subnet to the internal model.
func toSubnet(s ec2types.Subnet) models.Subnet {
	return models.Subnet{
		ID:                  aws.ToString(s.SubnetId),
		VPCID:               aws.ToString(s.VpcId),
		Name:                nameTag(s.Tags),
		CIDRBlock:           aws.ToString(s.CidrBlock),
		AvailabilityZone:    aws.ToString(s.AvailabilityZone),
		MapPublicIPOnLaunch: aws.ToBool(s.MapPublicIpOnLaunch),
	}
}

// collectRouteTables pages through all route tables in the region, carrying
// each table's routes, main flag, and explicit subnet associations.
func collectRouteTables(ctx context.Context, ec2Client topoEC2Client) ([]models.RouteTable, error) {
	paginator := ec2svc.NewDescribeRouteTablesPaginator(ec2Client, &ec2svc.DescribeRouteTablesInput{})

	var tables []models.RouteTable
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeRouteTables page: %w", err)
		}
		for _, rt := range page.RouteTables {
			tables = append(tables, toRouteTable(rt))
		}
	}
	return tables, nil
}

// toRouteTable converts an SDK route table to the internal model.
func toRouteTable(rt ec2types.RouteTable) models.RouteTable {
	table := models.RouteTable{
		ID:    aws.ToString(rt.RouteTableId),
		VPCID: aws.ToString(rt.VpcId),
		Name:  nameTag(rt.Tags),
	}

	for _, assoc := range rt.Associations {
		if aws.ToBool(assoc.Main) {
			table.Main = true
		}
		if subnetID := aws.ToString(assoc.SubnetId); subnetID != "" {
			table.SubnetIDs = append(table.SubnetIDs, subnetID)
		}
	}

	for _, r := range rt.Routes {
		table.Routes = append(table.Routes, toRoute(r))
	}

	return table
}

// toRoute converts an SDK route entry to the internal model, preserving every
// target-bearing field so the target resolver can apply its precedence.
func toRoute(r ec2types.Route) models.Route {
	return models.Route{
		DestinationCIDR:     aws.ToString(r.DestinationCidrBlock),
		DestinationIPv6CIDR: aws.ToString(r.DestinationIpv6CidrBlock),
		State:               string(r.State),

		NATGatewayID:           aws.ToString(r.NatGatewayId),
		TransitGatewayID:       aws.ToString(r.TransitGatewayId),
		VPCPeeringConnectionID: aws.ToString(r.VpcPeeringConnectionId),
		EgressOnlyIGWID:        aws.ToString(r.EgressOnlyInternetGatewayId),
		GatewayID:              aws.ToString(r.GatewayId),
		InstanceID:             aws.ToString(r.InstanceId),
		NetworkInterfaceID:     aws.ToString(r.NetworkInterfaceId),
		CarrierGatewayID:       aws.ToString(r.CarrierGatewayId),
		LocalGatewayID:         aws.ToString(r.LocalGatewayId),
	}
}

// nameTag returns the value of the Name tag, or "" when absent.
func nameTag(tags []ec2types.Tag) string {
	for _, t := range tags {
		if aws.ToString(t.Key) == "Name" {
			return aws.ToString(t.Value)
		}
	}
	return ""
}
