package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectVPNConnections lists all site-to-site VPN connections in the region
// with their per-tunnel telemetry. The EC2 API returns these in a single
// unpaginated response.
func collectVPNConnections(ctx context.Context, ec2Client topoEC2Client) ([]models.VPNConnection, error) {
	out, err := ec2Client.DescribeVpnConnections(ctx, &ec2svc.DescribeVpnConnectionsInput{})
	if err != nil {
		return nil, fmt.Errorf("DescribeVpnConnections: %w", err)
	}

	var connections []models.VPNConnection
	for _, v := range out.VpnConnections {
		connections = append(connections, toVPNConnection(v))
	}
	return connections, nil
}

// toVPNConnection converts an SDK VPN connection to the internal model.
func toVPNConnection(v ec2types.VpnConnection) models.VPNConnection {
	conn := models.VPNConnection{
		ID:                aws.ToString(v.VpnConnectionId),
		Name:              nameTag(v.Tags),
		VPNGatewayID:      aws.ToString(v.VpnGatewayId),
		CustomerGatewayID: aws.ToString(v.CustomerGatewayId),
		Type:              string(v.Type),
		State:             string(v.State),
	}
	for _, t := range v.VgwTelemetry {
		conn.Telemetry = append(conn.Telemetry, models.VPNTelemetry{
			OutsideIP: aws.ToString(t.OutsideIpAddress),
			Status:    string(t.Status),
		})
	}
	return conn
}

// collectCustomerGateways lists all customer gateways in the region. Like VPN
// connections, the API is unpaginated.
func collectCustomerGateways(ctx context.Context, ec2Client topoEC2Client) ([]models.CustomerGateway, error) {
	out, err := ec2Client.DescribeCustomerGateways(ctx, &ec2svc.DescribeCustomerGatewaysInput{})
	if err != nil {
		return nil, fmt.Errorf("DescribeCustomerGateways: %w", err)
	}

	var gateways []models.CustomerGateway
	for _, cgw := range out.CustomerGateways {
		gateways = append(gateways, models.CustomerGateway{
			ID:        aws.ToString(cgw.CustomerGatewayId),
			IPAddress: aws.ToString(cgw.IpAddress),
		})
	}
	return gateways, nil
}
