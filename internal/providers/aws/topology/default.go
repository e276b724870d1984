package topology

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// DefaultNetworkCollector is the production implementation of
// NetworkCollector. It uses AWS SDK v2 to gather every network resource of
// one region into a NetworkSnapshot.
//
// Inject a custom topoClientFactory via NewDefaultNetworkCollectorWithFactory
// to replace real SDK clients with mocks in unit tests.
type DefaultNetworkCollector struct {
	factory topoClientFactory
}

// NewDefaultNetworkCollector returns a collector backed by the real AWS SDK.
func NewDefaultNetworkCollector() *DefaultNetworkCollector {
	return &DefaultNetworkCollector{factory: newDefaultTopoClients}
}

// NewDefaultNetworkCollectorWithFactory returns a collector that uses f to
// create its service clients. Pass a mock factory in tests.
func NewDefaultNetworkCollectorWithFactory(f topoClientFactory) *DefaultNetworkCollector {
	return &DefaultNetworkCollector{factory: f}
}

// metricLookbackDays is the CloudWatch window for NAT bytes-out and ALB
// request-count enrichment.
const metricLookbackDays = 30

// metricWindow returns the [start, end) interval for metric enrichment
// queries: now (UTC) back metricLookbackDays days.
func metricWindow() (start, end time.Time) {
	end = time.Now().UTC()
	start = end.AddDate(0, 0, -metricLookbackDays)
	return
}

// Collect gathers one region's complete network snapshot.
//
// Flow:
//  1. EC2 listings: VPCs, subnets, route tables, NAT gateways, internet
//     gateways, VPC endpoints, peering connections, VPN connections,
//     customer gateways, instances (with volume encryption), security group
//     rules, network ACL entries.
//  2. RDS DB instances and ELBv2 load balancers.
//  3. NAT gateway availability zones are backfilled from their owning
//     subnet; the EC2 API does not report them directly.
//
// Every listing failure is fatal and returned wrapped with the resource and
// region. CloudWatch metric enrichment inside the NAT and load balancer
// collectors is best-effort per resource.
func (d *DefaultNetworkCollector) Collect(
	ctx context.Context,
	cfg aws.Config,
	region string,
) (*models.NetworkSnapshot, error) {
	clients := d.factory(cfg)
	snap := &models.NetworkSnapshot{Region: region}

	var err error

	snap.VPCs, err = collectVPCs(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect VPCs in %s: %w", region, err)
	}

	snap.Subnets, err = collectSubnets(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect subnets in %s: %w", region, err)
	}

	snap.RouteTables, err = collectRouteTables(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect route tables in %s: %w", region, err)
	}

	snap.NATGateways, err = collectNATGateways(ctx, clients.EC2, clients.CW)
	if err != nil {
		return nil, fmt.Errorf("collect NAT gateways in %s: %w", region, err)
	}

	snap.InternetGateways, err = collectInternetGateways(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect internet gateways in %s: %w", region, err)
	}

	snap.VPCEndpoints, err = collectVPCEndpoints(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect VPC endpoints in %s: %w", region, err)
	}

	snap.PeeringConnections, err = collectPeeringConnections(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect VPC peering connections in %s: %w", region, err)
	}

	snap.VPNConnections, err = collectVPNConnections(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect VPN connections in %s: %w", region, err)
	}

	snap.CustomerGateways, err = collectCustomerGateways(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect customer gateways in %s: %w", region, err)
	}

	snap.Instances, err = collectInstances(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect EC2 instances in %s: %w", region, err)
	}

	snap.SecurityGroupRules, err = collectSecurityGroupRules(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect security groups in %s: %w", region, err)
	}

	snap.NetworkACLEntries, err = collectNetworkACLEntries(ctx, clients.EC2)
	if err != nil {
		return nil, fmt.Errorf("collect network ACLs in %s: %w", region, err)
	}

	snap.DBInstances, err = collectDBInstances(ctx, clients.RDS)
	if err != nil {
		return nil, fmt.Errorf("collect RDS instances in %s: %w", region, err)
	}

	snap.LoadBalancers, err = collectLoadBalancers(ctx, clients.ELB, clients.CW)
	if err != nil {
		return nil, fmt.Errorf("collect load balancers in %s: %w", region, err)
	}

	azBySubnet := make(map[string]string, len(snap.Subnets))
	for _, subnet := range snap.Subnets {
		azBySubnet[subnet.ID] = subnet.AvailabilityZone
	}
	for i := range snap.NATGateways {
		snap.NATGateways[i].AvailabilityZone = azBySubnet[snap.NATGateways[i].SubnetID]
	}

	return snap, nil
}
