package topology

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// ---------------------------------------------------------------------------
// Narrow client interfaces
//
// Each interface lists only the SDK operations used by this package.
// The real *ec2.Client, *rds.Client, etc. satisfy these automatically.
// Replace any field in topoClients with a stub struct in unit tests.
// ---------------------------------------------------------------------------

// topoEC2Client covers the EC2 operations required for network topology
// collection. A single *ec2.Client satisfies every method, which also
// satisfies the per-operation ec2.Describe*APIClient interfaces — enabling
// SDK v2 paginators. DescribeVpnConnections and DescribeCustomerGateways
// have no paginator; the EC2 API returns them in one page.
type topoEC2Client interface {
	DescribeVpcs(
		ctx context.Context,
		params *ec2svc.DescribeVpcsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeVpcsOutput, error)

	DescribeSubnets(
		ctx context.Context,
		params *ec2svc.DescribeSubnetsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeSubnetsOutput, error)

	DescribeRouteTables(
		ctx context.Context,
		params *ec2svc.DescribeRouteTablesInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeRouteTablesOutput, error)

	DescribeNatGateways(
		ctx context.Context,
		params *ec2svc.DescribeNatGatewaysInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeNatGatewaysOutput, error)

	DescribeInternetGateways(
		ctx context.Context,
		params *ec2svc.DescribeInternetGatewaysInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeInternetGatewaysOutput, error)

	DescribeVpcEndpoints(
		ctx context.Context,
		params *ec2svc.DescribeVpcEndpointsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeVpcEndpointsOutput, error)

	DescribeVpcPeeringConnections(
		ctx context.Context,
		params *ec2svc.DescribeVpcPeeringConnectionsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeVpcPeeringConnectionsOutput, error)

	DescribeVpnConnections(
		ctx context.Context,
		params *ec2svc.DescribeVpnConnectionsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeVpnConnectionsOutput, error)

	DescribeCustomerGateways(
		ctx context.Context,
		params *ec2svc.DescribeCustomerGatewaysInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeCustomerGatewaysOutput, error)

	DescribeInstances(
		ctx context.Context,
		params *ec2svc.DescribeInstancesInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeInstancesOutput, error)

	DescribeVolumes(
		ctx context.Context,
		params *ec2svc.DescribeVolumesInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeVolumesOutput, error)

	DescribeSecurityGroups(
		ctx context.Context,
		params *ec2svc.DescribeSecurityGroupsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeSecurityGroupsOutput, error)

	DescribeNetworkAcls(
		ctx context.Context,
		params *ec2svc.DescribeNetworkAclsInput,
		optFns ...func(*ec2svc.Options),
	) (*ec2svc.DescribeNetworkAclsOutput, error)
}

// topoRDSClient covers the RDS operations required for topology collection.
// Satisfies rds.DescribeDBInstancesAPIClient for the SDK v2 paginator.
type topoRDSClient interface {
	DescribeDBInstances(
		ctx context.Context,
		params *rds.DescribeDBInstancesInput,
		optFns ...func(*rds.Options),
	) (*rds.DescribeDBInstancesOutput, error)
}

// topoELBv2Client covers the ELBv2 operations required for topology collection.
// Satisfies elbv2.DescribeLoadBalancersAPIClient for the SDK v2 paginator.
type topoELBv2Client interface {
	DescribeLoadBalancers(
		ctx context.Context,
		params *elbv2.DescribeLoadBalancersInput,
		optFns ...func(*elbv2.Options),
	) (*elbv2.DescribeLoadBalancersOutput, error)
}

// topoCWClient covers the CloudWatch operations required for metric
// enrichment. Metrics are regional; the client must share the collection
// region's aws.Config.
type topoCWClient interface {
	GetMetricStatistics(
		ctx context.Context,
		params *cloudwatch.GetMetricStatisticsInput,
		optFns ...func(*cloudwatch.Options),
	) (*cloudwatch.GetMetricStatisticsOutput, error)
}

// ---------------------------------------------------------------------------
// topoClients and factory
// ---------------------------------------------------------------------------

// topoClients holds all service clients needed for one collection run.
// All fields are interfaces — swap any with a mock in tests.
type topoClients struct {
	EC2 topoEC2Client
	RDS topoRDSClient
	ELB topoELBv2Client
	CW  topoCWClient
}

// topoClientFactory creates a topoClients from an aws.Config.
type topoClientFactory func(cfg aws.Config) *topoClients

// newDefaultTopoClients is the production topoClientFactory.
// All four clients share the regional cfg.
func newDefaultTopoClients(cfg aws.Config) *topoClients {
	return &topoClients{
		EC2: ec2svc.NewFromConfig(cfg),
		RDS: rds.NewFromConfig(cfg),
		ELB: elbv2.NewFromConfig(cfg),
		CW:  cloudwatch.NewFromConfig(cfg),
	}
}
