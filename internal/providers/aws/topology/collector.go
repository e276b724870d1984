package topology

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// NetworkCollector gathers raw network resource data from a single AWS region
// and converts it into internal models. It must not classify subnets, resolve
// route targets, or apply rules — that is the topology pipeline's and the
// rule engine's job.
//
// All implementations must use the AWS SDK v2 only.
type NetworkCollector interface {
	// Collect gathers every network resource the diagram and the network rule
	// pack consume: VPCs, subnets, route tables, NAT and internet gateways,
	// VPC endpoints, peering connections, VPN connections, customer gateways,
	// EC2 instances, security group rules, network ACL entries, RDS instances,
	// and load balancers.
	//
	// Any listing failure aborts the whole collection and is returned wrapped
	// with the failing resource and region. CloudWatch metric enrichment (NAT
	// bytes out, ALB request count) is best-effort per resource and leaves the
	// metric nil when unavailable.
	Collect(ctx context.Context, cfg aws.Config, region string) (*models.NetworkSnapshot, error)
}
