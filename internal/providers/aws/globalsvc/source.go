// Package globalsvc builds the account-wide service panels that sit beside
// the VPC clusters on the diagram: KMS keys, S3 buckets, IAM counts, hosted
// zones, certificates, EKS/ECS clusters, managed instances, secrets, and the
// month's top service spend. Builders live in an explicit registry and are
// invoked independently so one unreachable service never costs the others
// their panel.
package globalsvc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	acmsvc "github.com/aws/aws-sdk-go-v2/service/acm"
	ce "github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ecssvc "github.com/aws/aws-sdk-go-v2/service/ecs"
	ekssvc "github.com/aws/aws-sdk-go-v2/service/eks"
	iamsvc "github.com/aws/aws-sdk-go-v2/service/iam"
	kmssvc "github.com/aws/aws-sdk-go-v2/service/kms"
	route53svc "github.com/aws/aws-sdk-go-v2/service/route53"
	s3svc "github.com/aws/aws-sdk-go-v2/service/s3"
	smsvc "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	ssmsvc "github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ---------------------------------------------------------------------------
// Narrow per-service client interfaces
//
// Each interface covers only the operations its panel builder needs. The
// embedded <Op>APIClient interfaces let the SDK paginators accept the narrow
// type directly.
// ---------------------------------------------------------------------------

// kmsAPI lists keys and their aliases.
type kmsAPI interface {
	kmssvc.ListKeysAPIClient
	kmssvc.ListAliasesAPIClient
}

// s3API lists buckets.
type s3API interface {
	ListBuckets(ctx context.Context, params *s3svc.ListBucketsInput, optFns ...func(*s3svc.Options)) (*s3svc.ListBucketsOutput, error)
}

// iamAPI counts roles, users, groups, and customer-managed policies.
type iamAPI interface {
	iamsvc.ListRolesAPIClient
	iamsvc.ListUsersAPIClient
	iamsvc.ListGroupsAPIClient
	iamsvc.ListPoliciesAPIClient
}

// route53API lists hosted zones.
type route53API interface {
	route53svc.ListHostedZonesAPIClient
}

// acmAPI lists certificates.
type acmAPI interface {
	acmsvc.ListCertificatesAPIClient
}

// eksAPI lists EKS clusters.
type eksAPI interface {
	ekssvc.ListClustersAPIClient
}

// ecsAPI lists ECS clusters.
type ecsAPI interface {
	ecssvc.ListClustersAPIClient
}

// ssmAPI lists Systems Manager managed instances.
type ssmAPI interface {
	ssmsvc.DescribeInstanceInformationAPIClient
}

// secretsAPI lists Secrets Manager secrets.
type secretsAPI interface {
	smsvc.ListSecretsAPIClient
}

// costAPI queries Cost Explorer for the spend breakdown.
type costAPI interface {
	GetCostAndUsage(ctx context.Context, params *ce.GetCostAndUsageInput, optFns ...func(*ce.Options)) (*ce.GetCostAndUsageOutput, error)
}

// ---------------------------------------------------------------------------
// Source and factory
// ---------------------------------------------------------------------------

// Source bundles the service clients the panel builders draw from. Fields
// are interfaces so tests can swap any of them for fakes.
type Source struct {
	KMS     kmsAPI
	S3      s3API
	IAM     iamAPI
	Route53 route53API
	ACM     acmAPI
	EKS     eksAPI
	ECS     ecsAPI
	SSM     ssmAPI
	Secrets secretsAPI
	Cost    costAPI
}

// SourceFactory creates a Source from an aws.Config.
// Swap this in tests to inject fake clients.
type SourceFactory func(cfg aws.Config) *Source

// NewDefaultSource is the production SourceFactory. It constructs real AWS
// SDK clients from cfg. Cost Explorer is always pointed at us-east-1 because
// it is a global service only reachable in that region.
func NewDefaultSource(cfg aws.Config) *Source {
	// Cost Explorer is a global service; it must be called against us-east-1.
	ceCfg := cfg
	ceCfg.Region = "us-east-1"

	return &Source{
		KMS:     kmssvc.NewFromConfig(cfg),
		S3:      s3svc.NewFromConfig(cfg),
		IAM:     iamsvc.NewFromConfig(cfg),
		Route53: route53svc.NewFromConfig(cfg),
		ACM:     acmsvc.NewFromConfig(cfg),
		EKS:     ekssvc.NewFromConfig(cfg),
		ECS:     ecssvc.NewFromConfig(cfg),
		SSM:     ssmsvc.NewFromConfig(cfg),
		Secrets: smsvc.NewFromConfig(cfg),
		Cost:    ce.NewFromConfig(ceCfg),
	}
}
