package account

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	acmsvc "github.com/aws/aws-sdk-go-v2/service/acm"
	cloudtrailsvc "github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	configsvc "github.com/aws/aws-sdk-go-v2/service/configservice"
	guardduty "github.com/aws/aws-sdk-go-v2/service/guardduty"
	iamsvc "github.com/aws/aws-sdk-go-v2/service/iam"
	kmssvc "github.com/aws/aws-sdk-go-v2/service/kms"
	s3svc "github.com/aws/aws-sdk-go-v2/service/s3"
)

// iamAPIClient is the narrow IAM interface used for user and account-level
// posture data. It embeds ListUsersAPIClient so the SDK paginator can be
// used directly.
type iamAPIClient interface {
	iamsvc.ListUsersAPIClient
	ListMFADevices(ctx context.Context, params *iamsvc.ListMFADevicesInput, optFns ...func(*iamsvc.Options)) (*iamsvc.ListMFADevicesOutput, error)
	GetLoginProfile(ctx context.Context, params *iamsvc.GetLoginProfileInput, optFns ...func(*iamsvc.Options)) (*iamsvc.GetLoginProfileOutput, error)
	ListAccessKeys(ctx context.Context, params *iamsvc.ListAccessKeysInput, optFns ...func(*iamsvc.Options)) (*iamsvc.ListAccessKeysOutput, error)
	GetAccountSummary(ctx context.Context, params *iamsvc.GetAccountSummaryInput, optFns ...func(*iamsvc.Options)) (*iamsvc.GetAccountSummaryOutput, error)
}

// s3APIClient is the narrow S3 interface used by the account collector.
// It covers bucket listing plus the three per-bucket posture probes: policy
// status, public access block, and default encryption.
type s3APIClient interface {
	ListBuckets(ctx context.Context, params *s3svc.ListBucketsInput, optFns ...func(*s3svc.Options)) (*s3svc.ListBucketsOutput, error)
	GetBucketPolicyStatus(ctx context.Context, params *s3svc.GetBucketPolicyStatusInput, optFns ...func(*s3svc.Options)) (*s3svc.GetBucketPolicyStatusOutput, error)
	GetPublicAccessBlock(ctx context.Context, params *s3svc.GetPublicAccessBlockInput, optFns ...func(*s3svc.Options)) (*s3svc.GetPublicAccessBlockOutput, error)
	GetBucketEncryption(ctx context.Context, params *s3svc.GetBucketEncryptionInput, optFns ...func(*s3svc.Options)) (*s3svc.GetBucketEncryptionOutput, error)
}

// cloudTrailAPIClient is the narrow CloudTrail interface for checking trail
// configuration. DescribeTrails returns all trails for the account.
type cloudTrailAPIClient interface {
	DescribeTrails(ctx context.Context, params *cloudtrailsvc.DescribeTrailsInput, optFns ...func(*cloudtrailsvc.Options)) (*cloudtrailsvc.DescribeTrailsOutput, error)
}

// guardDutyAPIClient is the narrow GuardDuty interface for checking detector
// status. ListDetectors returns detector IDs; GetDetector returns the status.
type guardDutyAPIClient interface {
	ListDetectors(ctx context.Context, params *guardduty.ListDetectorsInput, optFns ...func(*guardduty.Options)) (*guardduty.ListDetectorsOutput, error)
	GetDetector(ctx context.Context, params *guardduty.GetDetectorInput, optFns ...func(*guardduty.Options)) (*guardduty.GetDetectorOutput, error)
}

// awsConfigAPIClient is the narrow AWS Config interface for checking recorder
// status. DescribeConfigurationRecorderStatus returns recording state per recorder.
type awsConfigAPIClient interface {
	DescribeConfigurationRecorderStatus(ctx context.Context, params *configsvc.DescribeConfigurationRecorderStatusInput, optFns ...func(*configsvc.Options)) (*configsvc.DescribeConfigurationRecorderStatusOutput, error)
}

// kmsAPIClient is the narrow KMS interface for key posture collection.
// The embedded APIClient interfaces cover the ListKeys and ListAliases
// paginators; DescribeKey and GetKeyRotationStatus are per-key probes.
type kmsAPIClient interface {
	kmssvc.ListKeysAPIClient
	kmssvc.ListAliasesAPIClient
	DescribeKey(ctx context.Context, params *kmssvc.DescribeKeyInput, optFns ...func(*kmssvc.Options)) (*kmssvc.DescribeKeyOutput, error)
	GetKeyRotationStatus(ctx context.Context, params *kmssvc.GetKeyRotationStatusInput, optFns ...func(*kmssvc.Options)) (*kmssvc.GetKeyRotationStatusOutput, error)
}

// acmAPIClient is the narrow ACM interface for certificate posture collection.
type acmAPIClient interface {
	acmsvc.ListCertificatesAPIClient
	DescribeCertificate(ctx context.Context, params *acmsvc.DescribeCertificateInput, optFns ...func(*acmsvc.Options)) (*acmsvc.DescribeCertificateOutput, error)
}

// accountClients bundles all AWS service clients used by the account collector.
type accountClients struct {
	IAM        iamAPIClient
	S3         s3APIClient
	CloudTrail cloudTrailAPIClient
	GuardDuty  guardDutyAPIClient
	Config     awsConfigAPIClient
	KMS        kmsAPIClient
	ACM        acmAPIClient
}

// accountClientFactory creates accountClients from an AWS config.
// Injection point: tests replace this with a function returning fake clients.
type accountClientFactory func(cfg aws.Config) *accountClients

// newDefaultAccountClients creates production AWS SDK clients from the given config.
func newDefaultAccountClients(cfg aws.Config) *accountClients {
	return &accountClients{
		IAM:        iamsvc.NewFromConfig(cfg),
		S3:         s3svc.NewFromConfig(cfg),
		CloudTrail: cloudtrailsvc.NewFromConfig(cfg),
		GuardDuty:  guardduty.NewFromConfig(cfg),
		Config:     configsvc.NewFromConfig(cfg),
		KMS:        kmssvc.NewFromConfig(cfg),
		ACM:        acmsvc.NewFromConfig(cfg),
	}
}
