package account

import (
	"context"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
)

// DefaultAccountCollector is the production AccountCollector.
// It collects IAM, root account, S3, and CloudTrail data from us-east-1
// (global AWS services), KMS keys and ACM certificates from the profile's
// home region, and aggregates GuardDuty and AWS Config status across all
// audited regions.
type DefaultAccountCollector struct {
	factory accountClientFactory
}

// NewDefaultAccountCollector returns a DefaultAccountCollector wired to
// production AWS SDK clients.
func NewDefaultAccountCollector() *DefaultAccountCollector {
	return &DefaultAccountCollector{factory: newDefaultAccountClients}
}

// NewDefaultAccountCollectorWithFactory returns a DefaultAccountCollector
// that uses the supplied factory, allowing tests to inject fake clients.
func NewDefaultAccountCollectorWithFactory(f accountClientFactory) *DefaultAccountCollector {
	return &DefaultAccountCollector{factory: f}
}

// CollectAll gathers account posture data for the given profile and regions.
// Global resources (IAM, root, S3, CloudTrail) are collected once using a
// us-east-1 config; KMS and ACM are regional services and use the profile's
// home region. GuardDuty detector status and AWS Config recorder status are
// collected per region and aggregated.
// All collection failures are silently skipped (non-fatal).
func (c *DefaultAccountCollector) CollectAll(
	ctx context.Context,
	profile *common.ProfileConfig,
	provider common.AWSClientProvider,
	regions []string,
) (*models.AccountData, error) {
	// Global clients: us-east-1 is the canonical region for IAM, S3, and CloudTrail.
	globalCfg := provider.ConfigForRegion(profile, "us-east-1")
	globalClients := c.factory(globalCfg)

	iamUsers, _ := collectIAMUsers(ctx, globalClients.IAM)
	root, _ := collectRootAccountInfo(ctx, globalClients.IAM)
	buckets, _ := collectBuckets(ctx, globalClients.S3)
	cloudTrail, _ := collectCloudTrailStatus(ctx, globalClients.CloudTrail)

	// KMS and ACM are audited in the profile's home region.
	homeCfg := provider.ConfigForRegion(profile, profile.Region)
	homeClients := c.factory(homeCfg)

	kmsKeys, _ := collectKMSKeys(ctx, homeClients.KMS)
	certificates, _ := collectCertificates(ctx, homeClients.ACM)

	// Regional: collect GuardDuty and Config status per region.
	var allGuardDuty []models.GuardDutyStatus
	var allConfig []models.ConfigStatus

	for _, region := range regions {
		regCfg := provider.ConfigForRegion(profile, region)
		regClients := c.factory(regCfg)

		// GuardDuty detector status — non-fatal.
		gdStatus, _ := collectGuardDutyStatus(ctx, regClients.GuardDuty, region)
		allGuardDuty = append(allGuardDuty, gdStatus)

		// AWS Config recorder status — non-fatal.
		cfgStatus, _ := collectConfigStatus(ctx, regClients.Config, region)
		allConfig = append(allConfig, cfgStatus)
	}

	return &models.AccountData{
		IAMUsers:     iamUsers,
		Root:         root,
		Buckets:      buckets,
		CloudTrail:   cloudTrail,
		GuardDuty:    allGuardDuty,
		Config:       allConfig,
		KMSKeys:      kmsKeys,
		Certificates: certificates,
	}, nil
}
