// Package account implements the account posture collector. It gathers IAM
// user and root attributes, S3 bucket settings, CloudTrail configuration,
// per-region GuardDuty and AWS Config status, KMS key rotation state, and
// ACM certificate expiry for the account rule pack.
//
// Canonical data types (IAMUser, S3Bucket, KMSKey, AccountData, ...) are
// defined in internal/models/account.go so they are shared across the engine,
// rules, and provider layers without circular imports.
package account

import (
	"context"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
)

// AccountCollector collects raw account posture data from an AWS account.
// The returned AccountData is account-level (aggregated across all audited
// regions). It is passed to the account rule pack for evaluation.
//
// Implementations must never apply business logic or produce findings.
// Unlike the network collector, every section here is best-effort: a failing
// service leaves its section zero-valued so the rest of the audit completes.
type AccountCollector interface {
	CollectAll(
		ctx context.Context,
		profile *common.ProfileConfig,
		provider common.AWSClientProvider,
		regions []string,
	) (*models.AccountData, error)
}
