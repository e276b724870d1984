// Package account provides the account-wide audit rule pack: IAM, root
// account, S3, CloudTrail, GuardDuty, AWS Config, KMS, and ACM checks that
// read AccountData rather than a regional network snapshot.
package account

import "github.com/pankaj-dahiya-devops/netscope/internal/rules"

// New returns the default account audit rule pack.
func New() []rules.Rule {
	return []rules.Rule{
		rules.RootAccessKeyRule{},           // CRITICAL: root access keys present
		rules.RootMFADisabledRule{},         // CRITICAL: root account MFA not enabled
		rules.S3PublicBucketRule{},          // HIGH:     S3 bucket publicly accessible
		rules.IAMUserNoMFARule{},            // MEDIUM:   console user has no MFA device
		rules.IAMAccessKeyStaleRule{},       // MEDIUM:   access key past age threshold
		rules.S3EncryptionMissingRule{},     // MEDIUM:   bucket default encryption off
		rules.CloudTrailMultiRegionRule{},   // MEDIUM:   no multi-region CloudTrail trail
		rules.GuardDutyDisabledRule{},       // MEDIUM:   GuardDuty not enabled in region
		rules.ConfigRecorderDisabledRule{},  // MEDIUM:   AWS Config not recording in region
		rules.KMSRotationDisabledRule{},     // MEDIUM:   KMS key rotation disabled
		rules.ACMCertExpiringRule{},         // MEDIUM:   certificate expiring soon
		rules.ACMCertUnusedRule{},           // LOW:      certificate not in use
	}
}
