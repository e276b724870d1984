package models

import "time"

// AccountData holds account-wide posture data collected once per audit run.
// IAM, root, S3, CloudTrail, KMS, and ACM are global or home-region scoped;
// GuardDuty and Config status entries carry their Region so rules can emit
// correctly attributed findings.
type AccountData struct {
	IAMUsers     []IAMUser            `json:"iam_users"`
	Root         RootAccountInfo      `json:"root"`
	Buckets      []S3Bucket           `json:"buckets"`
	CloudTrail   CloudTrailStatus     `json:"cloud_trail"`
	GuardDuty    []GuardDutyStatus    `json:"guard_duty"`
	Config       []ConfigStatus       `json:"config"`
	KMSKeys      []KMSKey             `json:"kms_keys"`
	Certificates []ACMCertificate     `json:"certificates"`
}

// IAMUser represents an IAM user and its relevant security attributes.
// HasLoginProfile is true when the user has a console password (login
// profile). API-only users have HasLoginProfile == false and are not
// flagged for missing MFA.
type IAMUser struct {
	UserName        string         `json:"user_name"`
	MFAEnabled      bool           `json:"mfa_enabled"`
	HasLoginProfile bool           `json:"has_login_profile"`
	AccessKeys      []IAMAccessKey `json:"access_keys,omitempty"`
}

// IAMAccessKey holds the age-relevant attributes of one access key.
type IAMAccessKey struct {
	ID         string    `json:"id"`
	Status     string    `json:"status,omitempty"`
	CreateDate time.Time `json:"create_date"`
}

// RootAccountInfo captures relevant security attributes of the AWS root
// account. DataAvailable is false when GetAccountSummary failed; rules must
// check it before evaluating to avoid false positives on collection failures.
type RootAccountInfo struct {
	HasAccessKeys bool `json:"has_access_keys"`
	MFAEnabled    bool `json:"mfa_enabled"`
	DataAvailable bool `json:"data_available"`
}

// S3Bucket represents an S3 bucket and its security attributes.
// Public is true when the public access block is not fully enabled or the
// bucket policy status reports IsPublic. DefaultEncryptionEnabled is true
// when GetBucketEncryption returns a valid SSE configuration.
type S3Bucket struct {
	Name                     string `json:"name"`
	Public                   bool   `json:"public"`
	DefaultEncryptionEnabled bool   `json:"default_encryption_enabled"`
}

// CloudTrailStatus holds the CloudTrail configuration for the account.
// HasMultiRegionTrail is true when at least one trail records events across
// all regions.
type CloudTrailStatus struct {
	HasMultiRegionTrail bool `json:"has_multi_region_trail"`
}

// GuardDutyStatus holds the GuardDuty detector status for a single region.
type GuardDutyStatus struct {
	Region  string `json:"region"`
	Enabled bool   `json:"enabled"`
}

// ConfigStatus holds the AWS Config recorder status for a single region.
type ConfigStatus struct {
	Region  string `json:"region"`
	Enabled bool   `json:"enabled"`
}

// KMSKey holds the rotation-relevant attributes of a customer-managed key.
// RotationKnown is false when the rotation status could not be read (for
// example an access-denied response); rules skip such keys.
type KMSKey struct {
	ID              string `json:"id"`
	Alias           string `json:"alias,omitempty"`
	State           string `json:"state,omitempty"`
	Manager         string `json:"manager,omitempty"`
	RotationEnabled bool   `json:"rotation_enabled"`
	RotationKnown   bool   `json:"rotation_known"`
}

// ACMCertificate holds the expiry-relevant attributes of a certificate.
type ACMCertificate struct {
	ARN        string    `json:"arn"`
	DomainName string    `json:"domain_name,omitempty"`
	Status     string    `json:"status,omitempty"`
	NotAfter   time.Time `json:"not_after"`
	InUse      bool      `json:"in_use"`
}
