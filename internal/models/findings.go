package models

import "time"

// Severity represents the impact level of a finding.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// ResourceType identifies the kind of cloud resource a finding refers to.
type ResourceType string

const (
	ResourceEC2Instance     ResourceType = "EC2_INSTANCE"
	ResourceEBSVolume       ResourceType = "EBS_VOLUME"
	ResourceSecurityGroup   ResourceType = "SECURITY_GROUP"
	ResourceNetworkACL      ResourceType = "NETWORK_ACL"
	ResourceSubnet          ResourceType = "SUBNET"
	ResourceRouteTable      ResourceType = "ROUTE_TABLE"
	ResourceNATGateway      ResourceType = "NAT_GATEWAY"
	ResourceVPNConnection   ResourceType = "VPN_CONNECTION"
	ResourcePeering         ResourceType = "VPC_PEERING_CONNECTION"
	ResourceLoadBalancer    ResourceType = "LOAD_BALANCER"
	ResourceRDSInstance     ResourceType = "RDS_INSTANCE"
	ResourceS3Bucket        ResourceType = "S3_BUCKET"
	ResourceIAMUser         ResourceType = "IAM_USER"
	ResourceIAMAccessKey    ResourceType = "IAM_ACCESS_KEY"
	ResourceRootAccount     ResourceType = "ROOT_ACCOUNT"
	ResourceCloudTrail      ResourceType = "CLOUDTRAIL"
	ResourceGuardDuty       ResourceType = "GUARDDUTY_DETECTOR"
	ResourceConfigRecorder  ResourceType = "CONFIG_RECORDER"
	ResourceKMSKey          ResourceType = "KMS_KEY"
	ResourceACMCertificate  ResourceType = "ACM_CERTIFICATE"
)

// Finding is a single detected security or hygiene issue.
// It is the atomic output unit of the rule engine.
type Finding struct {
	ID             string         `json:"id"`
	RuleID         string         `json:"rule_id"`
	ResourceID     string         `json:"resource_id"`
	ResourceType   ResourceType   `json:"resource_type"`
	Region         string         `json:"region"`
	AccountID      string         `json:"account_id"`
	Profile        string         `json:"profile"`
	Domain         string         `json:"domain"`
	Severity       Severity       `json:"severity"`
	Explanation    string         `json:"explanation"`
	Recommendation string         `json:"recommendation"`
	DetectedAt     time.Time      `json:"detected_at"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// InventoryStatus is the compliance state recorded for an audited resource.
type InventoryStatus string

const (
	InventoryCompliant    InventoryStatus = "COMPLIANT"
	InventoryNonCompliant InventoryStatus = "NON_COMPLIANT"
)

// InventoryItem records one audited resource and its compliance state,
// regardless of whether any finding was raised against it. The inventory is
// the "what was checked" companion to the findings list.
type InventoryItem struct {
	Service    string          `json:"service"`
	ResourceID string          `json:"resource_id"`
	Status     InventoryStatus `json:"status"`
	Details    string          `json:"details"`
}

// AuditSummary aggregates counts across all findings in a report.
type AuditSummary struct {
	TotalFindings    int `json:"total_findings"`
	CriticalFindings int `json:"critical_findings"`
	HighFindings     int `json:"high_findings"`
	MediumFindings   int `json:"medium_findings"`
	LowFindings      int `json:"low_findings"`
}

// AuditReport is the top-level output of any audit run.
type AuditReport struct {
	ReportID    string          `json:"report_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	AuditType   string          `json:"audit_type"`
	Profile     string          `json:"profile"`
	AccountID   string          `json:"account_id"`
	Regions     []string        `json:"regions"`
	Summary     AuditSummary    `json:"summary"`
	Findings    []Finding       `json:"findings"`
	Inventory   []InventoryItem `json:"inventory,omitempty"`
}
