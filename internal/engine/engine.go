package engine

import (
	"context"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// AuditType identifies the category of audit to run.
type AuditType string

const (
	AuditTypeNetwork AuditType = "network"
	AuditTypeAccount AuditType = "account"
	AuditTypeAll     AuditType = "all"
)

// ReportFormat controls the CLI output format.
type ReportFormat string

const (
	ReportFormatJSON  ReportFormat = "json"
	ReportFormatTable ReportFormat = "table"
)

// AuditOptions configures a single audit run.
// It is the sole input to Engine.RunAudit.
type AuditOptions struct {
	// AuditType selects the audit domain ("network", "account", or "all").
	AuditType AuditType

	// Profile is the named AWS profile to use. Empty means the default profile.
	Profile string

	// AllProfiles, when true, runs the audit across every configured AWS profile.
	AllProfiles bool

	// Regions is an explicit list of AWS regions to audit.
	// When empty the engine discovers and iterates all active regions.
	Regions []string

	// Services limits the inventory to the selected service keys (lowercase,
	// e.g. "vpc", "iam"). Callers restrict rule evaluation to the same keys
	// by registering a filtered rule set. Empty selects every service.
	Services []string

	// ReportFormat controls how the CLI renders the returned report.
	ReportFormat ReportFormat
}

// Engine is the central orchestration interface.
// It coordinates provider collection, rule evaluation, and report assembly.
//
// Engine must not call AWS SDK clients directly; it delegates to the
// appropriate collector and rule interfaces.
type Engine interface {
	RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error)
}
