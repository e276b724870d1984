package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
	"github.com/pankaj-dahiya-devops/netscope/internal/rules"
)

// domainEngine abstracts a single-domain audit engine. Storing the fields as
// interfaces decouples AllEngine from the concrete implementations and allows
// stub injection in tests.
type domainEngine interface {
	RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error)
}

// AllEngine implements Engine for AuditTypeAll: a unified audit across the
// network and account domains.
//
// Each domain engine applies its own per-domain policy filtering internally.
// AllEngine concatenates the filtered findings as-is; findings never refer to
// the same resource across domains, so there is no cross-domain merge. The
// global sort produces a single unified report.
type AllEngine struct {
	network domainEngine
	account domainEngine
}

// NewAllEngine constructs an AllEngine wired to the two domain engines.
func NewAllEngine(network *NetworkEngine, account *AccountEngine) *AllEngine {
	return &AllEngine{
		network: network,
		account: account,
	}
}

// RunAudit implements Engine. Only AuditTypeAll is accepted.
// The network and account engines run sequentially; either failing fails the
// whole audit.
func (e *AllEngine) RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error) {
	if opts.AuditType != AuditTypeAll {
		return nil, fmt.Errorf("unsupported audit type: %q", opts.AuditType)
	}

	netReport, err := e.network.RunAudit(ctx, AuditOptions{
		AuditType:   AuditTypeNetwork,
		Profile:     opts.Profile,
		AllProfiles: opts.AllProfiles,
		Regions:     opts.Regions,
		Services:    opts.Services,
	})
	if err != nil {
		return nil, fmt.Errorf("network audit: %w", err)
	}

	acctReport, err := e.account.RunAudit(ctx, AuditOptions{
		AuditType:   AuditTypeAccount,
		Profile:     opts.Profile,
		AllProfiles: opts.AllProfiles,
		Regions:     opts.Regions,
		Services:    opts.Services,
	})
	if err != nil {
		return nil, fmt.Errorf("account audit: %w", err)
	}

	var all []models.Finding
	all = append(all, netReport.Findings...)
	all = append(all, acctReport.Findings...)
	rules.SortFindings(all)

	var inventory []models.InventoryItem
	inventory = append(inventory, netReport.Inventory...)
	inventory = append(inventory, acctReport.Inventory...)

	// Deduplicate the region list across both domain reports.
	seen := make(map[string]struct{})
	var regions []string
	for _, r := range append(append([]string{}, netReport.Regions...), acctReport.Regions...) {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			regions = append(regions, r)
		}
	}

	return &models.AuditReport{
		ReportID:    fmt.Sprintf("all-%d", time.Now().UnixNano()),
		GeneratedAt: time.Now().UTC(),
		AuditType:   string(AuditTypeAll),
		Profile:     netReport.Profile,
		AccountID:   netReport.AccountID,
		Regions:     regions,
		Summary:     computeSummary(all),
		Findings:    all,
		Inventory:   inventory,
	}, nil
}

// auditDomains lists the policy domains in report order.
var auditDomains = []string{"network", "account"}

// EnforcedDomains returns the domains whose fail_on_severity enforcement
// threshold is met by the report's findings. Findings are grouped by their
// stamped Domain, so the check works on single-domain and unified reports
// alike. Callers must exit non-zero when the returned slice is non-empty.
func EnforcedDomains(findings []models.Finding, cfg *policy.PolicyConfig) []string {
	if cfg == nil {
		return nil
	}
	var enforced []string
	for _, domain := range auditDomains {
		var domainFindings []models.Finding
		for _, f := range findings {
			if f.Domain == domain {
				domainFindings = append(domainFindings, f)
			}
		}
		if policy.ShouldFail(domain, domainFindings, cfg) {
			enforced = append(enforced, domain)
		}
	}
	return enforced
}
