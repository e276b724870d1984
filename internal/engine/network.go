package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/topology"
	"github.com/pankaj-dahiya-devops/netscope/internal/rules"
)

// NetworkEngine implements Engine for AuditTypeNetwork.
// It collects one network snapshot per audited region, evaluates the network
// rule pack against each, and assembles the findings plus a per-resource
// inventory. It never calls the AWS SDK directly; all collection is delegated
// to the NetworkCollector.
type NetworkEngine struct {
	provider  common.AWSClientProvider
	collector topology.NetworkCollector
	registry  rules.RuleRegistry
	policy    *policy.PolicyConfig
}

// NewNetworkEngine constructs a NetworkEngine wired to the supplied provider,
// network collector, and rule registry.
func NewNetworkEngine(
	provider common.AWSClientProvider,
	collector topology.NetworkCollector,
	registry rules.RuleRegistry,
	policyCfg *policy.PolicyConfig,
) *NetworkEngine {
	return &NetworkEngine{
		provider:  provider,
		collector: collector,
		registry:  registry,
		policy:    policyCfg,
	}
}

// RunAudit implements Engine. Only AuditTypeNetwork is accepted.
func (e *NetworkEngine) RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error) {
	if opts.AuditType != AuditTypeNetwork {
		return nil, fmt.Errorf("unsupported audit type: %q", opts.AuditType)
	}
	if opts.AllProfiles {
		return e.runAllProfilesNet(ctx, opts)
	}
	return e.runSingleProfileNet(ctx, opts)
}

// runSingleProfileNet executes a network audit for one AWS profile.
func (e *NetworkEngine) runSingleProfileNet(
	ctx context.Context,
	opts AuditOptions,
) (*models.AuditReport, error) {
	profile, err := e.provider.LoadProfile(ctx, opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", opts.Profile, err)
	}

	regions, err := e.resolveRegionsNet(ctx, profile, opts.Regions)
	if err != nil {
		return nil, fmt.Errorf("resolve regions for profile %q: %w", profile.ProfileName, err)
	}

	snapshots, err := e.collectRegions(ctx, profile, regions)
	if err != nil {
		return nil, err
	}

	findings := e.evaluateNetwork(snapshots, profile.AccountID, profile.ProfileName)
	return e.buildNetworkReport(profile.ProfileName, profile.AccountID, regions, snapshots, findings, opts.Services), nil
}

// runAllProfilesNet runs a network audit across every configured AWS profile
// and merges findings into a single report. Profile failures are skipped
// non-fatally; an error is returned only when no profile can be audited.
func (e *NetworkEngine) runAllProfilesNet(
	ctx context.Context,
	opts AuditOptions,
) (*models.AuditReport, error) {
	profiles, err := e.provider.LoadAllProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load all profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no AWS profiles found")
	}

	var (
		allFindings  []models.Finding
		allSnapshots []*models.NetworkSnapshot
		allRegions   []string
		seenRegions  = make(map[string]struct{})
		audited      int
	)

	for _, profile := range profiles {
		regions, err := e.resolveRegionsNet(ctx, profile, opts.Regions)
		if err != nil {
			continue
		}
		snapshots, err := e.collectRegions(ctx, profile, regions)
		if err != nil {
			continue
		}
		audited++
		allFindings = append(allFindings, e.evaluateNetwork(snapshots, profile.AccountID, profile.ProfileName)...)
		allSnapshots = append(allSnapshots, snapshots...)
		for _, r := range regions {
			if _, seen := seenRegions[r]; !seen {
				seenRegions[r] = struct{}{}
				allRegions = append(allRegions, r)
			}
		}
	}

	if audited == 0 {
		return nil, fmt.Errorf("all profiles failed; no network data collected")
	}
	return e.buildNetworkReport("multi", "", allRegions, allSnapshots, allFindings, opts.Services), nil
}

// resolveRegionsNet returns the explicit region list or discovers active regions.
func (e *NetworkEngine) resolveRegionsNet(
	ctx context.Context,
	profile *common.ProfileConfig,
	explicit []string,
) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	return e.provider.GetActiveRegions(ctx, profile)
}

// collectRegions gathers one network snapshot per region.
// Any regional collection failure aborts the audit.
func (e *NetworkEngine) collectRegions(
	ctx context.Context,
	profile *common.ProfileConfig,
	regions []string,
) ([]*models.NetworkSnapshot, error) {
	snapshots := make([]*models.NetworkSnapshot, 0, len(regions))
	for _, region := range regions {
		cfg := e.provider.ConfigForRegion(profile, region)
		snap, err := e.collector.Collect(ctx, cfg, region)
		if err != nil {
			return nil, fmt.Errorf("collect network topology for profile %q in %s: %w", profile.ProfileName, region, err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

// evaluateNetwork runs the registered network rules once per regional
// snapshot and returns the domain-stamped, de-duplicated findings.
func (e *NetworkEngine) evaluateNetwork(
	snapshots []*models.NetworkSnapshot,
	accountID, profile string,
) []models.Finding {
	var raw []models.Finding
	for _, snap := range snapshots {
		rctx := rules.RuleContext{
			AccountID: accountID,
			Profile:   profile,
			Network:   snap,
			Policy:    e.policy,
		}
		raw = append(raw, e.registry.EvaluateAll(rctx)...)
	}
	stampDomain(raw, "network")
	return dedupeFindings(raw)
}

// buildNetworkReport applies policy filtering, builds the inventory against
// the filtered findings, and assembles the final report.
func (e *NetworkEngine) buildNetworkReport(
	profile, accountID string,
	regions []string,
	snapshots []*models.NetworkSnapshot,
	findings []models.Finding,
	services []string,
) *models.AuditReport {
	findings = policy.ApplyPolicy(findings, "network", e.policy)
	inventory := buildNetworkInventory(snapshots, findings, services)
	return buildAuditReport(AuditTypeNetwork, profile, accountID, regions, findings, inventory)
}

// stampDomain sets the Domain field on every finding in the slice.
// It is called once per engine, immediately after rule evaluation,
// before deduplication. This is the canonical location for domain tagging.
func stampDomain(findings []models.Finding, domain string) {
	for i := range findings {
		findings[i].Domain = domain
	}
}

// findingKey is the identity tuple used to de-duplicate findings.
type findingKey struct {
	ruleID      string
	resourceID  string
	severity    models.Severity
	explanation string
}

// dedupeFindings drops findings that repeat an earlier finding's
// (RuleID, ResourceID, Severity, Explanation) tuple. The first occurrence
// wins; input order is otherwise preserved.
func dedupeFindings(raw []models.Finding) []models.Finding {
	seen := make(map[findingKey]struct{}, len(raw))
	out := make([]models.Finding, 0, len(raw))
	for _, f := range raw {
		key := findingKey{f.RuleID, f.ResourceID, f.Severity, f.Explanation}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// buildAuditReport sorts the findings and assembles the final AuditReport.
// Findings must already be policy-filtered; the inventory must already be
// built against them.
func buildAuditReport(
	auditType AuditType,
	profile, accountID string,
	regions []string,
	findings []models.Finding,
	inventory []models.InventoryItem,
) *models.AuditReport {
	rules.SortFindings(findings)
	return &models.AuditReport{
		ReportID:    fmt.Sprintf("audit-%d", time.Now().UnixNano()),
		GeneratedAt: time.Now().UTC(),
		AuditType:   string(auditType),
		Profile:     profile,
		AccountID:   accountID,
		Regions:     regions,
		Summary:     computeSummary(findings),
		Findings:    findings,
		Inventory:   inventory,
	}
}

// computeSummary aggregates finding counts across all severity levels.
func computeSummary(findings []models.Finding) models.AuditSummary {
	var s models.AuditSummary
	s.TotalFindings = len(findings)
	for _, f := range findings {
		switch f.Severity {
		case models.SeverityCritical:
			s.CriticalFindings++
		case models.SeverityHigh:
			s.HighFindings++
		case models.SeverityMedium:
			s.MediumFindings++
		case models.SeverityLow:
			s.LowFindings++
		}
	}
	return s
}
