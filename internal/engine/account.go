package engine

import (
	"context"
	"fmt"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/account"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	"github.com/pankaj-dahiya-devops/netscope/internal/rules"
)

// AccountEngine implements Engine for AuditTypeAccount.
// It collects the account-wide posture data once per profile, evaluates the
// account rule pack against it, and assembles findings plus inventory.
// It never calls the AWS SDK directly; collection is delegated to the
// AccountCollector.
type AccountEngine struct {
	provider  common.AWSClientProvider
	collector account.AccountCollector
	registry  rules.RuleRegistry
	policy    *policy.PolicyConfig
}

// NewAccountEngine constructs an AccountEngine wired to the supplied
// provider, account collector, and rule registry.
func NewAccountEngine(
	provider common.AWSClientProvider,
	collector account.AccountCollector,
	registry rules.RuleRegistry,
	policyCfg *policy.PolicyConfig,
) *AccountEngine {
	return &AccountEngine{
		provider:  provider,
		collector: collector,
		registry:  registry,
		policy:    policyCfg,
	}
}

// RunAudit implements Engine. Only AuditTypeAccount is accepted.
func (e *AccountEngine) RunAudit(ctx context.Context, opts AuditOptions) (*models.AuditReport, error) {
	if opts.AuditType != AuditTypeAccount {
		return nil, fmt.Errorf("unsupported audit type: %q", opts.AuditType)
	}
	if opts.AllProfiles {
		return e.runAllProfilesAcct(ctx, opts)
	}
	return e.runSingleProfileAcct(ctx, opts)
}

// runSingleProfileAcct executes an account posture audit for one AWS profile.
func (e *AccountEngine) runSingleProfileAcct(
	ctx context.Context,
	opts AuditOptions,
) (*models.AuditReport, error) {
	profile, err := e.provider.LoadProfile(ctx, opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", opts.Profile, err)
	}

	regions, err := e.resolveRegionsAcct(ctx, profile, opts.Regions)
	if err != nil {
		return nil, fmt.Errorf("resolve regions for profile %q: %w", profile.ProfileName, err)
	}

	data, err := e.collector.CollectAll(ctx, profile, e.provider, regions)
	if err != nil {
		return nil, fmt.Errorf("collect account data for profile %q: %w", profile.ProfileName, err)
	}

	findings := e.evaluateAccount(data, profile.AccountID, profile.ProfileName)
	findings = policy.ApplyPolicy(findings, "account", e.policy)
	inventory := buildAccountInventory(data, profile.AccountID, findings, opts.Services)
	return buildAuditReport(AuditTypeAccount, profile.ProfileName, profile.AccountID, regions, findings, inventory), nil
}

// runAllProfilesAcct runs an account audit across every configured AWS
// profile and merges findings into a single report. Profile failures are
// skipped non-fatally; an error is returned only when no profile can be
// audited.
func (e *AccountEngine) runAllProfilesAcct(
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
		allInventory []models.InventoryItem
		allRegions   []string
		seenRegions  = make(map[string]struct{})
		audited      int
	)

	for _, profile := range profiles {
		regions, err := e.resolveRegionsAcct(ctx, profile, opts.Regions)
		if err != nil {
			continue
		}
		data, err := e.collector.CollectAll(ctx, profile, e.provider, regions)
		if err != nil {
			continue
		}
		audited++

		// Policy filtering is per finding, so applying it per profile and
		// concatenating is equivalent to one pass over the merged slice.
		findings := e.evaluateAccount(data, profile.AccountID, profile.ProfileName)
		findings = policy.ApplyPolicy(findings, "account", e.policy)
		allFindings = append(allFindings, findings...)
		allInventory = append(allInventory, buildAccountInventory(data, profile.AccountID, findings, opts.Services)...)

		for _, r := range regions {
			if _, seen := seenRegions[r]; !seen {
				seenRegions[r] = struct{}{}
				allRegions = append(allRegions, r)
			}
		}
	}

	if audited == 0 {
		return nil, fmt.Errorf("all profiles failed; no account data collected")
	}
	return buildAuditReport(AuditTypeAccount, "multi", "", allRegions, allFindings, allInventory), nil
}

// resolveRegionsAcct returns the explicit region list or discovers active regions.
func (e *AccountEngine) resolveRegionsAcct(
	ctx context.Context,
	profile *common.ProfileConfig,
	explicit []string,
) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	return e.provider.GetActiveRegions(ctx, profile)
}

// evaluateAccount runs the registered account rules against the collected
// posture data. A single RuleContext is used because account data is global;
// regional sections (GuardDuty, Config) carry their own region per entry.
func (e *AccountEngine) evaluateAccount(
	data *models.AccountData,
	accountID, profile string,
) []models.Finding {
	rctx := rules.RuleContext{
		AccountID: accountID,
		Profile:   profile,
		Account:   data,
		Policy:    e.policy,
	}
	raw := e.registry.EvaluateAll(rctx)
	stampDomain(raw, "account")
	return dedupeFindings(raw)
}
