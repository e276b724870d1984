package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	"github.com/pankaj-dahiya-devops/netscope/internal/rules"
)

// ── test doubles ──────────────────────────────────────────────────────────────

// fakeClientProvider implements common.AWSClientProvider entirely in memory.
// Profiles are served from a fixed set; active regions come from a per-profile
// map so multi-profile tests can give each profile its own footprint.
type fakeClientProvider struct {
	profiles   map[string]*common.ProfileConfig
	all        []*common.ProfileConfig
	loadErr    error
	allErr     error
	regions    map[string][]string // profile name → active regions
	regionsErr map[string]error    // profile name → discovery error
}

func (p *fakeClientProvider) LoadProfile(_ context.Context, profile string) (*common.ProfileConfig, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	if profile == "" {
		profile = "default"
	}
	pc, ok := p.profiles[profile]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", profile)
	}
	return pc, nil
}

func (p *fakeClientProvider) LoadAllProfiles(_ context.Context) ([]*common.ProfileConfig, error) {
	if p.allErr != nil {
		return nil, p.allErr
	}
	return p.all, nil
}

func (p *fakeClientProvider) GetActiveRegions(_ context.Context, cfg *common.ProfileConfig) ([]string, error) {
	if err := p.regionsErr[cfg.ProfileName]; err != nil {
		return nil, err
	}
	return p.regions[cfg.ProfileName], nil
}

func (p *fakeClientProvider) ConfigForRegion(cfg *common.ProfileConfig, region string) aws.Config {
	regional := cfg.Config
	regional.Region = region
	return regional
}

// fakeNetworkCollector serves canned snapshots per region and records the
// regions it was asked to collect, in call order.
type fakeNetworkCollector struct {
	snapshots map[string]*models.NetworkSnapshot
	errs      map[string]error
	collected []string
	gotCfgs   []aws.Config
}

func (c *fakeNetworkCollector) Collect(_ context.Context, cfg aws.Config, region string) (*models.NetworkSnapshot, error) {
	c.collected = append(c.collected, region)
	c.gotCfgs = append(c.gotCfgs, cfg)
	if err := c.errs[region]; err != nil {
		return nil, err
	}
	if snap, ok := c.snapshots[region]; ok {
		return snap, nil
	}
	return &models.NetworkSnapshot{Region: region}, nil
}

// fakeAccountCollector serves canned account data per profile and records the
// region list passed for each profile.
type fakeAccountCollector struct {
	data       map[string]*models.AccountData // profile name → data
	errs       map[string]error               // profile name → collection error
	gotRegions map[string][]string
	calls      int
}

func (c *fakeAccountCollector) CollectAll(
	_ context.Context,
	profile *common.ProfileConfig,
	_ common.AWSClientProvider,
	regions []string,
) (*models.AccountData, error) {
	c.calls++
	if c.gotRegions == nil {
		c.gotRegions = make(map[string][]string)
	}
	c.gotRegions[profile.ProfileName] = regions
	if err := c.errs[profile.ProfileName]; err != nil {
		return nil, err
	}
	if data, ok := c.data[profile.ProfileName]; ok {
		return data, nil
	}
	return &models.AccountData{}, nil
}

// stubDomainEngine returns a fixed report (or error) from RunAudit and
// records the options it received. It satisfies domainEngine.
type stubDomainEngine struct {
	report  *models.AuditReport
	err     error
	gotOpts []AuditOptions
}

func (s *stubDomainEngine) RunAudit(_ context.Context, opts AuditOptions) (*models.AuditReport, error) {
	s.gotOpts = append(s.gotOpts, opts)
	return s.report, s.err
}

// stubNetworkRule emits one finding per evaluated snapshot, derived from the
// snapshot's region, so flow tests can observe the per-region evaluation
// fan-out without pulling in the real rule pack.
type stubNetworkRule struct{}

func (stubNetworkRule) ID() string      { return "NET_STUB" }
func (stubNetworkRule) Name() string    { return "Network stub" }
func (stubNetworkRule) Service() string { return "vpc" }

func (stubNetworkRule) Evaluate(ctx rules.RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	return []models.Finding{{
		ID:           "NET_STUB-" + ctx.Network.Region,
		RuleID:       "NET_STUB",
		ResourceID:   "sg-" + ctx.Network.Region,
		ResourceType: models.ResourceSecurityGroup,
		Region:       ctx.Network.Region,
		AccountID:    ctx.AccountID,
		Profile:      ctx.Profile,
		Severity:     models.SeverityHigh,
		Explanation:  "Security group allows unrestricted ingress.",
		DetectedAt:   time.Now().UTC(),
	}}
}

// stubAccountRule flags every IAM user without MFA, so inventory tests get a
// mix of compliant and non-compliant rows from one account snapshot.
type stubAccountRule struct{}

func (stubAccountRule) ID() string      { return "ACCT_STUB" }
func (stubAccountRule) Name() string    { return "Account stub" }
func (stubAccountRule) Service() string { return "iam" }

func (stubAccountRule) Evaluate(ctx rules.RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, user := range ctx.Account.IAMUsers {
		if user.MFAEnabled {
			continue
		}
		findings = append(findings, models.Finding{
			ID:           "ACCT_STUB-" + user.UserName,
			RuleID:       "ACCT_STUB",
			ResourceID:   user.UserName,
			ResourceType: models.ResourceIAMUser,
			Region:       "global",
			AccountID:    ctx.AccountID,
			Profile:      ctx.Profile,
			Severity:     models.SeverityMedium,
			Explanation:  "MFA is not enabled.",
			DetectedAt:   time.Now().UTC(),
		})
	}
	return findings
}

// ── helpers ───────────────────────────────────────────────────────────────────

// testProfile returns a resolved ProfileConfig without touching AWS.
func testProfile(name, accountID string) *common.ProfileConfig {
	return &common.ProfileConfig{
		ProfileName: name,
		AccountID:   accountID,
		Region:      "us-east-1",
		Config:      aws.Config{Region: "us-east-1"},
	}
}

// newFakeProvider returns a provider serving a single profile with the given
// active regions.
func newFakeProvider(profile *common.ProfileConfig, regions ...string) *fakeClientProvider {
	return &fakeClientProvider{
		profiles: map[string]*common.ProfileConfig{profile.ProfileName: profile},
		all:      []*common.ProfileConfig{profile},
		regions:  map[string][]string{profile.ProfileName: regions},
	}
}

// registryWith returns a registry with the given rules registered.
func registryWith(rs ...rules.Rule) rules.RuleRegistry {
	reg := rules.NewDefaultRuleRegistry()
	for _, r := range rs {
		reg.Register(r)
	}
	return reg
}

// newFinding constructs a minimal Finding for use in engine tests.
func newFinding(resourceID, region, ruleID string, sev models.Severity) models.Finding {
	return models.Finding{
		ID:           ruleID + "-" + resourceID,
		RuleID:       ruleID,
		ResourceID:   resourceID,
		ResourceType: models.ResourceSecurityGroup,
		Region:       region,
		AccountID:    "111122223333",
		Profile:      "test",
		Severity:     sev,
		Explanation:  "issue detected on " + resourceID,
		DetectedAt:   time.Now().UTC(),
	}
}
