package engine

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
)

// snapshotWithGroup returns a snapshot whose single security group matches
// the resource the stub network rule reports on.
func snapshotWithGroup(region string) *models.NetworkSnapshot {
	return &models.NetworkSnapshot{
		Region: region,
		SecurityGroupRules: []models.SecurityGroupRule{
			{GroupID: "sg-" + region, Inbound: true, Protocol: "tcp", FromPort: 22, ToPort: 22, CIDR: "0.0.0.0/0"},
		},
	}
}

// ── RunAudit type checking ────────────────────────────────────────────────────

func TestNetworkAudit_RejectsWrongAuditType(t *testing.T) {
	eng := NewNetworkEngine(newFakeProvider(testProfile("test", "111122223333")), &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	_, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeAccount})
	if err == nil {
		t.Fatal("expected error for audit type \"account\"; got nil")
	}
	if !strings.Contains(err.Error(), "unsupported audit type") {
		t.Errorf("error = %q; want it to mention the unsupported audit type", err)
	}
}

// ── single profile ────────────────────────────────────────────────────────────

// TestNetworkAudit_SingleProfile runs the full single-profile flow: region
// discovery, one collection per region, rule evaluation per snapshot, and
// report assembly with sorted findings and a per-resource inventory.
func TestNetworkAudit_SingleProfile(t *testing.T) {
	provider := newFakeProvider(testProfile("staging", "111122223333"), "us-east-1", "eu-west-1")
	collector := &fakeNetworkCollector{
		snapshots: map[string]*models.NetworkSnapshot{
			"us-east-1": snapshotWithGroup("us-east-1"),
			"eu-west-1": snapshotWithGroup("eu-west-1"),
		},
	}
	eng := NewNetworkEngine(provider, collector, registryWith(stubNetworkRule{}), nil)

	report, err := eng.RunAudit(context.Background(), AuditOptions{
		AuditType: AuditTypeNetwork,
		Profile:   "staging",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One collection per discovered region, in discovery order.
	if want := []string{"us-east-1", "eu-west-1"}; !reflect.DeepEqual(collector.collected, want) {
		t.Errorf("collected regions = %v; want %v", collector.collected, want)
	}
	// Each collection must receive a config scoped to its region.
	for i, region := range collector.collected {
		if collector.gotCfgs[i].Region != region {
			t.Errorf("cfg[%d].Region = %q; want %q", i, collector.gotCfgs[i].Region, region)
		}
	}

	if report.AuditType != string(AuditTypeNetwork) {
		t.Errorf("AuditType = %q; want %q", report.AuditType, AuditTypeNetwork)
	}
	if report.Profile != "staging" {
		t.Errorf("Profile = %q; want staging", report.Profile)
	}
	if report.AccountID != "111122223333" {
		t.Errorf("AccountID = %q; want 111122223333", report.AccountID)
	}
	if want := []string{"us-east-1", "eu-west-1"}; !reflect.DeepEqual(report.Regions, want) {
		t.Errorf("Regions = %v; want %v", report.Regions, want)
	}
	if !strings.HasPrefix(report.ReportID, "audit-") {
		t.Errorf("ReportID = %q; want audit- prefix", report.ReportID)
	}

	// One finding per regional snapshot, sorted by resource ID within the
	// same rule and severity (eu-west-1 sorts before us-east-1).
	if len(report.Findings) != 2 {
		t.Fatalf("expected 2 findings; got %d", len(report.Findings))
	}
	if report.Findings[0].ResourceID != "sg-eu-west-1" {
		t.Errorf("findings[0].ResourceID = %q; want sg-eu-west-1", report.Findings[0].ResourceID)
	}
	for i, f := range report.Findings {
		if f.Domain != "network" {
			t.Errorf("findings[%d].Domain = %q; want \"network\"", i, f.Domain)
		}
	}
	if report.Summary.TotalFindings != 2 || report.Summary.HighFindings != 2 {
		t.Errorf("Summary = %+v; want 2 total, 2 high", report.Summary)
	}

	// Inventory: one NON_COMPLIANT row per flagged security group.
	if len(report.Inventory) != 2 {
		t.Fatalf("expected 2 inventory rows; got %d", len(report.Inventory))
	}
	for i, item := range report.Inventory {
		if item.Service != "vpc" {
			t.Errorf("inventory[%d].Service = %q; want vpc", i, item.Service)
		}
		if item.Status != models.InventoryNonCompliant {
			t.Errorf("inventory[%d].Status = %q; want NON_COMPLIANT", i, item.Status)
		}
	}
}

func TestNetworkAudit_DefaultProfile(t *testing.T) {
	provider := newFakeProvider(testProfile("default", "111122223333"), "us-east-1")
	eng := NewNetworkEngine(provider, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	report, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Profile != "default" {
		t.Errorf("Profile = %q; want default", report.Profile)
	}
}

// TestNetworkAudit_ExplicitRegions verifies that an explicit region list
// bypasses discovery entirely: the provider here fails GetActiveRegions, so
// any discovery attempt would abort the audit.
func TestNetworkAudit_ExplicitRegions(t *testing.T) {
	provider := newFakeProvider(testProfile("staging", "111122223333"))
	provider.regionsErr = map[string]error{"staging": errors.New("discovery must not run")}
	collector := &fakeNetworkCollector{}
	eng := NewNetworkEngine(provider, collector, registryWith(stubNetworkRule{}), nil)

	report, err := eng.RunAudit(context.Background(), AuditOptions{
		AuditType: AuditTypeNetwork,
		Profile:   "staging",
		Regions:   []string{"ap-south-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"ap-south-1"}; !reflect.DeepEqual(collector.collected, want) {
		t.Errorf("collected regions = %v; want %v", collector.collected, want)
	}
	if want := []string{"ap-south-1"}; !reflect.DeepEqual(report.Regions, want) {
		t.Errorf("Regions = %v; want %v", report.Regions, want)
	}
}

func TestNetworkAudit_LoadProfileError(t *testing.T) {
	provider := &fakeClientProvider{loadErr: errors.New("no credentials")}
	eng := NewNetworkEngine(provider, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	_, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, Profile: "missing"})
	if err == nil || !strings.Contains(err.Error(), `load profile "missing"`) {
		t.Errorf("error = %v; want load profile wrap", err)
	}
}

// TestNetworkAudit_CollectFailureAborts verifies the network audit is
// all-or-nothing per profile: a single regional collection failure fails the
// run rather than producing a partial topology.
func TestNetworkAudit_CollectFailureAborts(t *testing.T) {
	provider := newFakeProvider(testProfile("staging", "111122223333"), "us-east-1", "eu-west-1")
	collector := &fakeNetworkCollector{
		errs: map[string]error{"eu-west-1": errors.New("throttled")},
	}
	eng := NewNetworkEngine(provider, collector, registryWith(stubNetworkRule{}), nil)

	_, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, Profile: "staging"})
	if err == nil {
		t.Fatal("expected error; got nil")
	}
	if !strings.Contains(err.Error(), `collect network topology for profile "staging" in eu-west-1`) {
		t.Errorf("error = %q; want collection wrap naming profile and region", err)
	}
}

// ── all profiles ──────────────────────────────────────────────────────────────

// TestNetworkAudit_AllProfiles_SkipsFailures verifies that per-profile
// failures (region discovery or collection) skip the profile without failing
// the run, and that the merged report is stamped with the "multi" profile.
func TestNetworkAudit_AllProfiles_SkipsFailures(t *testing.T) {
	prod := testProfile("prod", "111122223333")
	nodisc := testProfile("nodisc", "444455556666")
	nocollect := testProfile("nocollect", "777788889999")

	provider := &fakeClientProvider{
		profiles: map[string]*common.ProfileConfig{"prod": prod, "nodisc": nodisc, "nocollect": nocollect},
		all:      []*common.ProfileConfig{prod, nodisc, nocollect},
		regions: map[string][]string{
			"prod":      {"us-east-1"},
			"nocollect": {"me-south-1"},
		},
		regionsErr: map[string]error{"nodisc": errors.New("sts denied")},
	}
	collector := &fakeNetworkCollector{
		snapshots: map[string]*models.NetworkSnapshot{"us-east-1": snapshotWithGroup("us-east-1")},
		errs:      map[string]error{"me-south-1": errors.New("throttled")},
	}
	eng := NewNetworkEngine(provider, collector, registryWith(stubNetworkRule{}), nil)

	report, err := eng.RunAudit(context.Background(), AuditOptions{
		AuditType:   AuditTypeNetwork,
		AllProfiles: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Profile != "multi" {
		t.Errorf("Profile = %q; want multi", report.Profile)
	}
	if report.AccountID != "" {
		t.Errorf("AccountID = %q; want empty for multi-profile report", report.AccountID)
	}
	if len(report.Findings) != 1 || report.Findings[0].Profile != "prod" {
		t.Fatalf("findings = %+v; want exactly the prod finding", report.Findings)
	}
	if want := []string{"us-east-1"}; !reflect.DeepEqual(report.Regions, want) {
		t.Errorf("Regions = %v; want %v", report.Regions, want)
	}
}

func TestNetworkAudit_AllProfiles_RegionsDeduped(t *testing.T) {
	prod := testProfile("prod", "111122223333")
	dev := testProfile("dev", "444455556666")

	provider := &fakeClientProvider{
		profiles: map[string]*common.ProfileConfig{"prod": prod, "dev": dev},
		all:      []*common.ProfileConfig{prod, dev},
		regions: map[string][]string{
			"prod": {"us-east-1", "eu-west-1"},
			"dev":  {"us-east-1", "ap-south-1"},
		},
	}
	eng := NewNetworkEngine(provider, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	report, err := eng.RunAudit(context.Background(), AuditOptions{
		AuditType:   AuditTypeNetwork,
		AllProfiles: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"us-east-1", "eu-west-1", "ap-south-1"}
	if !reflect.DeepEqual(report.Regions, want) {
		t.Errorf("Regions = %v; want %v (first-seen order, no repeats)", report.Regions, want)
	}
}

func TestNetworkAudit_AllProfiles_AllFail(t *testing.T) {
	prod := testProfile("prod", "111122223333")
	provider := &fakeClientProvider{
		profiles:   map[string]*common.ProfileConfig{"prod": prod},
		all:        []*common.ProfileConfig{prod},
		regionsErr: map[string]error{"prod": errors.New("sts denied")},
	}
	eng := NewNetworkEngine(provider, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	_, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, AllProfiles: true})
	if err == nil || !strings.Contains(err.Error(), "all profiles failed; no network data collected") {
		t.Errorf("error = %v; want all-profiles-failed error", err)
	}
}

func TestNetworkAudit_AllProfiles_NoneConfigured(t *testing.T) {
	eng := NewNetworkEngine(&fakeClientProvider{}, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), nil)

	_, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, AllProfiles: true})
	if err == nil || !strings.Contains(err.Error(), "no AWS profiles found") {
		t.Errorf("error = %v; want no-profiles error", err)
	}
}

// ── policy interaction ────────────────────────────────────────────────────────

// TestNetworkAudit_PolicyFiltersFindings verifies that a rule disabled by
// policy produces no findings and that the inventory, built after filtering,
// reports the affected resources as COMPLIANT.
func TestNetworkAudit_PolicyFiltersFindings(t *testing.T) {
	disabled := false
	policyCfg := &policy.PolicyConfig{
		Version: 1,
		Rules:   map[string]policy.RuleConfig{"NET_STUB": {Enabled: &disabled}},
	}

	provider := newFakeProvider(testProfile("staging", "111122223333"), "us-east-1")
	collector := &fakeNetworkCollector{
		snapshots: map[string]*models.NetworkSnapshot{"us-east-1": snapshotWithGroup("us-east-1")},
	}
	eng := NewNetworkEngine(provider, collector, registryWith(stubNetworkRule{}), policyCfg)

	report, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, Profile: "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Findings) != 0 {
		t.Errorf("expected no findings with NET_STUB disabled; got %d", len(report.Findings))
	}
	if len(report.Inventory) != 1 {
		t.Fatalf("expected 1 inventory row; got %d", len(report.Inventory))
	}
	item := report.Inventory[0]
	if item.Status != models.InventoryCompliant {
		t.Errorf("Status = %q; want COMPLIANT once the finding is filtered", item.Status)
	}
	if item.Details != "All checks passed." {
		t.Errorf("Details = %q; want \"All checks passed.\"", item.Details)
	}
}

func TestNetworkAudit_PolicyMinSeverityFloor(t *testing.T) {
	policyCfg := &policy.PolicyConfig{
		Version: 1,
		Domains: map[string]policy.DomainConfig{
			"network": {Enabled: true, MinSeverity: "CRITICAL"},
		},
	}

	provider := newFakeProvider(testProfile("staging", "111122223333"), "us-east-1")
	eng := NewNetworkEngine(provider, &fakeNetworkCollector{}, registryWith(stubNetworkRule{}), policyCfg)

	report, err := eng.RunAudit(context.Background(), AuditOptions{AuditType: AuditTypeNetwork, Profile: "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The stub emits HIGH; the CRITICAL floor must drop it.
	if len(report.Findings) != 0 {
		t.Errorf("expected 0 findings below the severity floor; got %d", len(report.Findings))
	}
}

// ── stampDomain ───────────────────────────────────────────────────────────────

func TestStampDomain_SetsAllFindings(t *testing.T) {
	findings := []models.Finding{
		newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
		newFinding("sg-2", "us-east-1", "SG_OPEN_INGRESS", models.SeverityMedium),
		newFinding("subnet-1", "eu-west-1", "SUBNET_AUTO_PUBLIC_IP", models.SeverityLow),
	}

	stampDomain(findings, "network")

	for i, f := range findings {
		if f.Domain != "network" {
			t.Errorf("findings[%d].Domain = %q; want \"network\"", i, f.Domain)
		}
	}
}

func TestStampDomain_Empty(t *testing.T) {
	stampDomain(nil, "network")
	stampDomain([]models.Finding{}, "account")
}

func TestStampDomain_OverwritesExisting(t *testing.T) {
	findings := []models.Finding{
		newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
	}
	findings[0].Domain = "old-value"

	stampDomain(findings, "account")

	if findings[0].Domain != "account" {
		t.Errorf("Domain = %q; want \"account\"", findings[0].Domain)
	}
}

// ── dedupeFindings ────────────────────────────────────────────────────────────

func TestDedupeFindings_Empty(t *testing.T) {
	if got := dedupeFindings(nil); len(got) != 0 {
		t.Errorf("want 0, got %d", len(got))
	}
	if got := dedupeFindings([]models.Finding{}); len(got) != 0 {
		t.Errorf("want 0, got %d", len(got))
	}
}

func TestDedupeFindings_ExactDuplicateDropped(t *testing.T) {
	raw := []models.Finding{
		newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
		newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
	}
	got := dedupeFindings(raw)
	if len(got) != 1 {
		t.Fatalf("want 1 finding after dedupe; got %d", len(got))
	}
	if got[0].ResourceID != "sg-1" {
		t.Errorf("ResourceID = %q; want sg-1", got[0].ResourceID)
	}
}

// TestDedupeFindings_CrossRegionDuplicateCollapses pins the identity tuple to
// (rule, resource, severity, message): region is deliberately excluded, so an
// account-scoped resource evaluated once per regional snapshot surfaces once.
func TestDedupeFindings_CrossRegionDuplicateCollapses(t *testing.T) {
	a := newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh)
	b := newFinding("sg-1", "eu-west-1", "SG_OPEN_INGRESS", models.SeverityHigh)

	got := dedupeFindings([]models.Finding{a, b})
	if len(got) != 1 {
		t.Fatalf("want 1 finding; got %d", len(got))
	}
	// First occurrence wins.
	if got[0].Region != "us-east-1" {
		t.Errorf("Region = %q; want us-east-1 (first occurrence)", got[0].Region)
	}
}

func TestDedupeFindings_DifferentMessageKept(t *testing.T) {
	a := newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh)
	b := newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh)
	b.Explanation = "Port 3389 open to the world."

	got := dedupeFindings([]models.Finding{a, b})
	if len(got) != 2 {
		t.Errorf("want 2 findings with distinct messages; got %d", len(got))
	}
}

func TestDedupeFindings_DifferentSeverityKept(t *testing.T) {
	a := newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh)
	b := newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityMedium)
	b.Explanation = a.Explanation

	got := dedupeFindings([]models.Finding{a, b})
	if len(got) != 2 {
		t.Errorf("want 2 findings with distinct severities; got %d", len(got))
	}
}

func TestDedupeFindings_OrderPreserved(t *testing.T) {
	raw := []models.Finding{
		newFinding("sg-2", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
		newFinding("sg-1", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
		newFinding("sg-2", "us-east-1", "SG_OPEN_INGRESS", models.SeverityHigh),
	}
	got := dedupeFindings(raw)
	if len(got) != 2 {
		t.Fatalf("want 2 findings; got %d", len(got))
	}
	if got[0].ResourceID != "sg-2" || got[1].ResourceID != "sg-1" {
		t.Errorf("order = [%s %s]; want [sg-2 sg-1]", got[0].ResourceID, got[1].ResourceID)
	}
}

// ── computeSummary ────────────────────────────────────────────────────────────

func TestComputeSummary_CountsPerSeverity(t *testing.T) {
	findings := []models.Finding{
		newFinding("a", "us-east-1", "R1", models.SeverityCritical),
		newFinding("b", "us-east-1", "R2", models.SeverityHigh),
		newFinding("c", "us-east-1", "R3", models.SeverityHigh),
		newFinding("d", "us-east-1", "R4", models.SeverityMedium),
		newFinding("e", "us-east-1", "R5", models.SeverityLow),
		newFinding("f", "us-east-1", "R6", models.SeverityInfo),
	}

	s := computeSummary(findings)

	if s.TotalFindings != 6 {
		t.Errorf("TotalFindings = %d; want 6 (INFO counts toward the total)", s.TotalFindings)
	}
	if s.CriticalFindings != 1 {
		t.Errorf("CriticalFindings = %d; want 1", s.CriticalFindings)
	}
	if s.HighFindings != 2 {
		t.Errorf("HighFindings = %d; want 2", s.HighFindings)
	}
	if s.MediumFindings != 1 {
		t.Errorf("MediumFindings = %d; want 1", s.MediumFindings)
	}
	if s.LowFindings != 1 {
		t.Errorf("LowFindings = %d; want 1", s.LowFindings)
	}
}
