package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pankaj-dahiya-devops/netscope/internal/config"
	"github.com/pankaj-dahiya-devops/netscope/internal/engine"
	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/output"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
	awsaccount "github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/account"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	awstopology "github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/topology"
	"github.com/pankaj-dahiya-devops/netscope/internal/render"
	acctpack "github.com/pankaj-dahiya-devops/netscope/internal/rulepacks/account"
	netpack "github.com/pankaj-dahiya-devops/netscope/internal/rulepacks/network"
	"github.com/pankaj-dahiya-devops/netscope/internal/rules"
	"github.com/pankaj-dahiya-devops/netscope/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "netscope",
		Short:         "NetScope — AWS account auditor and VPC topology mapper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAuditCmd())
	root.AddCommand(newDiagramCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.Info())
		},
	}
}

// networkServices / accountServices split the service keys between the two
// audit domains; the union is the full --services vocabulary.
var (
	networkServices = []string{"vpc", "ec2", "rds", "elb"}
	accountServices = []string{"iam", "s3", "cloudtrail", "guardduty", "config", "kms", "acm"}
)

func newAuditCmd() *cobra.Command {
	var (
		profile     string
		allProfiles bool
		regions     []string
		services    []string
		compliance  []string
		reportFmt   string
		policyPath  string
		colored     bool
		summary     bool
		jsonPath    string
		excelPath   string
		invPath     string
		explainRule string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit AWS network topology and account security posture",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := loadDefaults()
			if err != nil {
				return err
			}
			if profile == "" {
				profile = defaults.AWS.DefaultProfile
			}

			selected, warning, err := resolveServices(services, compliance)
			if warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), warning)
			}
			if err != nil {
				return err
			}

			policyCfg, err := loadPolicyFile(policyPath)
			if err != nil {
				return err
			}

			eng := buildEngine(policyCfg, selected)

			opts := engine.AuditOptions{
				AuditType:    auditTypeForServices(selected),
				Profile:      profile,
				AllProfiles:  allProfiles,
				Regions:      regions,
				Services:     selected,
				ReportFormat: engine.ReportFormat(reportFmt),
			}

			report, err := eng.RunAudit(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			if jsonPath != "" {
				if err := writeReportToFile(jsonPath, report); err != nil {
					return err
				}
				fmt.Fprintf(out, "Report written to %s\n", jsonPath)
			}
			if excelPath != "" {
				if err := output.ExportFindingsExcel(excelPath, report.Findings); err != nil {
					fmt.Fprintf(errOut, "Failed to export Excel report: %v\n", err)
				} else {
					fmt.Fprintf(out, "Excel report written to %s\n", excelPath)
				}
			}
			if invPath != "" {
				if err := output.ExportInventoryExcel(invPath, report.Inventory); err != nil {
					fmt.Fprintf(errOut, "Failed to export inventory Excel report: %v\n", err)
				} else {
					fmt.Fprintf(out, "Inventory Excel report written to %s\n", invPath)
				}
			}

			switch {
			case explainRule != "":
				if err := printExplanation(out, report, explainRule, reportFmt); err != nil {
					return err
				}
			case summary:
				printSummary(out, report)
			case reportFmt == "json":
				if err := printJSON(out, report); err != nil {
					return err
				}
			default:
				printTable(out, report, colored)
			}

			if enforced := engine.EnforcedDomains(report.Findings, policyCfg); len(enforced) > 0 {
				fmt.Fprintf(errOut, "Policy enforcement failed for domain(s): %s\n", strings.Join(enforced, ", "))
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "AWS profile name (default: uses environment / default profile)")
	cmd.Flags().BoolVar(&allProfiles, "all-profiles", false, "Audit all configured AWS profiles")
	cmd.Flags().StringSliceVar(&regions, "region", nil, "AWS region(s) to audit (default: all active regions)")
	cmd.Flags().StringSliceVar(&services, "services", nil, "Service keys to audit (default: all), e.g. vpc,iam,s3")
	cmd.Flags().StringSliceVar(&compliance, "compliance", nil, "Compliance framework(s) selecting the audited services, e.g. hipaa")
	cmd.Flags().StringVar(&reportFmt, "format", "table", "Output format: json or table")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Policy YAML file with rule overrides and enforcement thresholds")
	cmd.Flags().BoolVar(&colored, "colored", false, "Colour severity labels with ANSI codes")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print compact summary: totals, severity breakdown, top-5 findings")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Write full JSON report to this file path (in addition to stdout output)")
	cmd.Flags().StringVar(&excelPath, "excel", "", "Write findings to this .xlsx file path")
	cmd.Flags().StringVar(&invPath, "inventory-excel", "", "Write the audited-resource inventory to this .xlsx file path")
	cmd.Flags().StringVar(&explainRule, "explain", "", "Print a per-region breakdown for one rule ID instead of the findings table")

	return cmd
}

// loadDefaults reads the optional defaults file. A missing file yields an
// empty config; a malformed one is a hard error so typos never pass silently.
func loadDefaults() (*config.Config, error) {
	loader, err := config.NewFileLoader("")
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load defaults file %s: %w", loader.ConfigPath(), err)
	}
	return cfg, nil
}

// loadPolicyFile loads and validates the --policy file. An empty path means
// no policy: every rule runs with its built-in severity and nothing enforces.
func loadPolicyFile(path string) (*policy.PolicyConfig, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := policy.LoadPolicy(path)
	if err != nil {
		return nil, fmt.Errorf("load policy %s: %w", path, err)
	}
	if errs := policy.Validate(cfg, allRuleIDs()); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid policy %s: %s", path, strings.Join(msgs, "; "))
	}
	return cfg, nil
}

// buildEngine wires the production engine: real AWS provider and collectors,
// rule packs filtered down to the selected services.
func buildEngine(policyCfg *policy.PolicyConfig, services []string) engine.Engine {
	provider := common.NewDefaultAWSClientProvider()

	netRegistry := rules.NewDefaultRuleRegistry()
	for _, r := range rules.FilterByService(netpack.New(), services) {
		netRegistry.Register(r)
	}
	acctRegistry := rules.NewDefaultRuleRegistry()
	for _, r := range rules.FilterByService(acctpack.New(), services) {
		acctRegistry.Register(r)
	}

	networkEng := engine.NewNetworkEngine(provider, awstopology.NewDefaultNetworkCollector(), netRegistry, policyCfg)
	accountEng := engine.NewAccountEngine(provider, awsaccount.NewDefaultAccountCollector(), acctRegistry, policyCfg)
	return engine.NewDefaultEngine(networkEng, accountEng, engine.NewAllEngine(networkEng, accountEng))
}

// allRuleIDs returns the union of all known rule IDs from both rule packs.
func allRuleIDs() []string {
	var ids []string
	for _, r := range netpack.New() {
		ids = append(ids, r.ID())
	}
	for _, r := range acctpack.New() {
		ids = append(ids, r.ID())
	}
	return ids
}

// allServiceNames returns every valid --services key, sorted.
func allServiceNames() []string {
	names := append(append([]string{}, networkServices...), accountServices...)
	sort.Strings(names)
	return names
}

// resolveServices normalizes and validates the --services list, then
// intersects it with the services the selected compliance frameworks cover.
// The returned warning (possibly empty) names the services a framework
// excluded; it is printed, not returned as an error, because a partial
// intersection is still a runnable audit.
func resolveServices(services, frameworks []string) (selected []string, warning string, err error) {
	var normalized []string
	for _, svc := range services {
		key := strings.ToLower(strings.TrimSpace(svc))
		if key == "" {
			continue
		}
		normalized = append(normalized, key)
	}

	valid := allServiceNames()
	validSet := make(map[string]struct{}, len(valid))
	for _, name := range valid {
		validSet[name] = struct{}{}
	}
	for _, svc := range normalized {
		if _, ok := validSet[svc]; !ok {
			return nil, "", fmt.Errorf("unknown service %q; valid services: %s", svc, strings.Join(valid, ", "))
		}
	}

	if len(frameworks) == 0 {
		return normalized, "", nil
	}

	allowed, err := policy.ResolveFrameworks(frameworks)
	if err != nil {
		return nil, "", err
	}
	if len(normalized) == 0 {
		return allowed, "", nil
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, svc := range allowed {
		allowedSet[svc] = struct{}{}
	}
	var kept, dropped []string
	for _, svc := range normalized {
		if _, ok := allowedSet[svc]; ok {
			kept = append(kept, svc)
		} else {
			dropped = append(dropped, svc)
		}
	}
	if len(dropped) > 0 {
		sort.Strings(dropped)
		warning = "Warning: ignoring services not covered by the selected compliance frameworks: " + strings.Join(dropped, ", ")
	}
	if len(kept) == 0 {
		return nil, warning, errors.New("none of the requested services are covered by the selected compliance frameworks")
	}
	return kept, warning, nil
}

// auditTypeForServices maps the selected service keys onto an audit domain.
// An empty selection or a mix spanning both domains runs the full audit.
func auditTypeForServices(services []string) engine.AuditType {
	if len(services) == 0 {
		return engine.AuditTypeAll
	}
	inNet := make(map[string]struct{}, len(networkServices))
	for _, svc := range networkServices {
		inNet[svc] = struct{}{}
	}
	hasNet, hasAcct := false, false
	for _, svc := range services {
		if _, ok := inNet[svc]; ok {
			hasNet = true
		} else {
			hasAcct = true
		}
	}
	switch {
	case hasNet && !hasAcct:
		return engine.AuditTypeNetwork
	case hasAcct && !hasNet:
		return engine.AuditTypeAccount
	default:
		return engine.AuditTypeAll
	}
}

// printJSON writes the report as indented JSON to w.
func printJSON(w io.Writer, report *models.AuditReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// writeReportToFile serialises report as indented JSON and writes it to path,
// creating or overwriting the file. It does not affect stdout output.
func writeReportToFile(path string, report *models.AuditReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report file %q: %w", path, err)
	}
	return nil
}

// printExplanation renders the --explain breakdown for one rule ID in the
// requested format. Table mode with no matching findings prints a one-line
// notice instead of an empty breakdown.
func printExplanation(w io.Writer, report *models.AuditReport, ruleID, format string) error {
	matched := render.FindingsForRule(report.Findings, ruleID)
	if format == "json" {
		return render.WriteExplainJSON(w, ruleID, matched)
	}
	if len(matched) == 0 {
		fmt.Fprintf(w, "No findings for rule %s\n", ruleID)
		return nil
	}
	render.RenderRuleExplanation(w, ruleID, report.Findings)
	return nil
}

// printSummary renders a compact summary view to w:
//   - Account / profile / region header
//   - Total findings count
//   - Per-severity finding counts
//   - Top 5 findings ranked by severity
//
// It reuses the already-computed AuditReport; no engine logic is duplicated.
func printSummary(w io.Writer, report *models.AuditReport) {
	s := report.Summary

	fmt.Fprintf(w, "Account:  %s\n", report.AccountID)
	fmt.Fprintf(w, "Profile:  %s\n", report.Profile)
	fmt.Fprintf(w, "Regions:  %d\n", len(report.Regions))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Findings:  %d\n", s.TotalFindings)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Severity Breakdown")
	fmt.Fprintf(w, "  %-10s  %d\n", "CRITICAL", s.CriticalFindings)
	fmt.Fprintf(w, "  %-10s  %d\n", "HIGH", s.HighFindings)
	fmt.Fprintf(w, "  %-10s  %d\n", "MEDIUM", s.MediumFindings)
	fmt.Fprintf(w, "  %-10s  %d\n", "LOW", s.LowFindings)

	top := topFindings(report.Findings, 5)
	if len(top) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Findings")
	fmt.Fprintf(w, "  %-42s  %-15s  %-10s  %s\n", "RESOURCE ID", "REGION", "SEVERITY", "RULE")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 82))
	for _, f := range top {
		fmt.Fprintf(w, "  %-42s  %-15s  %-10s  %s\n",
			f.ResourceID, f.Region, string(f.Severity), f.RuleID)
	}
}

// topFindings returns up to n findings ordered by severity, most severe
// first. The original slice is not modified.
func topFindings(findings []models.Finding, n int) []models.Finding {
	sorted := make([]models.Finding, len(findings))
	copy(sorted, findings)
	rules.SortFindings(sorted)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// printTable renders a one-line report header followed by the findings table.
func printTable(w io.Writer, report *models.AuditReport, colored bool) {
	s := report.Summary
	fmt.Fprintf(w,
		"Profile: %-20s  Account: %-14s  Regions: %d  Findings: %d\n",
		report.Profile,
		report.AccountID,
		len(report.Regions),
		s.TotalFindings,
	)
	fmt.Fprintln(w)
	output.RenderTable(w, report.Findings, output.TableOptions{
		Colored:        colored,
		IncludeDomain:  report.AuditType == string(engine.AuditTypeAll),
		IncludeProfile: report.Profile == "multi",
	})
}
