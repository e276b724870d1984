package policy

import (
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// severityRank orders severities for threshold comparisons.
// CRITICAL (5) > HIGH (4) > MEDIUM (3) > LOW (2) > INFO (1).
var severityRank = map[models.Severity]int{
	models.SeverityCritical: 5,
	models.SeverityHigh:     4,
	models.SeverityMedium:   3,
	models.SeverityLow:      2,
	models.SeverityInfo:     1,
}

// ApplyPolicy filters and rewrites findings according to cfg: domain-level
// disable drops everything, rule-level disable drops per rule, severity
// overrides rewrite, and the domain's min_severity floor filters last (so an
// override can lift a finding over the floor). A nil cfg passes findings
// through untouched.
func ApplyPolicy(findings []models.Finding, domain string, cfg *PolicyConfig) []models.Finding {
	if cfg == nil {
		return findings
	}

	minRank := 0
	if d, ok := cfg.Domains[domain]; ok {
		if !d.Enabled {
			return []models.Finding{}
		}
		if d.MinSeverity != "" {
			// Unrecognised values leave minRank at 0 and filter nothing.
			minRank = severityRank[models.Severity(strings.ToUpper(d.MinSeverity))]
		}
	}

	var result []models.Finding

	for _, f := range findings {
		ruleCfg, hasRule := cfg.Rules[f.RuleID]

		// Rule-level disable
		if hasRule && ruleCfg.Enabled != nil && !*ruleCfg.Enabled {
			continue
		}

		// Severity override
		if hasRule && ruleCfg.Severity != "" {
			f.Severity = models.Severity(strings.ToUpper(ruleCfg.Severity))
		}

		if minRank > 0 {
			if r, ok := severityRank[f.Severity]; !ok || r < minRank {
				continue
			}
		}

		result = append(result, f)
	}

	return result
}
