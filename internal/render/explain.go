// Package render provides presentation-layer helpers for NetScope CLI output.
// It is a pure rendering package: no rule evaluation, no policy resolution,
// no AWS API calls.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// FindingsForRule returns the findings whose RuleID equals ruleID, preserving
// input order. Returns nil when no finding matches.
func FindingsForRule(findings []models.Finding, ruleID string) []models.Finding {
	var matched []models.Finding
	for _, f := range findings {
		if f.RuleID == ruleID {
			matched = append(matched, f)
		}
	}
	return matched
}

// RenderRuleExplanation writes a structured breakdown of a single rule's
// findings to w. findings is the full report finding set; only findings whose
// RuleID equals ruleID are rendered (strict filtering). Findings are grouped
// by region and regions are sorted ascending for stable output.
//
// Example output:
//
//	RULE SG_OPEN_INGRESS
//	Severity: HIGH
//	Recommendation: Restrict the rule to the specific CIDR ranges that need access, or remove it.
//
//	Findings (3):
//
//	  ✓ eu-west-1
//	    - sg-0a1b2c3d: Security group allows ingress access from the entire internet (protocol=tcp, ports=22-22).
//
//	  ✓ us-east-1
//	    - sg-1111: Security group allows ingress access from the entire internet (protocol=tcp, ports=3389-3389).
func RenderRuleExplanation(w io.Writer, ruleID string, findings []models.Finding) {
	matched := FindingsForRule(findings, ruleID)

	// Header. Severity and recommendation are uniform across a rule's
	// findings; take them from the first match.
	fmt.Fprintf(w, "RULE %s\n", ruleID)
	if len(matched) > 0 {
		fmt.Fprintf(w, "Severity: %s\n", matched[0].Severity)
		if matched[0].Recommendation != "" {
			fmt.Fprintf(w, "Recommendation: %s\n", matched[0].Recommendation)
		}
	}
	fmt.Fprintln(w)

	// Group by region preserving first-seen order, then sort region names for
	// stable output. Account-scoped findings group under "global".
	regionToFindings := make(map[string][]*models.Finding)
	var regionOrder []string
	seenRegion := make(map[string]bool)

	for i := range matched {
		f := &matched[i]
		if !seenRegion[f.Region] {
			seenRegion[f.Region] = true
			regionOrder = append(regionOrder, f.Region)
		}
		regionToFindings[f.Region] = append(regionToFindings[f.Region], f)
	}

	sort.Strings(regionOrder)

	fmt.Fprintf(w, "Findings (%d):\n", len(matched))

	for _, region := range regionOrder {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  ✓ %s\n", region)
		for _, f := range regionToFindings[region] {
			fmt.Fprintf(w, "    - %s: %s\n", f.ResourceID, f.Explanation)
		}
	}
}

// WriteExplainJSON writes the rule explanation as indented JSON to w.
//
// When matched is non-empty, the output is:
//
//	{"rule_id": "...", "findings": [ ...finding objects... ]}
//
// When matched is empty (unknown rule, or no resource tripped it), the
// output is:
//
//	{"error": "No findings for rule RULE_ID"}
func WriteExplainJSON(w io.Writer, ruleID string, matched []models.Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if len(matched) == 0 {
		return enc.Encode(map[string]string{
			"error": fmt.Sprintf("No findings for rule %s", ruleID),
		})
	}
	return enc.Encode(map[string]any{
		"rule_id":  ruleID,
		"findings": matched,
	})
}
