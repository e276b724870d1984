package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// DefaultRuleRegistry is a simple, ordered, in-memory registry.
// Rules are evaluated in registration order.
// Register panics on duplicate rule IDs to catch wiring mistakes at startup.
type DefaultRuleRegistry struct {
	rules []Rule
	index map[string]struct{}
}

// NewDefaultRuleRegistry returns an empty registry ready for rule registration.
func NewDefaultRuleRegistry() *DefaultRuleRegistry {
	return &DefaultRuleRegistry{
		index: make(map[string]struct{}),
	}
}

// Register adds rule to the registry. Panics if the same ID is registered twice.
func (r *DefaultRuleRegistry) Register(rule Rule) {
	if _, exists := r.index[rule.ID()]; exists {
		panic(fmt.Sprintf("duplicate rule ID: %q", rule.ID()))
	}
	r.rules = append(r.rules, rule)
	r.index[rule.ID()] = struct{}{}
}

// All returns all registered rules in registration order.
func (r *DefaultRuleRegistry) All() []Rule {
	return r.rules
}

// EvaluateAll runs every registered rule against ctx and returns the merged
// findings slice. Rules are called sequentially in registration order.
func (r *DefaultRuleRegistry) EvaluateAll(ctx RuleContext) []models.Finding {
	var findings []models.Finding
	for _, rule := range r.rules {
		findings = append(findings, rule.Evaluate(ctx)...)
	}
	return findings
}

// FilterByService returns the rules whose Service() is in services, keeping
// the input order. An empty services list selects every rule. Service names
// are matched case-insensitively.
func FilterByService(all []Rule, services []string) []Rule {
	if len(services) == 0 {
		return all
	}
	wanted := make(map[string]struct{}, len(services))
	for _, s := range services {
		wanted[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	var selected []Rule
	for _, rule := range all {
		if _, ok := wanted[rule.Service()]; ok {
			selected = append(selected, rule)
		}
	}
	return selected
}

// ServiceNames returns the sorted, de-duplicated service keys covered by the
// given rules. The CLI uses this to report which --services values are valid.
func ServiceNames(all []Rule) []string {
	seen := make(map[string]struct{})
	for _, rule := range all {
		seen[rule.Service()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownServices returns the requested service names that no rule covers.
// Matching is case-insensitive; returned names keep their requested spelling.
func UnknownServices(all []Rule, services []string) []string {
	known := make(map[string]struct{})
	for _, rule := range all {
		known[rule.Service()] = struct{}{}
	}
	var unknown []string
	for _, s := range services {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := known[key]; !ok {
			unknown = append(unknown, s)
		}
	}
	return unknown
}

// ranked severity order for merge/sort helpers shared by the engines.
var severityRank = map[models.Severity]int{
	models.SeverityCritical: 0,
	models.SeverityHigh:     1,
	models.SeverityMedium:   2,
	models.SeverityLow:      3,
	models.SeverityInfo:     4,
}

// SortFindings orders findings by severity (CRITICAL first), then rule ID,
// resource, and message, so repeated runs over the same data produce
// identical reports.
func SortFindings(findings []models.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		ra, ok := severityRank[a.Severity]
		if !ok {
			ra = len(severityRank)
		}
		rb, ok := severityRank[b.Severity]
		if !ok {
			rb = len(severityRank)
		}
		if ra != rb {
			return ra < rb
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		if a.ResourceID != b.ResourceID {
			return a.ResourceID < b.ResourceID
		}
		return a.Explanation < b.Explanation
	})
}
