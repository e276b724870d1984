package rules

import (
	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
)

// RuleContext carries all collected data for a single evaluation pass.
// It is the sole input to Rule.Evaluate and must contain everything a rule
// needs; rules must never make network calls or read external state.
type RuleContext struct {
	// AccountID is the AWS account being evaluated.
	AccountID string

	// Profile is the AWS profile name for this evaluation run.
	Profile string

	// Network holds the network snapshot of the target region. Nil when
	// running an account-only audit; network rules must check for nil.
	Network *models.NetworkSnapshot

	// Account holds the account-wide posture data, shared across all
	// regional evaluations. Nil when running a network-only audit; account
	// rules must check for nil.
	Account *models.AccountData

	// Policy holds the active PolicyConfig for threshold overrides. May be nil
	// when no policy file is loaded; rules must treat nil as "use defaults".
	Policy *policy.PolicyConfig
}

// Rule is a single deterministic audit rule.
// Rules must be stateless and safe to call concurrently.
// They must never call the AWS SDK or any external service.
type Rule interface {
	// ID returns the unique, stable identifier for this rule (e.g. "SG_OPEN_INGRESS").
	ID() string

	// Name returns a short human-readable rule name.
	Name() string

	// Service returns the audited service key (e.g. "vpc", "iam") used for
	// --services selection and inventory grouping.
	Service() string

	// Evaluate inspects the provided context and returns zero or more findings.
	// An empty slice means no issue was detected.
	Evaluate(ctx RuleContext) []models.Finding
}

// RuleRegistry manages the set of active rules and drives evaluation.
type RuleRegistry interface {
	// Register adds a rule to the registry. Panics on duplicate ID.
	Register(rule Rule)

	// All returns all registered rules in registration order.
	All() []Rule

	// EvaluateAll runs every registered rule against ctx and merges results.
	EvaluateAll(ctx RuleContext) []models.Finding
}
