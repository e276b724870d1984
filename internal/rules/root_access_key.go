package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// RootAccessKeyRule flags the presence of access keys on the AWS root
// account. Root keys bypass every IAM policy in the account.
type RootAccessKeyRule struct{}

func (r RootAccessKeyRule) ID() string      { return "ROOT_ACCESS_KEY" }
func (r RootAccessKeyRule) Name() string    { return "Root Account Access Keys" }
func (r RootAccessKeyRule) Service() string { return "iam" }

// Evaluate returns a single CRITICAL finding when root access keys exist.
func (r RootAccessKeyRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	if !ctx.Account.Root.HasAccessKeys {
		return nil
	}
	return []models.Finding{{
		ID:             fmt.Sprintf("%s-root", r.ID()),
		RuleID:         r.ID(),
		ResourceID:     "root",
		ResourceType:   models.ResourceRootAccount,
		Region:         "global",
		AccountID:      ctx.AccountID,
		Profile:        ctx.Profile,
		Severity:       models.SeverityCritical,
		Explanation:    "The AWS root account has active access keys, which is a critical security risk.",
		Recommendation: "Delete the root access keys and use IAM roles for programmatic access.",
		DetectedAt:     time.Now().UTC(),
	}}
}
