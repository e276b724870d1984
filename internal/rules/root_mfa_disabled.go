package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// RootMFADisabledRule flags a root account without MFA. It only fires when
// the account summary was actually readable, so a collection failure never
// masquerades as a missing MFA device.
type RootMFADisabledRule struct{}

func (r RootMFADisabledRule) ID() string      { return "ROOT_MFA_DISABLED" }
func (r RootMFADisabledRule) Name() string    { return "Root Account MFA Disabled" }
func (r RootMFADisabledRule) Service() string { return "iam" }

// Evaluate returns a single CRITICAL finding when root MFA is off.
func (r RootMFADisabledRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	root := ctx.Account.Root
	if !root.DataAvailable || root.MFAEnabled {
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
		Explanation:    "The AWS root account does not have MFA enabled.",
		Recommendation: "Enable a hardware MFA device on the root account and store it offline.",
		DetectedAt:     time.Now().UTC(),
	}}
}
