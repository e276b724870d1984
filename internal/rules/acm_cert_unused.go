package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// ACMCertUnusedRule flags certificates not associated with any AWS resource.
type ACMCertUnusedRule struct{}

func (r ACMCertUnusedRule) ID() string      { return "ACM_CERT_UNUSED" }
func (r ACMCertUnusedRule) Name() string    { return "Unused Certificate" }
func (r ACMCertUnusedRule) Service() string { return "acm" }

// Evaluate returns one LOW finding per certificate with no associations.
func (r ACMCertUnusedRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	var findings []models.Finding
	for _, cert := range ctx.Account.Certificates {
		if cert.InUse {
			continue
		}
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s", r.ID(), cert.ARN),
			RuleID:         r.ID(),
			ResourceID:     cert.ARN,
			ResourceType:   models.ResourceACMCertificate,
			Region:         "global",
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityLow,
			Explanation:    "Certificate is not associated with any resources.",
			Recommendation: "Delete the certificate if nothing will use it; unused entries clutter expiry monitoring.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"domain": cert.DomainName,
				"status": cert.Status,
			},
		})
	}
	return findings
}
