package rules

import (
	"fmt"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/policy"
)

// ACMCertExpiringRule flags certificates expiring within min_days (default
// 30). Certificates without an expiry date are skipped.
type ACMCertExpiringRule struct{}

func (r ACMCertExpiringRule) ID() string      { return "ACM_CERT_EXPIRING" }
func (r ACMCertExpiringRule) Name() string    { return "Certificate Expiring Soon" }
func (r ACMCertExpiringRule) Service() string { return "acm" }

// Evaluate returns one MEDIUM finding per certificate inside the expiry
// window, already-expired certificates included.
func (r ACMCertExpiringRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Account == nil {
		return nil
	}
	minDays := policy.GetThreshold(r.ID(), "min_days", 30, ctx.Policy)
	window := time.Duration(minDays*24) * time.Hour
	now := time.Now().UTC()

	var findings []models.Finding
	for _, cert := range ctx.Account.Certificates {
		if cert.NotAfter.IsZero() || cert.NotAfter.Sub(now) >= window {
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
			Severity:       models.SeverityMedium,
			Explanation:    fmt.Sprintf("Certificate expires in less than %d days.", int(minDays)),
			Recommendation: "Renew or reimport the certificate before it expires; DNS-validated ACM certificates renew automatically when their records stay in place.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"domain":    cert.DomainName,
				"not_after": cert.NotAfter,
			},
		})
	}
	return findings
}
