package rules

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// SGOpenIngressRule flags security group permissions that grant access to the
// entire internet (0.0.0.0/0 or ::/0), in either direction. Each open grant
// produces its own finding so the report names every protocol and port range
// that is exposed.
type SGOpenIngressRule struct{}

func (r SGOpenIngressRule) ID() string      { return "SG_OPEN_INGRESS" }
func (r SGOpenIngressRule) Name() string    { return "Security Group Open To The Internet" }
func (r SGOpenIngressRule) Service() string { return "vpc" }

// Evaluate returns one HIGH finding per security group permission whose CIDR
// is the whole internet.
func (r SGOpenIngressRule) Evaluate(ctx RuleContext) []models.Finding {
	if ctx.Network == nil {
		return nil
	}
	var findings []models.Finding
	for _, sg := range ctx.Network.SecurityGroupRules {
		if sg.CIDR != "0.0.0.0/0" && sg.CIDR != "::/0" {
			continue
		}
		direction := "outbound"
		if sg.Inbound {
			direction = "inbound"
		}
		family := "ipv4"
		label := ""
		if sg.IPv6 {
			family = "ipv6"
			label = "IPv6 "
		}
		from, to := sgPortLabel(sg.Protocol, sg.FromPort), sgPortLabel(sg.Protocol, sg.ToPort)
		findings = append(findings, models.Finding{
			ID:             fmt.Sprintf("%s-%s-%s-%s-%s-%s-%s", r.ID(), sg.GroupID, direction, family, sg.Protocol, from, to),
			RuleID:         r.ID(),
			ResourceID:     sg.GroupID,
			ResourceType:   models.ResourceSecurityGroup,
			Region:         ctx.Network.Region,
			AccountID:      ctx.AccountID,
			Profile:        ctx.Profile,
			Severity:       models.SeverityHigh,
			Explanation:    fmt.Sprintf("Security group allows %s %saccess from the entire internet (protocol=%s, ports=%s-%s).", direction, label, sg.Protocol, from, to),
			Recommendation: "Restrict the rule to the specific CIDR ranges that need access, or remove it.",
			DetectedAt:     time.Now().UTC(),
			Metadata: map[string]any{
				"cidr":      sg.CIDR,
				"protocol":  sg.Protocol,
				"direction": direction,
			},
		})
	}
	return findings
}

// sgPortLabel formats one port bound. Protocol "-1" grants every port, so
// the bound prints as "*".
func sgPortLabel(protocol string, port int32) string {
	if protocol == "-1" {
		return "*"
	}
	return strconv.Itoa(int(port))
}
