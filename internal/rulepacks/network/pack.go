// Package network provides the per-region network audit rule pack.
// It groups every rule that reads a NetworkSnapshot into a single New()
// function that the CLI wires into a DefaultRuleRegistry before invoking
// the network engine.
//
// Convention: every rule pack lives in internal/rulepacks/<domain>/pack.go
// and exposes a single New() func returning []rules.Rule.
// Future network rules should be added to the slice returned by New().
package network

import "github.com/pankaj-dahiya-devops/netscope/internal/rules"

// New returns the default network audit rule pack.
func New() []rules.Rule {
	return []rules.Rule{
		rules.SGOpenIngressRule{},        // HIGH:   security group open to the internet
		rules.NACLOpenRule{},             // HIGH:   network ACL allows the internet
		rules.VPNTunnelDownRule{},        // HIGH:   VPN tunnel endpoint not UP
		rules.EBSUnencryptedRule{},       // HIGH:   EBS volume not encrypted
		rules.RDSPublicAccessRule{},      // HIGH:   RDS instance publicly accessible
		rules.RDSUnencryptedRule{},       // HIGH:   RDS storage not encrypted
		rules.SubnetAutoPublicIPRule{},   // MEDIUM: subnet auto-assigns public IPs
		rules.VPNStateRule{},             // MEDIUM: VPN connection not available
		rules.PeeringInactiveRule{},      // MEDIUM: peering connection not active
		rules.RouteBlackholeRule{},       // MEDIUM: blackholed route entry
		rules.EC2NoInstanceProfileRule{}, // MEDIUM: instance without IAM profile
		rules.EC2IMDSv2Rule{},            // MEDIUM: IMDSv2 not required
		rules.NATGatewayIdleRule{},       // LOW:    idle NAT gateway
		rules.ALBIdleRule{},              // LOW:    idle application load balancer
	}
}
