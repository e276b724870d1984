package rules

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func TestVPNTunnelDownRule_AllUp_NoFindings(t *testing.T) {
	ctx := RuleContext{
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			VPNConnections: []models.VPNConnection{
				{ID: "vpn-1", State: "available", Telemetry: []models.VPNTelemetry{
					{OutsideIP: "1.2.3.4", Status: "UP"},
					{OutsideIP: "5.6.7.8", Status: "UP"},
				}},
			},
		},
	}
	findings := VPNTunnelDownRule{}.Evaluate(ctx)
	if len(findings) != 0 {
		t.Errorf("want 0 findings when both tunnels are UP, got %d", len(findings))
	}
}

// TestVPNTunnelDownRule_OneDown verifies a single DOWN tunnel on an otherwise
// healthy connection produces exactly one finding naming the endpoint.
func TestVPNTunnelDownRule_OneDown(t *testing.T) {
	ctx := RuleContext{
		AccountID: "123",
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			VPNConnections: []models.VPNConnection{
				{ID: "vpn-1", State: "available", Telemetry: []models.VPNTelemetry{
					{OutsideIP: "1.2.3.4", Status: "UP"},
					{OutsideIP: "5.6.7.8", Status: "DOWN"},
				}},
			},
		},
	}
	findings := VPNTunnelDownRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Severity != models.SeverityHigh {
		t.Errorf("severity: got %q; want HIGH", f.Severity)
	}
	want := "VPN tunnel endpoint 5.6.7.8 is reporting status DOWN."
	if f.Explanation != want {
		t.Errorf("explanation: got %q; want %q", f.Explanation, want)
	}
}

func TestVPNTunnelDownRule_MissingOutsideIP(t *testing.T) {
	ctx := RuleContext{
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			VPNConnections: []models.VPNConnection{
				{ID: "vpn-1", Telemetry: []models.VPNTelemetry{{Status: "DOWN"}}},
			},
		},
	}
	findings := VPNTunnelDownRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	want := "VPN tunnel endpoint unknown is reporting status DOWN."
	if findings[0].Explanation != want {
		t.Errorf("explanation: got %q; want %q", findings[0].Explanation, want)
	}
}
