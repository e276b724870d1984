package rules

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func TestSubnetAutoPublicIPRule_NilNetwork(t *testing.T) {
	findings := SubnetAutoPublicIPRule{}.Evaluate(RuleContext{})
	if findings != nil {
		t.Errorf("want nil with nil network snapshot, got %v", findings)
	}
}

func TestSubnetAutoPublicIPRule_Mixed(t *testing.T) {
	ctx := RuleContext{
		AccountID: "123",
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			Subnets: []models.Subnet{
				{ID: "subnet-private", VPCID: "vpc-1", MapPublicIPOnLaunch: false},
				{ID: "subnet-public", VPCID: "vpc-1", CIDRBlock: "10.0.1.0/24", MapPublicIPOnLaunch: true},
			},
		},
	}
	findings := SubnetAutoPublicIPRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.ResourceID != "subnet-public" {
		t.Errorf("resource_id: got %q; want subnet-public", f.ResourceID)
	}
	if f.Severity != models.SeverityMedium {
		t.Errorf("severity: got %q; want MEDIUM", f.Severity)
	}
	if f.Explanation != "Subnet automatically assigns public IPv4 addresses on launch." {
		t.Errorf("unexpected explanation: %q", f.Explanation)
	}
}
