package rules

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func TestEC2NoInstanceProfileRule(t *testing.T) {
	ctx := RuleContext{
		AccountID: "123",
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			Instances: []models.Instance{
				{ID: "i-with", HasInstanceProfile: true},
				{ID: "i-without", HasInstanceProfile: false},
			},
		},
	}
	findings := EC2NoInstanceProfileRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.ResourceID != "i-without" {
		t.Errorf("resource_id: got %q; want i-without", f.ResourceID)
	}
	if f.Severity != models.SeverityMedium {
		t.Errorf("severity: got %q; want MEDIUM", f.Severity)
	}
	if f.Explanation != "Instance is not associated with an IAM instance profile." {
		t.Errorf("unexpected explanation: %q", f.Explanation)
	}
}

func TestEC2NoInstanceProfileRule_NilNetwork(t *testing.T) {
	if findings := (EC2NoInstanceProfileRule{}).Evaluate(RuleContext{}); findings != nil {
		t.Errorf("want nil with nil network snapshot, got %v", findings)
	}
}
