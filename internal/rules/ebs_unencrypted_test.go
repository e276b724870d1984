package rules

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func TestEBSUnencryptedRule_NilNetwork(t *testing.T) {
	findings := EBSUnencryptedRule{}.Evaluate(RuleContext{})
	if findings != nil {
		t.Errorf("want nil with nil network snapshot, got %v", findings)
	}
}

func TestEBSUnencryptedRule_EncryptedVolumes_NoFindings(t *testing.T) {
	ctx := RuleContext{
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			Instances: []models.Instance{
				{ID: "i-1", Volumes: []models.Volume{{ID: "vol-1", Encrypted: true}}},
			},
		},
	}
	findings := EBSUnencryptedRule{}.Evaluate(ctx)
	if len(findings) != 0 {
		t.Errorf("want 0 findings for encrypted volumes, got %d", len(findings))
	}
}

func TestEBSUnencryptedRule_MixedVolumes(t *testing.T) {
	ctx := RuleContext{
		AccountID: "123",
		Network: &models.NetworkSnapshot{
			Region: "us-east-1",
			Instances: []models.Instance{
				{ID: "i-1", Volumes: []models.Volume{
					{ID: "vol-root", Encrypted: true},
					{ID: "vol-data", Encrypted: false},
				}},
			},
		},
	}
	findings := EBSUnencryptedRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.ResourceID != "i-1:vol-data" {
		t.Errorf("resource_id: got %q; want i-1:vol-data", f.ResourceID)
	}
	if f.Severity != models.SeverityHigh {
		t.Errorf("severity: got %q; want HIGH", f.Severity)
	}
	if f.Explanation != "EBS volume is not encrypted." {
		t.Errorf("unexpected explanation: %q", f.Explanation)
	}
}
