package rules

import (
	"testing"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

func rdsSnapshot(dbs ...models.DBInstance) *models.NetworkSnapshot {
	return &models.NetworkSnapshot{Region: "us-east-1", DBInstances: dbs}
}

func TestRDSPublicAccessRule(t *testing.T) {
	ctx := RuleContext{
		AccountID: "123",
		Network: rdsSnapshot(
			models.DBInstance{Identifier: "db-private", PubliclyAccessible: false, StorageEncrypted: true},
			models.DBInstance{Identifier: "db-public", PubliclyAccessible: true, StorageEncrypted: true},
		),
	}
	findings := RDSPublicAccessRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.ResourceID != "db-public" {
		t.Errorf("resource_id: got %q; want db-public", f.ResourceID)
	}
	if f.Severity != models.SeverityHigh {
		t.Errorf("severity: got %q; want HIGH", f.Severity)
	}
	if f.Explanation != "RDS instance is publicly accessible." {
		t.Errorf("unexpected explanation: %q", f.Explanation)
	}
}

func TestRDSUnencryptedRule(t *testing.T) {
	ctx := RuleContext{
		Network: rdsSnapshot(
			models.DBInstance{Identifier: "db-plain", StorageEncrypted: false},
			models.DBInstance{Identifier: "db-enc", StorageEncrypted: true},
		),
	}
	findings := RDSUnencryptedRule{}.Evaluate(ctx)
	if len(findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(findings))
	}
	if findings[0].ResourceID != "db-plain" {
		t.Errorf("resource_id: got %q; want db-plain", findings[0].ResourceID)
	}
	if findings[0].Explanation != "RDS storage is not encrypted." {
		t.Errorf("unexpected explanation: %q", findings[0].Explanation)
	}
}

func TestRDSRules_NilNetwork(t *testing.T) {
	if findings := RDSPublicAccessRule{}.Evaluate(RuleContext{}); findings != nil {
		t.Errorf("public access: want nil with nil network snapshot, got %v", findings)
	}
	if findings := RDSUnencryptedRule{}.Evaluate(RuleContext{}); findings != nil {
		t.Errorf("unencrypted: want nil with nil network snapshot, got %v", findings)
	}
}
