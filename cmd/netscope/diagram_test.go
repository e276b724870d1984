package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3svc "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/diagram/graphviz"
	"github.com/pankaj-dahiya-devops/netscope/internal/models"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/common"
	"github.com/pankaj-dahiya-devops/netscope/internal/providers/aws/globalsvc"
)

// ── fakes ────────────────────────────────────────────────────────────────────

// fakeCollector serves a canned snapshot and records the region it was asked
// to collect so tests can assert the region resolution chain.
type fakeCollector struct {
	snap       *models.NetworkSnapshot
	err        error
	lastRegion string
}

func (f *fakeCollector) Collect(_ context.Context, _ aws.Config, region string) (*models.NetworkSnapshot, error) {
	f.lastRegion = region
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

type fakeS3 struct {
	buckets []s3types.Bucket
}

func (f *fakeS3) ListBuckets(_ context.Context, _ *s3svc.ListBucketsInput, _ ...func(*s3svc.Options)) (*s3svc.ListBucketsOutput, error) {
	return &s3svc.ListBucketsOutput{Buckets: f.buckets}, nil
}

// sourceWithS3 is a SourceFactory serving only a fake S3 client; tests pair it
// with opts.services = ["s3"] so no other panel builder runs.
func sourceWithS3(buckets ...string) globalsvc.SourceFactory {
	entries := make([]s3types.Bucket, len(buckets))
	for i, name := range buckets {
		entries[i] = s3types.Bucket{Name: aws.String(name)}
	}
	return func(aws.Config) *globalsvc.Source {
		return &globalsvc.Source{S3: &fakeS3{buckets: entries}}
	}
}

func emptySnapshot(region string) *models.NetworkSnapshot {
	return &models.NetworkSnapshot{Region: region}
}

// missingRenderer cannot find its executable, so runDiagram degrades to
// source-only output. The DOT file is still written to opts.output + ".gv".
var missingRenderer = graphviz.Renderer{Command: "netscope-no-such-renderer"}

// ── runDiagram ───────────────────────────────────────────────────────────────

func TestRunDiagram_ProfileLoadError(t *testing.T) {
	provider := &mockAWSProvider{profileErr: errors.New("profile not found: prod")}

	var buf bytes.Buffer
	err := runDiagram(context.Background(), provider, &fakeCollector{}, sourceWithS3(), missingRenderer, diagramOptions{profile: "prod"}, &buf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "load AWS profile") {
		t.Errorf("error missing context; got: %v", err)
	}
	if provider.lastProfile != "prod" {
		t.Errorf("LoadProfile called with %q; want prod", provider.lastProfile)
	}
}

func TestRunDiagram_NoRegionSelected(t *testing.T) {
	// Neither --region nor a profile home region: nothing to collect from.
	provider := &mockAWSProvider{profileResult: &common.ProfileConfig{AccountID: "111122223333"}}

	var buf bytes.Buffer
	err := runDiagram(context.Background(), provider, &fakeCollector{}, sourceWithS3(), missingRenderer, diagramOptions{}, &buf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no region selected") {
		t.Errorf("error missing region hint; got: %v", err)
	}
}

func TestRunDiagram_RegionFromProfile(t *testing.T) {
	provider := goodMockAWS() // home region us-east-1
	collector := &fakeCollector{snap: emptySnapshot("us-east-1")}
	opts := diagramOptions{
		output:   filepath.Join(t.TempDir(), "diagram"),
		services: []string{"s3"},
	}

	var buf bytes.Buffer
	if err := runDiagram(context.Background(), provider, collector, sourceWithS3(), missingRenderer, opts, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collector.lastRegion != "us-east-1" {
		t.Errorf("collected region %q; want profile home region us-east-1", collector.lastRegion)
	}
}

func TestRunDiagram_ExplicitRegionWins(t *testing.T) {
	provider := goodMockAWS() // home region us-east-1
	collector := &fakeCollector{snap: emptySnapshot("us-west-2")}
	opts := diagramOptions{
		region:   "us-west-2",
		output:   filepath.Join(t.TempDir(), "diagram"),
		services: []string{"s3"},
	}

	var buf bytes.Buffer
	if err := runDiagram(context.Background(), provider, collector, sourceWithS3(), missingRenderer, opts, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collector.lastRegion != "us-west-2" {
		t.Errorf("collected region %q; want explicit us-west-2", collector.lastRegion)
	}
}

func TestRunDiagram_CollectError(t *testing.T) {
	provider := goodMockAWS()
	collector := &fakeCollector{err: errors.New("DescribeVpcs: access denied")}
	opts := diagramOptions{region: "eu-west-1"}

	var buf bytes.Buffer
	err := runDiagram(context.Background(), provider, collector, sourceWithS3(), missingRenderer, opts, &buf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "collect network topology in eu-west-1") {
		t.Errorf("error missing region context; got: %v", err)
	}
	if !strings.Contains(err.Error(), "access denied") {
		t.Errorf("error must wrap the collector failure; got: %v", err)
	}
}

func TestRunDiagram_UnknownService(t *testing.T) {
	provider := goodMockAWS()
	collector := &fakeCollector{snap: emptySnapshot("us-east-1")}
	opts := diagramOptions{
		region:   "us-east-1",
		services: []string{"nosuch"},
	}

	var buf bytes.Buffer
	err := runDiagram(context.Background(), provider, collector, sourceWithS3(), missingRenderer, opts, &buf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), `unknown service "nosuch"`) {
		t.Errorf("error must name the unknown service; got: %v", err)
	}
}

// TestRunDiagram_GraphvizMissing_WritesSourceOnly drives the full pipeline
// with fakes: the DOT source must land on disk with the VPC and the S3 panel
// in it, the notice must name the source file, and the missing renderer must
// not surface as an error.
func TestRunDiagram_GraphvizMissing_WritesSourceOnly(t *testing.T) {
	provider := goodMockAWS()
	snap := emptySnapshot("us-east-1")
	snap.VPCs = []models.VPC{{ID: "vpc-0abc", Name: "core", CIDRBlock: "10.0.0.0/16"}}
	collector := &fakeCollector{snap: snap}

	base := filepath.Join(t.TempDir(), "netmap")
	opts := diagramOptions{
		region:   "us-east-1",
		output:   base,
		services: []string{"s3"},
		maxItems: globalsvc.DefaultMaxItems,
	}

	var buf bytes.Buffer
	err := runDiagram(context.Background(), provider, collector, sourceWithS3("logs-bucket"), missingRenderer, opts, &buf)
	if err != nil {
		t.Fatalf("missing renderer must not be an error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "DOT source written to "+base+".gv") {
		t.Errorf("notice must name the source file; got:\n%s", out)
	}
	if strings.Contains(out, "Network diagram written") {
		t.Errorf("no image was rendered; success notice must not appear; got:\n%s", out)
	}

	data, readErr := os.ReadFile(base + ".gv")
	if readErr != nil {
		t.Fatalf("read source: %v", readErr)
	}
	src := string(data)
	for _, want := range []string{"vpc-0abc", "logs-bucket"} {
		if !strings.Contains(src, want) {
			t.Errorf("DOT source missing %q;\ngot:\n%s", want, src)
		}
	}
}
