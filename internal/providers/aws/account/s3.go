package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3svc "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectBuckets lists all S3 buckets in the account and probes each bucket's
// public-access posture and whether default server-side encryption is
// configured.
func collectBuckets(ctx context.Context, client s3APIClient) ([]models.S3Bucket, error) {
	out, err := client.ListBuckets(ctx, &s3svc.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list S3 buckets: %w", err)
	}

	buckets := make([]models.S3Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		name := aws.ToString(b.Name)
		buckets = append(buckets, models.S3Bucket{
			Name:                     name,
			Public:                   isBucketPublic(ctx, client, name),
			DefaultEncryptionEnabled: isBucketEncryptionEnabled(ctx, client, name),
		})
	}
	return buckets, nil
}

// isBucketPublic reports whether the bucket is exposed to public access:
// either the bucket policy status says IsPublic, or the bucket-level public
// access block is missing or not fully enabled (all four settings on).
//
// Buckets without a bucket policy return NoSuchBucketPolicy, which only means
// the policy probe is inconclusive; the public access block still decides.
// Errors other than a missing configuration are treated conservatively as
// not public to avoid false positives.
func isBucketPublic(ctx context.Context, client s3APIClient, name string) bool {
	policy, err := client.GetBucketPolicyStatus(ctx, &s3svc.GetBucketPolicyStatusInput{
		Bucket: aws.String(name),
	})
	if err == nil && policy.PolicyStatus != nil && aws.ToBool(policy.PolicyStatus.IsPublic) {
		return true
	}

	pab, err := client.GetPublicAccessBlock(ctx, &s3svc.GetPublicAccessBlockInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		// S3 does not model this error as a type, so match on the code.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchPublicAccessBlockConfiguration" {
			return true
		}
		return false
	}

	cfg := pab.PublicAccessBlockConfiguration
	if cfg == nil {
		return true
	}
	fullyEnabled := aws.ToBool(cfg.BlockPublicAcls) &&
		aws.ToBool(cfg.IgnorePublicAcls) &&
		aws.ToBool(cfg.BlockPublicPolicy) &&
		aws.ToBool(cfg.RestrictPublicBuckets)
	return !fullyEnabled
}

// isBucketEncryptionEnabled returns true when GetBucketEncryption returns a
// valid server-side encryption configuration for the bucket. A missing
// configuration (ServerSideEncryptionConfigurationNotFoundError) or any other
// error is treated as "encryption not configured" (returns false).
func isBucketEncryptionEnabled(ctx context.Context, client s3APIClient, name string) bool {
	_, err := client.GetBucketEncryption(ctx, &s3svc.GetBucketEncryptionInput{
		Bucket: aws.String(name),
	})
	return err == nil
}
