package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	kmssvc "github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectKMSKeys lists every KMS key in the region and resolves its alias,
// state, manager, and rotation status. Keys whose metadata cannot be read
// are omitted; a failed rotation probe leaves RotationKnown false so rules
// skip the key instead of flagging it.
func collectKMSKeys(ctx context.Context, client kmsAPIClient) ([]models.KMSKey, error) {
	paginator := kmssvc.NewListKeysPaginator(client, &kmssvc.ListKeysInput{})
	var entries []kmstypes.KeyListEntry
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list KMS keys: %w", err)
		}
		entries = append(entries, page.Keys...)
	}

	aliases := keyAliases(ctx, client)

	var keys []models.KMSKey
	for _, entry := range entries {
		keyID := aws.ToString(entry.KeyId)
		if keyID == "" {
			continue
		}

		descOut, err := client.DescribeKey(ctx, &kmssvc.DescribeKeyInput{KeyId: aws.String(keyID)})
		if err != nil || descOut.KeyMetadata == nil {
			continue
		}
		meta := descOut.KeyMetadata

		key := models.KMSKey{
			ID:      keyID,
			Alias:   aliases[keyID],
			State:   string(meta.KeyState),
			Manager: string(meta.KeyManager),
		}
		if supportsRotation(meta) {
			rotOut, rotErr := client.GetKeyRotationStatus(ctx, &kmssvc.GetKeyRotationStatusInput{
				KeyId: aws.String(keyID),
			})
			if rotErr == nil {
				key.RotationEnabled = rotOut.KeyRotationEnabled
				key.RotationKnown = true
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// keyAliases returns a map of key ID to alias name. Alias lookups are
// best-effort; failures leave the map empty and keys are reported by ID.
func keyAliases(ctx context.Context, client kmsAPIClient) map[string]string {
	aliases := make(map[string]string)
	paginator := kmssvc.NewListAliasesPaginator(client, &kmssvc.ListAliasesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return aliases
		}
		for _, alias := range page.Aliases {
			keyID := aws.ToString(alias.TargetKeyId)
			name := aws.ToString(alias.AliasName)
			if keyID != "" && name != "" {
				aliases[keyID] = name
			}
		}
	}
	return aliases
}

// supportsRotation reports whether automatic rotation applies to the key.
// Rotation exists only for enabled, customer-managed, KMS-origin symmetric
// encryption keys; probing anything else returns UnsupportedOperationException.
func supportsRotation(meta *kmstypes.KeyMetadata) bool {
	if meta.KeyManager != kmstypes.KeyManagerTypeCustomer {
		return false
	}
	if meta.Origin != kmstypes.OriginTypeAwsKms {
		return false
	}
	if meta.KeyState != kmstypes.KeyStateEnabled {
		return false
	}
	return strings.HasPrefix(string(meta.KeySpec), "SYMMETRIC")
}
