package globalsvc

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	kmssvc "github.com/aws/aws-sdk-go-v2/service/kms"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildKMSSummary lists KMS keys, labelled "aliasName (keyID)" when the key
// has an alias and as the bare key ID otherwise. Alias lookup is
// best-effort; a denied ListAliases still yields a panel of key IDs.
func buildKMSSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	aliases := kmsAliasesByKey(ctx, src.KMS)

	var lines []string
	paginator := kmssvc.NewListKeysPaginator(src.KMS, &kmssvc.ListKeysInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list KMS keys: %w", err)
		}
		for _, key := range page.Keys {
			keyID := aws.ToString(key.KeyId)
			if keyID == "" {
				continue
			}
			if alias, ok := aliases[keyID]; ok {
				lines = append(lines, fmt.Sprintf("%s (%s)", alias, keyID))
			} else {
				lines = append(lines, keyID)
			}
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}
	sort.Strings(lines)

	return &models.GlobalServiceSummary{
		Title:     "AWS KMS",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#faf5ff",
		FontColor: "#553c9a",
	}, nil
}

// kmsAliasesByKey maps each key ID to its alias name. A key with several
// aliases keeps the last one listed.
func kmsAliasesByKey(ctx context.Context, client kmsAPI) map[string]string {
	aliases := make(map[string]string)
	paginator := kmssvc.NewListAliasesPaginator(client, &kmssvc.ListAliasesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			// Discard partial results; every key falls back to its bare ID.
			return make(map[string]string)
		}
		for _, alias := range page.Aliases {
			keyID := aws.ToString(alias.TargetKeyId)
			name := aws.ToString(alias.AliasName)
			if keyID == "" || name == "" {
				continue
			}
			aliases[keyID] = name
		}
	}
	return aliases
}
