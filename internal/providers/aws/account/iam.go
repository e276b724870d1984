package account

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	iamsvc "github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectIAMUsers returns all IAM users in the account together with their
// posture attributes: whether MFA is enabled, whether the user has a console
// login profile, and the metadata of every access key so the stale-key rule
// can compute ages. The ListUsers paginator handles accounts with many users.
func collectIAMUsers(ctx context.Context, client iamAPIClient) ([]models.IAMUser, error) {
	paginator := iamsvc.NewListUsersPaginator(client, &iamsvc.ListUsersInput{})
	var users []models.IAMUser
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list IAM users: %w", err)
		}
		for _, u := range page.Users {
			userName := aws.ToString(u.UserName)
			users = append(users, models.IAMUser{
				UserName:        userName,
				MFAEnabled:      userHasMFA(ctx, client, userName),
				HasLoginProfile: userHasLoginProfile(ctx, client, userName),
				AccessKeys:      userAccessKeys(ctx, client, userName),
			})
		}
	}
	return users, nil
}

// userHasMFA returns true when the specified IAM user has at least one MFA
// device registered. Errors are treated as "no MFA" (conservative).
func userHasMFA(ctx context.Context, client iamAPIClient, userName string) bool {
	out, err := client.ListMFADevices(ctx, &iamsvc.ListMFADevicesInput{
		UserName: aws.String(userName),
	})
	if err != nil {
		return false
	}
	return len(out.MFADevices) > 0
}

// userHasLoginProfile returns true when the specified IAM user has a console
// login profile (password). GetLoginProfile returns an error (NoSuchEntityException)
// when no login profile exists, which is treated as false. API-only users
// typically have no login profile and should not be flagged for missing MFA.
func userHasLoginProfile(ctx context.Context, client iamAPIClient, userName string) bool {
	_, err := client.GetLoginProfile(ctx, &iamsvc.GetLoginProfileInput{
		UserName: aws.String(userName),
	})
	return err == nil
}

// userAccessKeys returns the metadata of every access key belonging to the
// user. Errors yield an empty list so the stale-key rule simply sees no keys.
func userAccessKeys(ctx context.Context, client iamAPIClient, userName string) []models.IAMAccessKey {
	out, err := client.ListAccessKeys(ctx, &iamsvc.ListAccessKeysInput{
		UserName: aws.String(userName),
	})
	if err != nil {
		return nil
	}

	keys := make([]models.IAMAccessKey, 0, len(out.AccessKeyMetadata))
	for _, k := range out.AccessKeyMetadata {
		key := models.IAMAccessKey{
			ID:     aws.ToString(k.AccessKeyId),
			Status: string(k.Status),
		}
		if k.CreateDate != nil {
			key.CreateDate = *k.CreateDate
		}
		keys = append(keys, key)
	}
	return keys
}
