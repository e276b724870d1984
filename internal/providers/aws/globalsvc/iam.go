package globalsvc

import (
	"context"
	"fmt"

	iamsvc "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// buildIAMSummary reports IAM resource counts rather than names. Each count
// is independent, so a denied ListRoles still leaves the user and group
// lines on the panel. Zero counts are omitted.
func buildIAMSummary(ctx context.Context, src *Source, maxItems int) (*models.GlobalServiceSummary, error) {
	var lines []string

	if n, err := countIAMRoles(ctx, src.IAM); err == nil && n > 0 {
		lines = append(lines, fmt.Sprintf("Roles: %d", n))
	}
	if n, err := countIAMUsers(ctx, src.IAM); err == nil && n > 0 {
		lines = append(lines, fmt.Sprintf("Users: %d", n))
	}
	if n, err := countIAMGroups(ctx, src.IAM); err == nil && n > 0 {
		lines = append(lines, fmt.Sprintf("Groups: %d", n))
	}
	if n, err := countIAMCustomerPolicies(ctx, src.IAM); err == nil && n > 0 {
		lines = append(lines, fmt.Sprintf("Customer Policies: %d", n))
	}

	if len(lines) == 0 {
		return nil, nil
	}

	return &models.GlobalServiceSummary{
		Title:     "AWS IAM",
		Lines:     TruncateLines(lines, maxItems),
		FillColor: "#fef7f5",
		FontColor: "#9b2c2c",
	}, nil
}

func countIAMRoles(ctx context.Context, client iamAPI) (int, error) {
	count := 0
	paginator := iamsvc.NewListRolesPaginator(client, &iamsvc.ListRolesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += len(page.Roles)
	}
	return count, nil
}

func countIAMUsers(ctx context.Context, client iamAPI) (int, error) {
	count := 0
	paginator := iamsvc.NewListUsersPaginator(client, &iamsvc.ListUsersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += len(page.Users)
	}
	return count, nil
}

func countIAMGroups(ctx context.Context, client iamAPI) (int, error) {
	count := 0
	paginator := iamsvc.NewListGroupsPaginator(client, &iamsvc.ListGroupsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += len(page.Groups)
	}
	return count, nil
}

// countIAMCustomerPolicies counts only customer-managed policies; the
// hundreds of AWS-managed policies every account can see are noise here.
func countIAMCustomerPolicies(ctx context.Context, client iamAPI) (int, error) {
	count := 0
	paginator := iamsvc.NewListPoliciesPaginator(client, &iamsvc.ListPoliciesInput{
		Scope: iamtypes.PolicyScopeTypeLocal,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += len(page.Policies)
	}
	return count, nil
}
