package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectSecurityGroupRules pages through all security groups in the region
// and flattens their permissions to one record per CIDR. Security-group
// references and prefix lists are not carried — the open-ingress rule only
// inspects CIDR grants.
func collectSecurityGroupRules(ctx context.Context, ec2Client topoEC2Client) ([]models.SecurityGroupRule, error) {
	paginator := ec2svc.NewDescribeSecurityGroupsPaginator(ec2Client, &ec2svc.DescribeSecurityGroupsInput{})

	var rules []models.SecurityGroupRule
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeSecurityGroups page: %w", err)
		}
		for _, sg := range page.SecurityGroups {
			groupID := aws.ToString(sg.GroupId)
			for _, perm := range sg.IpPermissions {
				rules = append(rules, flattenPermission(groupID, perm, true)...)
			}
			for _, perm := range sg.IpPermissionsEgress {
				rules = append(rules, flattenPermission(groupID, perm, false)...)
			}
		}
	}
	return rules, nil
}

// flattenPermission expands one SDK permission into per-CIDR rule records.
// Protocol keeps the raw API value ("-1" means every protocol); ports are 0
// when the permission carries none.
func flattenPermission(groupID string, perm ec2types.IpPermission, inbound bool) []models.SecurityGroupRule {
	base := models.SecurityGroupRule{
		GroupID:  groupID,
		Inbound:  inbound,
		Protocol: aws.ToString(perm.IpProtocol),
		FromPort: aws.ToInt32(perm.FromPort),
		ToPort:   aws.ToInt32(perm.ToPort),
	}

	var rules []models.SecurityGroupRule
	for _, r := range perm.IpRanges {
		rule := base
		rule.CIDR = aws.ToString(r.CidrIp)
		rules = append(rules, rule)
	}
	for _, r := range perm.Ipv6Ranges {
		rule := base
		rule.CIDR = aws.ToString(r.CidrIpv6)
		rule.IPv6 = true
		rules = append(rules, rule)
	}
	return rules
}
