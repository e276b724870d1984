package topology

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2svc "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// collectNetworkACLEntries pages through all network ACLs in the region and
// flattens their entries, one record per entry. Entries without a port range
// apply to all ports.
func collectNetworkACLEntries(ctx context.Context, ec2Client topoEC2Client) ([]models.NetworkACLEntry, error) {
	paginator := ec2svc.NewDescribeNetworkAclsPaginator(ec2Client, &ec2svc.DescribeNetworkAclsInput{})

	var entries []models.NetworkACLEntry
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("DescribeNetworkAcls page: %w", err)
		}
		for _, acl := range page.NetworkAcls {
			aclID := aws.ToString(acl.NetworkAclId)
			for _, entry := range acl.Entries {
				entries = append(entries, toNetworkACLEntry(aclID, entry))
			}
		}
	}
	return entries, nil
}

// toNetworkACLEntry converts an SDK network ACL entry to the internal model.
// The CIDR is the IPv4 block when present, the IPv6 block otherwise.
func toNetworkACLEntry(aclID string, entry ec2types.NetworkAclEntry) models.NetworkACLEntry {
	cidr := aws.ToString(entry.CidrBlock)
	if cidr == "" {
		cidr = aws.ToString(entry.Ipv6CidrBlock)
	}

	e := models.NetworkACLEntry{
		ACLID:    aclID,
		Egress:   aws.ToBool(entry.Egress),
		Allow:    entry.RuleAction == ec2types.RuleActionAllow,
		CIDR:     cidr,
		AllPorts: entry.PortRange == nil,
	}
	if entry.PortRange != nil {
		e.FromPort = aws.ToInt32(entry.PortRange.From)
		e.ToPort = aws.ToInt32(entry.PortRange.To)
	}
	return e
}
