package engine

import (
	"fmt"
	"strings"

	"github.com/pankaj-dahiya-devops/netscope/internal/models"
)

// allChecksPassed is the default COMPLIANT details text.
const allChecksPassed = "All checks passed."

// inventoryItem summarises the findings recorded against one resource.
// Finding messages are joined with "; " in evaluation order. extraDetails
// are appended regardless of compliance so contextual information surfaces
// alongside any findings. compliantDetails is the COMPLIANT details text; an
// empty string keeps only the extras.
func inventoryItem(
	service, resourceID string,
	resourceFindings []models.Finding,
	compliantDetails string,
	extraDetails ...string,
) models.InventoryItem {
	var extras []string
	for _, d := range extraDetails {
		if d != "" {
			extras = append(extras, d)
		}
	}

	if len(resourceFindings) > 0 {
		parts := make([]string, 0, len(resourceFindings)+len(extras))
		for _, f := range resourceFindings {
			parts = append(parts, f.Explanation)
		}
		parts = append(parts, extras...)
		return models.InventoryItem{
			Service:    service,
			ResourceID: resourceID,
			Status:     models.InventoryNonCompliant,
			Details:    strings.Join(parts, "; "),
		}
	}

	var parts []string
	if compliantDetails != "" {
		parts = append(parts, compliantDetails)
	}
	parts = append(parts, extras...)
	return models.InventoryItem{
		Service:    service,
		ResourceID: resourceID,
		Status:     models.InventoryCompliant,
		Details:    strings.Join(parts, "; "),
	}
}

// serviceSet is the normalized set of selected service keys.
// The empty set selects everything.
type serviceSet map[string]struct{}

func newServiceSet(services []string) serviceSet {
	set := make(serviceSet, len(services))
	for _, s := range services {
		key := strings.ToLower(strings.TrimSpace(s))
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}

func (s serviceSet) has(key string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[key]
	return ok
}

// findingsFor returns the findings recorded against resourceID itself or any
// of its "<resourceID>:<sub>" composite resources (instance volumes, user
// access keys), preserving evaluation order.
func findingsFor(findings []models.Finding, resourceID string) []models.Finding {
	prefix := resourceID + ":"
	var matched []models.Finding
	for _, f := range findings {
		if f.ResourceID == resourceID || strings.HasPrefix(f.ResourceID, prefix) {
			matched = append(matched, f)
		}
	}
	return matched
}

// findingsOfType returns the findings of the given resource type, optionally
// limited to one region. An empty region matches any region. Used for
// account-scoped resources whose findings carry the account ID rather than a
// distinct resource ID.
func findingsOfType(findings []models.Finding, typ models.ResourceType, region string) []models.Finding {
	var matched []models.Finding
	for _, f := range findings {
		if f.ResourceType != typ {
			continue
		}
		if region != "" && f.Region != region {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// buildNetworkInventory emits one inventory row per audited network
// resource, compliant or not. findings must already be policy-filtered so
// the inventory agrees with the findings list. services limits emission to
// the selected service keys; empty selects every service.
func buildNetworkInventory(
	snapshots []*models.NetworkSnapshot,
	findings []models.Finding,
	services []string,
) []models.InventoryItem {
	selected := newServiceSet(services)
	var items []models.InventoryItem

	for _, snap := range snapshots {
		if selected.has("vpc") {
			for _, id := range uniqueGroupIDs(snap.SecurityGroupRules) {
				items = append(items, inventoryItem("vpc", id, findingsFor(findings, id), allChecksPassed))
			}
			for _, id := range uniqueACLIDs(snap.NetworkACLEntries) {
				items = append(items, inventoryItem("vpc", id, findingsFor(findings, id), allChecksPassed))
			}
			for _, subnet := range snap.Subnets {
				items = append(items, inventoryItem("vpc", subnet.ID, findingsFor(findings, subnet.ID), allChecksPassed))
			}
			for _, table := range snap.RouteTables {
				items = append(items, inventoryItem("vpc", table.ID, findingsFor(findings, table.ID), allChecksPassed))
			}
			for _, nat := range snap.NATGateways {
				items = append(items, inventoryItem("vpc", nat.ID, findingsFor(findings, nat.ID), allChecksPassed))
			}
			for _, peering := range snap.PeeringConnections {
				items = append(items, inventoryItem("vpc", peering.ID, findingsFor(findings, peering.ID),
					"Peering connection is active."))
			}

			gatewayAddrs := make(map[string]string, len(snap.CustomerGateways))
			for _, gw := range snap.CustomerGateways {
				if gw.ID != "" && gw.IPAddress != "" {
					gatewayAddrs[gw.ID] = gw.IPAddress
				}
			}
			for _, vpn := range snap.VPNConnections {
				var extras []string
				if vpn.Name != "" {
					extras = append(extras, "Name: "+vpn.Name)
				}
				if addr := gatewayAddrs[vpn.CustomerGatewayID]; addr != "" {
					extras = append(extras, "Customer gateway address: "+addr)
				}
				items = append(items, inventoryItem("vpc", vpn.ID, findingsFor(findings, vpn.ID),
					"VPN connection is available.", extras...))
			}
		}

		if selected.has("ec2") {
			for _, instance := range snap.Instances {
				items = append(items, inventoryItem("ec2", instance.ID, findingsFor(findings, instance.ID), allChecksPassed))
			}
		}
		if selected.has("rds") {
			for _, db := range snap.DBInstances {
				items = append(items, inventoryItem("rds", db.Identifier, findingsFor(findings, db.Identifier), allChecksPassed))
			}
		}
		if selected.has("elb") {
			for _, lb := range snap.LoadBalancers {
				items = append(items, inventoryItem("elb", lb.Name, findingsFor(findings, lb.Name), allChecksPassed))
			}
		}
	}

	return items
}

// buildAccountInventory emits one inventory row per audited account
// resource. The root row is emitted only when the account summary was
// readable; KMS rows only for keys whose rotation status is known — an
// unchecked resource must not be reported COMPLIANT.
func buildAccountInventory(
	data *models.AccountData,
	accountID string,
	findings []models.Finding,
	services []string,
) []models.InventoryItem {
	selected := newServiceSet(services)
	var items []models.InventoryItem

	if selected.has("iam") {
		for _, user := range data.IAMUsers {
			items = append(items, inventoryItem("iam", user.UserName, findingsFor(findings, user.UserName), allChecksPassed))
		}
		if data.Root.DataAvailable {
			items = append(items, inventoryItem("iam", "root", findingsFor(findings, "root"), allChecksPassed))
		}
	}
	if selected.has("s3") {
		for _, bucket := range data.Buckets {
			items = append(items, inventoryItem("s3", bucket.Name, findingsFor(findings, bucket.Name), allChecksPassed))
		}
	}
	if selected.has("cloudtrail") {
		items = append(items, inventoryItem("cloudtrail", accountID,
			findingsOfType(findings, models.ResourceCloudTrail, ""), allChecksPassed))
	}
	if selected.has("guardduty") {
		for _, status := range data.GuardDuty {
			items = append(items, inventoryItem("guardduty", status.Region,
				findingsOfType(findings, models.ResourceGuardDuty, status.Region), allChecksPassed))
		}
	}
	if selected.has("config") {
		for _, status := range data.Config {
			items = append(items, inventoryItem("config", status.Region,
				findingsOfType(findings, models.ResourceConfigRecorder, status.Region), allChecksPassed))
		}
	}
	if selected.has("kms") {
		for _, key := range data.KMSKeys {
			if !key.RotationKnown {
				continue
			}
			resource := key.ID
			if key.Alias != "" {
				resource = fmt.Sprintf("%s (%s)", key.Alias, key.ID)
			}
			items = append(items, inventoryItem("kms", resource, findingsFor(findings, resource), allChecksPassed))
		}
	}
	if selected.has("acm") {
		for _, cert := range data.Certificates {
			items = append(items, inventoryItem("acm", cert.ARN, findingsFor(findings, cert.ARN), allChecksPassed))
		}
	}

	return items
}

// uniqueGroupIDs returns the distinct security group IDs in first-seen order.
func uniqueGroupIDs(sgRules []models.SecurityGroupRule) []string {
	seen := make(map[string]struct{}, len(sgRules))
	var ids []string
	for _, rule := range sgRules {
		if _, ok := seen[rule.GroupID]; ok {
			continue
		}
		seen[rule.GroupID] = struct{}{}
		ids = append(ids, rule.GroupID)
	}
	return ids
}

// uniqueACLIDs returns the distinct network ACL IDs in first-seen order.
func uniqueACLIDs(entries []models.NetworkACLEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	var ids []string
	for _, entry := range entries {
		if _, ok := seen[entry.ACLID]; ok {
			continue
		}
		seen[entry.ACLID] = struct{}{}
		ids = append(ids, entry.ACLID)
	}
	return ids
}
