package policy

import (
	"fmt"
	"sort"
	"strings"
)

// frameworkServices maps each supported compliance framework to the audited
// services it pulls in. Framework names are matched case-insensitively.
var frameworkServices = map[string][]string{
	"hipaa": {"vpc", "ec2", "s3", "iam", "rds", "kms", "acm"},
}

// Frameworks returns the supported framework names, sorted.
func Frameworks() []string {
	names := make([]string, 0, len(frameworkServices))
	for name := range frameworkServices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFrameworks expands framework names into the union of their audited
// services, sorted. Unknown names are reported together in one error.
func ResolveFrameworks(frameworks []string) ([]string, error) {
	var unknown []string
	serviceSet := make(map[string]struct{})
	for _, name := range frameworks {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		services, ok := frameworkServices[key]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		for _, svc := range services {
			serviceSet[svc] = struct{}{}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown compliance framework(s): %s; valid options: %s",
			strings.Join(unknown, ", "), strings.Join(Frameworks(), ", "))
	}

	services := make([]string, 0, len(serviceSet))
	for svc := range serviceSet {
		services = append(services, svc)
	}
	sort.Strings(services)
	return services, nil
}
